package seeds

import (
	course_sections "lms_backend/internals/seeds/course_sections"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Hari pelatihan
	course_sections.SeedCourseSectionsFromJSON(db, "internals/seeds/course_sections/data_course_sections.json")
}
