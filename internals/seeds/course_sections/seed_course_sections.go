package course_sections

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms_backend/internals/features/attendance/student_attendance/model"
)

type CourseSectionSeed struct {
	CourseID string `json:"course_id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Name     string `json:"name"`
}

// ParseCourseSectionSeeds: isi file JSON → model (baris rusak dilewati).
func ParseCourseSectionSeeds(content []byte) ([]model.CourseSectionModel, error) {
	var data []CourseSectionSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	out := make([]model.CourseSectionModel, 0, len(data))
	for _, item := range data {
		courseID, err := uuid.Parse(item.CourseID)
		if err != nil {
			log.Printf("⚠️ course_id %q tidak valid, lewati", item.CourseID)
			continue
		}
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			log.Printf("⚠️ tanggal %q tidak valid, lewati", item.Date)
			continue
		}
		out = append(out, model.CourseSectionModel{
			CourseSectionCourseID: courseID,
			CourseSectionDate:     datatypes.Date(date),
			CourseSectionName:     item.Name,
		})
	}
	return out, nil
}

func SeedCourseSectionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	rows, err := ParseCourseSectionSeeds(content)
	if err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, row := range rows {
		var existing model.CourseSectionModel
		if err := db.Where("course_section_course_id = ? AND course_section_date = ? AND course_section_name = ?",
			row.CourseSectionCourseID, row.CourseSectionDate, row.CourseSectionName).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Section %s (%s) sudah ada, lewati...", row.CourseSectionName, time.Time(row.CourseSectionDate).Format("2006-01-02"))
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert section %s: %v", row.CourseSectionName, err)
		} else {
			log.Printf("✅ Berhasil insert section %s", row.CourseSectionName)
		}
	}
}
