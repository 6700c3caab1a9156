package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseSectionModel: satu baris = satu sesi pelatihan pada tanggal tertentu.
// Tanggal dengan minimal satu section aktif = hari pelatihan.
type CourseSectionModel struct {
	CourseSectionID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_section_id" json:"course_section_id"`
	CourseSectionCourseID  uuid.UUID      `gorm:"type:uuid;not null;column:course_section_course_id;index:idx_course_section_course_date" json:"course_section_course_id"`
	CourseSectionDate      datatypes.Date `gorm:"type:date;not null;column:course_section_date;index:idx_course_section_course_date" json:"course_section_date"`
	CourseSectionName      string         `gorm:"type:varchar(120);not null;column:course_section_name" json:"course_section_name"`
	CourseSectionIsDeleted bool           `gorm:"not null;default:false;column:course_section_is_deleted" json:"course_section_is_deleted"`
}

func (CourseSectionModel) TableName() string {
	return "course_sections"
}
