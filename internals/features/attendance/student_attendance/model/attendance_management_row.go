package model

import (
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/helpers/dbtime"
)

// AttendanceManagementRow: hasil query hari pelatihan (course_sections) LEFT JOIN student_attendances.
// StudentAttendanceID nil = belum ada record di hari itu.
type AttendanceManagementRow struct {
	UserID              uuid.UUID           `gorm:"column:user_id" json:"user_id"`
	StudentAttendanceID *uuid.UUID          `gorm:"column:student_attendance_id" json:"student_attendance_id,omitempty"`
	TrainingDate        time.Time           `gorm:"column:training_date" json:"training_date"`
	SectionName         string              `gorm:"column:section_name" json:"section_name"`
	StartTime           dbtime.TrainingTime `gorm:"column:start_time" json:"start_time"`
	EndTime             dbtime.TrainingTime `gorm:"column:end_time" json:"end_time"`
	BlankTime           *int                `gorm:"column:blank_time" json:"blank_time,omitempty"`
	Status              AttendanceStatus    `gorm:"column:status" json:"status"`
	Note                string              `gorm:"column:note" json:"note"`
}
