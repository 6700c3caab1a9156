// internals/features/attendance/student_attendance/model/student_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lms_backend/internals/helpers/dbtime"
)

type StudentAttendanceModel struct {
	// PK (diisi repository saat insert pertama)
	StudentAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_attendance_id" json:"student_attendance_id"`

	// Subjek & akun
	StudentAttendanceUserID    uuid.UUID `gorm:"type:uuid;not null;column:student_attendance_user_id;uniqueIndex:uq_student_attendance_user_date" json:"student_attendance_user_id"`
	StudentAttendanceAccountID uuid.UUID `gorm:"type:uuid;column:student_attendance_account_id" json:"student_attendance_account_id"`

	// Satu baris per (user, tanggal)
	StudentAttendanceTrainingDate datatypes.Date `gorm:"type:date;not null;column:student_attendance_training_date;uniqueIndex:uq_student_attendance_user_date" json:"student_attendance_training_date"`

	// "HH:MM" atau "" (blank)
	StudentAttendanceStartTime dbtime.TrainingTime `gorm:"type:varchar(5);not null;default:'';column:student_attendance_start_time" json:"student_attendance_start_time"`
	StudentAttendanceEndTime   dbtime.TrainingTime `gorm:"type:varchar(5);not null;default:'';column:student_attendance_end_time" json:"student_attendance_end_time"`

	// Istirahat (menit), nullable
	StudentAttendanceBlankTime *int `gorm:"column:student_attendance_blank_time" json:"student_attendance_blank_time,omitempty"`

	StudentAttendanceStatus AttendanceStatus `gorm:"type:smallint;not null;default:0;column:student_attendance_status" json:"student_attendance_status"`
	StudentAttendanceNote   string           `gorm:"type:text;not null;default:'';column:student_attendance_note" json:"student_attendance_note"`

	// Soft delete pakai flag (baris tidak pernah dihapus fisik)
	StudentAttendanceIsDeleted bool `gorm:"not null;default:false;column:student_attendance_is_deleted" json:"student_attendance_is_deleted"`

	// Audit
	StudentAttendanceCreatedBy uuid.UUID `gorm:"type:uuid;column:student_attendance_created_by" json:"student_attendance_created_by"`
	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at" json:"student_attendance_created_at"`
	StudentAttendanceUpdatedBy uuid.UUID `gorm:"type:uuid;column:student_attendance_updated_by" json:"student_attendance_updated_by"`
	StudentAttendanceUpdatedAt time.Time `gorm:"column:student_attendance_updated_at" json:"student_attendance_updated_at"`
}

func (StudentAttendanceModel) TableName() string {
	return "student_attendances"
}

// TrainingDate sebagai time.Time (00:00 UTC dari kolom date).
func (m *StudentAttendanceModel) TrainingDate() time.Time {
	return time.Time(m.StudentAttendanceTrainingDate)
}

func (m *StudentAttendanceModel) IsNew() bool {
	return m.StudentAttendanceID == uuid.Nil
}
