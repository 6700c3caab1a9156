package service

import (
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/features/attendance/student_attendance/model"
)

// DailyEntry = satu hari yang diedit user (satu baris form).
type DailyEntry struct {
	RecordID    *uuid.UUID
	Date        time.Time
	StartHour   *int
	StartMinute *int
	EndHour     *int
	EndMinute   *int
	BlankTime   *int // menit
	Note        string
	SectionName string
	PriorStatus model.AttendanceStatus
}
