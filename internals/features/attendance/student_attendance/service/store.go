package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/features/attendance/student_attendance/model"
)

// AttendanceStore = kebutuhan service terhadap penyimpanan.
// Semua tanggal dikirim sebagai DateOnly (00:00 UTC).
type AttendanceStore interface {
	// FindByUserAndDate termasuk baris soft-deleted. (nil, nil) kalau tidak ada.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.StudentAttendanceModel, error)
	// FindAllByUser termasuk baris soft-deleted.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.StudentAttendanceModel, error)
	Insert(ctx context.Context, m *model.StudentAttendanceModel) error
	Update(ctx context.Context, m *model.StudentAttendanceModel) error
	// SaveBatch menjalankan insert & update dalam satu transaksi.
	SaveBatch(ctx context.Context, inserts, updates []*model.StudentAttendanceModel) error

	CountTrainingDays(ctx context.Context, courseID uuid.UUID, date time.Time) (int64, error)
	CountNotEntered(ctx context.Context, userID uuid.UUID, before time.Time) (int64, error)
	ListManagement(ctx context.Context, courseID, userID uuid.UUID) ([]model.AttendanceManagementRow, error)
	ListManagementForUsers(ctx context.Context, courseID uuid.UUID, userIDs []uuid.UUID) ([]model.AttendanceManagementRow, error)
}
