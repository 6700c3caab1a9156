// internals/features/attendance/student_attendance/repository/student_attendance_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/features/attendance/student_attendance/service"
)

// StudentAttendanceRepository: implementasi service.AttendanceStore di atas gorm/postgres.
type StudentAttendanceRepository struct {
	DB *gorm.DB
}

func NewStudentAttendanceRepository(db *gorm.DB) *StudentAttendanceRepository {
	return &StudentAttendanceRepository{DB: db}
}

var _ service.AttendanceStore = (*StudentAttendanceRepository)(nil)

// sqlDate: tanggal dikirim sebagai teks agar tidak tergeser timezone sesi DB.
func sqlDate(t time.Time) string {
	return t.Format("2006-01-02")
}

/* ====================== RECORD ====================== */

func (r *StudentAttendanceRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.StudentAttendanceModel, error) {
	var m model.StudentAttendanceModel
	err := r.DB.WithContext(ctx).
		Where("student_attendance_user_id = ? AND student_attendance_training_date = CAST(? AS date)", userID, sqlDate(date)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StudentAttendanceRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.StudentAttendanceModel, error) {
	var rows []model.StudentAttendanceModel
	if err := r.DB.WithContext(ctx).
		Where("student_attendance_user_id = ?", userID).
		Order("student_attendance_training_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StudentAttendanceRepository) Insert(ctx context.Context, m *model.StudentAttendanceModel) error {
	return insert(r.DB.WithContext(ctx), m)
}

func (r *StudentAttendanceRepository) Update(ctx context.Context, m *model.StudentAttendanceModel) error {
	return update(r.DB.WithContext(ctx), m)
}

// SaveBatch: semua insert & update dalam satu transaksi (gagal satu = rollback semua).
func (r *StudentAttendanceRepository) SaveBatch(ctx context.Context, inserts, updates []*model.StudentAttendanceModel) error {
	if len(inserts) == 0 && len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range inserts {
			if err := insert(tx, m); err != nil {
				return err
			}
		}
		for _, m := range updates {
			if err := update(tx, m); err != nil {
				return err
			}
		}
		return nil
	})
}

func insert(db *gorm.DB, m *model.StudentAttendanceModel) error {
	if m.StudentAttendanceID == uuid.Nil {
		m.StudentAttendanceID = uuid.New()
	}
	return db.Create(m).Error
}

// update menulis semua kolom (termasuk nilai kosong & false) kecuali audit create.
func update(db *gorm.DB, m *model.StudentAttendanceModel) error {
	res := db.Model(m).
		Select("*").
		Omit("student_attendance_id", "student_attendance_created_by", "student_attendance_created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ====================== TRAINING DAYS ====================== */

// CountTrainingDays: jumlah course_section aktif pada tanggal tsb (0 = bukan hari pelatihan).
func (r *StudentAttendanceRepository) CountTrainingDays(ctx context.Context, courseID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.CourseSectionModel{}).
		Where("course_section_course_id = ? AND course_section_date = CAST(? AS date) AND course_section_is_deleted = FALSE", courseID, sqlDate(date)).
		Count(&n).Error
	return n, err
}

// CountNotEntered: record aktif sebelum `before` yang jam masuk/pulangnya masih kosong.
func (r *StudentAttendanceRepository) CountNotEntered(ctx context.Context, userID uuid.UUID, before time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_user_id = ?", userID).
		Where("student_attendance_is_deleted = FALSE").
		Where("student_attendance_training_date < CAST(? AS date)", sqlDate(before)).
		Where("(student_attendance_start_time = '' OR student_attendance_end_time = '')").
		Count(&n).Error
	return n, err
}

/* ====================== MANAGEMENT LIST ====================== */

// Satu baris per (user, hari pelatihan). Nama section digabung kalau sehari ada beberapa.
const managementSQL = `
WITH days AS (
	SELECT course_section_date AS training_date,
	       string_agg(course_section_name, ', ' ORDER BY course_section_name) AS section_name
	FROM course_sections
	WHERE course_section_course_id = @course_id
	  AND course_section_is_deleted = FALSE
	GROUP BY course_section_date
)
SELECT u.user_id,
       sa.student_attendance_id,
       d.training_date,
       d.section_name,
       COALESCE(sa.student_attendance_start_time, '') AS start_time,
       COALESCE(sa.student_attendance_end_time, '')   AS end_time,
       sa.student_attendance_blank_time               AS blank_time,
       COALESCE(sa.student_attendance_status, 0)      AS status,
       COALESCE(sa.student_attendance_note, '')       AS note
FROM days d
CROSS JOIN unnest(CAST(@user_ids AS uuid[])) AS u(user_id)
LEFT JOIN student_attendances sa
       ON sa.student_attendance_user_id = u.user_id
      AND sa.student_attendance_training_date = d.training_date
      AND sa.student_attendance_is_deleted = FALSE
ORDER BY u.user_id, d.training_date ASC`

func (r *StudentAttendanceRepository) ListManagement(ctx context.Context, courseID, userID uuid.UUID) ([]model.AttendanceManagementRow, error) {
	return r.ListManagementForUsers(ctx, courseID, []uuid.UUID{userID})
}

func (r *StudentAttendanceRepository) ListManagementForUsers(ctx context.Context, courseID uuid.UUID, userIDs []uuid.UUID) ([]model.AttendanceManagementRow, error) {
	rows := []model.AttendanceManagementRow{}
	if len(userIDs) == 0 {
		return rows, nil
	}
	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}
	err := r.DB.WithContext(ctx).
		Raw(managementSQL, map[string]any{
			"course_id": courseID,
			"user_ids":  pq.Array(ids),
		}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
