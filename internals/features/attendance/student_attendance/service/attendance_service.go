package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
	"lms_backend/internals/helpers/message"
)

type Config struct {
	Window       WorkWindow
	Location     *time.Location
	Validation   ValidateOptions
	AbsentPolicy AbsentPolicy
}

type AttendanceService struct {
	Store        AttendanceStore
	Window       WorkWindow
	Location     *time.Location
	Validation   ValidateOptions
	AbsentPolicy AbsentPolicy
	Now          func() time.Time
}

func NewAttendanceService(store AttendanceStore, cfg Config) *AttendanceService {
	w := cfg.Window
	if !w.IsSet() {
		w = StandardWorkWindow()
	}
	loc := cfg.Location
	if loc == nil {
		loc = dbtime.DefaultLocation()
	}
	return &AttendanceService{
		Store:        store,
		Window:       w,
		Location:     loc,
		Validation:   cfg.Validation,
		AbsentPolicy: cfg.AbsentPolicy,
		Now:          time.Now,
	}
}

func (s *AttendanceService) now() time.Time {
	return s.Now().In(s.Location)
}

// Today = tanggal pelatihan hari ini (jam dibuang) di zona lembaga.
func (s *AttendanceService) Today() time.Time {
	return dbtime.TruncateDate(s.now())
}

// ManagementItem = satu baris daftar kehadiran untuk tampilan.
type ManagementItem struct {
	model.AttendanceManagementRow
	BlankTimeValue string `json:"blank_time_value,omitempty"`
	StatusDispName string `json:"status_disp_name"`
	IsToday        bool   `json:"is_today"`
}

// Management: semua hari pelatihan course + record user (kalau ada).
func (s *AttendanceService) Management(ctx context.Context, courseID, userID uuid.UUID) ([]ManagementItem, error) {
	rows, err := s.Store.ListManagement(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("list management: %w", err)
	}
	return s.decorate(rows), nil
}

// ManagementForUsers: versi banyak siswa (dipakai export).
func (s *AttendanceService) ManagementForUsers(ctx context.Context, courseID uuid.UUID, userIDs []uuid.UUID) ([]ManagementItem, error) {
	if len(userIDs) == 0 {
		return []ManagementItem{}, nil
	}
	rows, err := s.Store.ListManagementForUsers(ctx, courseID, userIDs)
	if err != nil {
		return nil, fmt.Errorf("list management for users: %w", err)
	}
	return s.decorate(rows), nil
}

func (s *AttendanceService) decorate(rows []model.AttendanceManagementRow) []ManagementItem {
	today := s.Today()
	out := make([]ManagementItem, 0, len(rows))
	for _, r := range rows {
		it := ManagementItem{
			AttendanceManagementRow: r,
			StatusDispName:          r.Status.Label(),
			IsToday:                 dbtime.SameDate(r.TrainingDate, today),
		}
		if r.BlankTime != nil {
			it.BlankTimeValue = ToHourMinute(*r.BlankTime).String()
		}
		out = append(out, it)
	}
	return out
}

// NotEnteredCount: jumlah hari lampau yang jam masuk/pulangnya belum lengkap.
func (s *AttendanceService) NotEnteredCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.Store.CountNotEntered(ctx, userID, DateOnly(s.Today()))
	if err != nil {
		return 0, fmt.Errorf("count not entered: %w", err)
	}
	return n, nil
}

// ValidateBatch dengan tanggal hari ini sebagai batas.
func (s *AttendanceService) ValidateBatch(entries []DailyEntry, r message.Resolver) *ValidationErrors {
	return ValidateBatch(entries, s.Today(), r, s.Validation)
}

// MergeAndPersist: validasi → ambil record lama → merge → simpan (satu transaksi).
// Siswa hanya bisa mengedit miliknya sendiri; staff mengedit targetUserID.
func (s *AttendanceService) MergeAndPersist(ctx context.Context, actor Actor, targetUserID uuid.UUID, entries []DailyEntry, r message.Resolver) ([]*model.StudentAttendanceModel, error) {
	switch {
	case actor.IsStudent():
		targetUserID = actor.UserID
	case actor.IsStaff():
		if targetUserID == uuid.Nil {
			return nil, ErrNotAuthorized
		}
	default:
		return nil, ErrNotAuthorized
	}

	if verrs := s.ValidateBatch(entries, r); verrs != nil {
		return nil, verrs
	}

	existing, err := s.Store.FindAllByUser(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("find attendances: %w", err)
	}

	res := MergeEntries(entries, existing, MergeParams{
		UserID:       targetUserID,
		AccountID:    actor.AccountID,
		ModifierID:   actor.UserID,
		Now:          s.now(),
		Window:       s.Window,
		AbsentPolicy: s.AbsentPolicy,
	})

	if err := s.Store.SaveBatch(ctx, res.Inserts, res.Updates); err != nil {
		return nil, fmt.Errorf("save attendances: %w", err)
	}
	log.Printf("[INFO] attendance batch saved user=%s inserted=%d updated=%d", targetUserID, len(res.Inserts), len(res.Updates))
	return res.All(), nil
}

// ConfigFromSchedule: nilai mentah file jadwal → Config. Jam kosong = jam standar.
func ConfigFromSchedule(workStart, workEnd string, totalMinuteRangeCheck bool, absentPolicy string, loc *time.Location) (Config, error) {
	cfg := Config{
		Window:     StandardWorkWindow(),
		Location:   loc,
		Validation: ValidateOptions{TotalMinuteRangeCheck: totalMinuteRangeCheck},
	}

	if workStart != "" || workEnd != "" {
		start, err := dbtime.ParseStrict(workStart)
		if err != nil {
			return Config{}, fmt.Errorf("work_window.start: %w", err)
		}
		end, err := dbtime.ParseStrict(workEnd)
		if err != nil {
			return Config{}, fmt.Errorf("work_window.end: %w", err)
		}
		if !start.Before(end) {
			return Config{}, fmt.Errorf("work_window: start %s harus sebelum end %s", start, end)
		}
		cfg.Window = WorkWindow{Start: start, End: end}
	}

	policy, err := ParseAbsentPolicy(absentPolicy)
	if err != nil {
		return Config{}, err
	}
	cfg.AbsentPolicy = policy
	return cfg, nil
}
