package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

type PunchKind int

const (
	PunchKindIn PunchKind = iota + 1
	PunchKindOut
)

// CheckPunch menjalankan pengecekan prasyarat saja (tanpa menyimpan).
func (s *AttendanceService) CheckPunch(ctx context.Context, actor Actor, kind PunchKind) error {
	_, err := s.checkPunch(ctx, actor, kind, s.now())
	return err
}

// checkPunch mengembalikan record hari ini (bisa nil / soft-deleted) kalau lolos.
func (s *AttendanceService) checkPunch(ctx context.Context, actor Actor, kind PunchKind, now time.Time) (*model.StudentAttendanceModel, error) {
	if !actor.IsStudent() {
		return nil, ErrNotAuthorized
	}
	date := DateOnly(now)

	n, err := s.Store.CountTrainingDays(ctx, actor.CourseID, date)
	if err != nil {
		return nil, fmt.Errorf("count training days: %w", err)
	}
	if n == 0 {
		return nil, ErrNotWorkDay
	}

	rec, err := s.Store.FindByUserAndDate(ctx, actor.UserID, date)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	active := rec != nil && !rec.StudentAttendanceIsDeleted

	switch kind {
	case PunchKindIn:
		if active && rec.StudentAttendanceStartTime.IsSet() {
			return nil, ErrPunchAlreadyExists
		}
	case PunchKindOut:
		if !active || rec.StudentAttendanceStartTime.IsBlank() {
			return nil, ErrPunchInEmpty
		}
		if rec.StudentAttendanceEndTime.IsSet() {
			return nil, ErrPunchAlreadyExists
		}
		if !dbtime.From(now).After(rec.StudentAttendanceStartTime) {
			return nil, ErrTrainingTimeRange
		}
	}
	return rec, nil
}

// PunchIn: catat jam masuk = sekarang.
func (s *AttendanceService) PunchIn(ctx context.Context, actor Actor) (*model.StudentAttendanceModel, error) {
	now := s.now()
	rec, err := s.checkPunch(ctx, actor, PunchKindIn, now)
	if err != nil {
		return nil, err
	}

	start := dbtime.From(now)
	status := Classify(start, dbtime.TrainingTime{}, s.Window)

	if rec == nil {
		rec = &model.StudentAttendanceModel{
			StudentAttendanceUserID:       actor.UserID,
			StudentAttendanceAccountID:    actor.AccountID,
			StudentAttendanceTrainingDate: datatypes.Date(DateOnly(now)),
			StudentAttendanceStartTime:    start,
			StudentAttendanceStatus:       status,
			StudentAttendanceCreatedBy:    actor.UserID,
			StudentAttendanceCreatedAt:    now,
			StudentAttendanceUpdatedBy:    actor.UserID,
			StudentAttendanceUpdatedAt:    now,
		}
		if err := s.Store.Insert(ctx, rec); err != nil {
			return nil, fmt.Errorf("insert attendance: %w", err)
		}
		log.Printf("[INFO] punch-in user=%s time=%s status=%s", actor.UserID, start, status)
		return rec, nil
	}

	// Record sudah ada (jam masuk kosong, atau soft-deleted) → hidupkan lagi
	if rec.StudentAttendanceIsDeleted {
		rec.StudentAttendanceEndTime = dbtime.TrainingTime{}
		rec.StudentAttendanceBlankTime = nil
		rec.StudentAttendanceNote = ""
	}
	rec.StudentAttendanceStartTime = start
	rec.StudentAttendanceStatus = status
	rec.StudentAttendanceIsDeleted = false
	rec.StudentAttendanceUpdatedBy = actor.UserID
	rec.StudentAttendanceUpdatedAt = now
	if err := s.Store.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	log.Printf("[INFO] punch-in (update) user=%s time=%s status=%s", actor.UserID, start, status)
	return rec, nil
}

// PunchOut: catat jam pulang = sekarang, hitung ulang status.
func (s *AttendanceService) PunchOut(ctx context.Context, actor Actor) (*model.StudentAttendanceModel, error) {
	now := s.now()
	rec, err := s.checkPunch(ctx, actor, PunchKindOut, now)
	if err != nil {
		return nil, err
	}

	end := dbtime.From(now)
	rec.StudentAttendanceEndTime = end
	rec.StudentAttendanceStatus = Classify(rec.StudentAttendanceStartTime, end, s.Window)
	rec.StudentAttendanceUpdatedBy = actor.UserID
	rec.StudentAttendanceUpdatedAt = now
	if err := s.Store.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	log.Printf("[INFO] punch-out user=%s time=%s status=%s", actor.UserID, end, rec.StudentAttendanceStatus)
	return rec, nil
}
