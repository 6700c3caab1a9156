package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/features/attendance/student_attendance/model"
)

// fakeStore menyimpan record di memori.
type fakeStore struct {
	records      map[uuid.UUID]model.StudentAttendanceModel
	trainingDays map[string]int64 // key: courseID|date
	rows         []model.AttendanceManagementRow
	saveErr      error

	inserts, updates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:      map[uuid.UUID]model.StudentAttendanceModel{},
		trainingDays: map[string]int64{},
	}
}

func dayKey(courseID uuid.UUID, date time.Time) string {
	return courseID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeStore) addTrainingDay(courseID uuid.UUID, date time.Time) {
	f.trainingDays[dayKey(courseID, date)]++
}

func (f *fakeStore) put(m model.StudentAttendanceModel) model.StudentAttendanceModel {
	if m.StudentAttendanceID == uuid.Nil {
		m.StudentAttendanceID = uuid.New()
	}
	f.records[m.StudentAttendanceID] = m
	return m
}

func (f *fakeStore) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (*model.StudentAttendanceModel, error) {
	for _, r := range f.records {
		if r.StudentAttendanceUserID == userID && dateKey(r.TrainingDate()) == dateKey(date) {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindAllByUser(_ context.Context, userID uuid.UUID) ([]model.StudentAttendanceModel, error) {
	out := []model.StudentAttendanceModel{}
	for _, r := range f.records {
		if r.StudentAttendanceUserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainingDate().Before(out[j].TrainingDate()) })
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, m *model.StudentAttendanceModel) error {
	if m.StudentAttendanceID == uuid.Nil {
		m.StudentAttendanceID = uuid.New()
	}
	f.records[m.StudentAttendanceID] = *m
	f.inserts++
	return nil
}

func (f *fakeStore) Update(_ context.Context, m *model.StudentAttendanceModel) error {
	if _, ok := f.records[m.StudentAttendanceID]; !ok {
		return errors.New("record not found")
	}
	f.records[m.StudentAttendanceID] = *m
	f.updates++
	return nil
}

func (f *fakeStore) SaveBatch(ctx context.Context, inserts, updates []*model.StudentAttendanceModel) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, m := range inserts {
		if err := f.Insert(ctx, m); err != nil {
			return err
		}
	}
	for _, m := range updates {
		if err := f.Update(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) CountTrainingDays(_ context.Context, courseID uuid.UUID, date time.Time) (int64, error) {
	return f.trainingDays[dayKey(courseID, date)], nil
}

func (f *fakeStore) CountNotEntered(_ context.Context, userID uuid.UUID, before time.Time) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.StudentAttendanceUserID != userID || r.StudentAttendanceIsDeleted {
			continue
		}
		if !r.TrainingDate().Before(before) {
			continue
		}
		if r.StudentAttendanceStartTime.IsBlank() || r.StudentAttendanceEndTime.IsBlank() {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ListManagement(_ context.Context, _, userID uuid.UUID) ([]model.AttendanceManagementRow, error) {
	out := []model.AttendanceManagementRow{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListManagementForUsers(_ context.Context, _ uuid.UUID, userIDs []uuid.UUID) ([]model.AttendanceManagementRow, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range userIDs {
		want[id] = true
	}
	out := []model.AttendanceManagementRow{}
	for _, r := range f.rows {
		if want[r.UserID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func intp(v int) *int { return &v }
