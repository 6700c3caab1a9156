package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

func mergeParams(userID uuid.UUID) MergeParams {
	return MergeParams{
		UserID:     userID,
		AccountID:  uuid.New(),
		ModifierID: userID,
		Now:        time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Window:     StandardWorkWindow(),
	}
}

func existingRecord(userID uuid.UUID, date time.Time, start, end string, status model.AttendanceStatus) model.StudentAttendanceModel {
	return model.StudentAttendanceModel{
		StudentAttendanceID:           uuid.New(),
		StudentAttendanceUserID:       userID,
		StudentAttendanceTrainingDate: datatypes.Date(date),
		StudentAttendanceStartTime:    dbtime.Parse(start),
		StudentAttendanceEndTime:      dbtime.Parse(end),
		StudentAttendanceStatus:       status,
		StudentAttendanceNote:         "old",
	}
}

func TestMergeUpdatesExistingRecord(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	old := existingRecord(userID, day, "09:00", "", model.StatusNone)

	e := fullEntry(9, 30, 18, 0)
	e.Date = day
	e.Note = "kereta terlambat"
	e.BlankTime = intp(60)

	res := MergeEntries([]DailyEntry{e}, []model.StudentAttendanceModel{old}, mergeParams(userID))
	require.Empty(t, res.Inserts)
	require.Len(t, res.Updates, 1)

	got := res.Updates[0]
	assert.Equal(t, old.StudentAttendanceID, got.StudentAttendanceID)
	assert.Equal(t, "09:30", got.StudentAttendanceStartTime.String())
	assert.Equal(t, "18:00", got.StudentAttendanceEndTime.String())
	assert.Equal(t, model.StatusTardy, got.StudentAttendanceStatus)
	assert.Equal(t, "kereta terlambat", got.StudentAttendanceNote)
	assert.Equal(t, 60, *got.StudentAttendanceBlankTime)
	assert.Equal(t, userID, got.StudentAttendanceUpdatedBy)

	// slice input tidak berubah
	assert.Equal(t, "old", old.StudentAttendanceNote)
}

func TestMergeInsertsNewDate(t *testing.T) {
	userID := uuid.New()
	p := mergeParams(userID)
	e := fullEntry(9, 0, 17, 0)
	e.Date = time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)

	res := MergeEntries([]DailyEntry{e}, nil, p)
	require.Len(t, res.Inserts, 1)
	require.Empty(t, res.Updates)

	got := res.Inserts[0]
	assert.True(t, got.IsNew())
	assert.Equal(t, userID, got.StudentAttendanceUserID)
	assert.Equal(t, p.AccountID, got.StudentAttendanceAccountID)
	assert.Equal(t, model.StatusLeavingEarly, got.StudentAttendanceStatus)
	assert.Equal(t, p.Now, got.StudentAttendanceCreatedAt)
	assert.Equal(t, userID, got.StudentAttendanceCreatedBy)
	assert.True(t, dbtime.SameDate(e.Date, got.TrainingDate()))
}

func TestMergePartialTimeClearsStoredValue(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	old := existingRecord(userID, day, "09:00", "18:00", model.StatusNone)

	e := DailyEntry{Date: day, StartHour: intp(9), EndHour: intp(18), EndMinute: intp(0)}
	res := MergeEntries([]DailyEntry{e}, []model.StudentAttendanceModel{old}, mergeParams(userID))
	require.Len(t, res.Updates, 1)
	assert.True(t, res.Updates[0].StudentAttendanceStartTime.IsBlank())
	assert.Equal(t, "18:00", res.Updates[0].StudentAttendanceEndTime.String())
}

func TestMergeResurrectsSoftDeleted(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	old := existingRecord(userID, day, "", "", model.StatusNone)
	old.StudentAttendanceIsDeleted = true

	e := fullEntry(9, 0, 18, 0)
	e.Date = day
	res := MergeEntries([]DailyEntry{e}, []model.StudentAttendanceModel{old}, mergeParams(userID))
	require.Len(t, res.Updates, 1)
	assert.False(t, res.Updates[0].StudentAttendanceIsDeleted)
}

func TestMergeSameDateTwiceTouchesOneRecord(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	a := fullEntry(9, 0, 18, 0)
	a.Date = day
	b := fullEntry(10, 0, 18, 0)
	b.Date = day

	res := MergeEntries([]DailyEntry{a, b}, nil, mergeParams(userID))
	require.Len(t, res.Inserts, 1)
	assert.Equal(t, "10:00", res.Inserts[0].StudentAttendanceStartTime.String())
	assert.Len(t, res.All(), 1)
}

func TestMergeAbsentPolicy(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		policy AbsentPolicy
		prior  model.AttendanceStatus
		entry  DailyEntry
		want   model.AttendanceStatus
	}{
		{"absent blank kept", AbsentKeptWhenBlank, model.StatusAbsent, DailyEntry{Date: day}, model.StatusAbsent},
		{"absent with times recomputed", AbsentKeptWhenBlank, model.StatusAbsent, DailyEntry{Date: day, StartHour: intp(9), StartMinute: intp(15)}, model.StatusTardy},
		{"tardy blank recomputed", AbsentKeptWhenBlank, model.StatusTardy, DailyEntry{Date: day}, model.StatusNone},
		{"source: absent with times kept", AbsentAlwaysKept, model.StatusAbsent, DailyEntry{Date: day, StartHour: intp(9), StartMinute: intp(15)}, model.StatusAbsent},
		{"source: blank keeps status", AbsentAlwaysKept, model.StatusTardy, DailyEntry{Date: day}, model.StatusTardy},
		{"source: times recomputed", AbsentAlwaysKept, model.StatusTardy, DailyEntry{Date: day, StartHour: intp(9), StartMinute: intp(0)}, model.StatusNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			old := existingRecord(userID, day, "", "", tc.prior)
			tc.entry.PriorStatus = tc.prior
			p := mergeParams(userID)
			p.AbsentPolicy = tc.policy

			res := MergeEntries([]DailyEntry{tc.entry}, []model.StudentAttendanceModel{old}, p)
			require.Len(t, res.Updates, 1)
			assert.Equal(t, tc.want, res.Updates[0].StudentAttendanceStatus)
		})
	}
}

func TestMergeLeavesUntouchedRecordsOut(t *testing.T) {
	userID := uuid.New()
	other := existingRecord(userID, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), "09:00", "18:00", model.StatusNone)

	e := fullEntry(9, 0, 18, 0)
	e.Date = time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	res := MergeEntries([]DailyEntry{e}, []model.StudentAttendanceModel{other}, mergeParams(userID))
	assert.Len(t, res.Inserts, 1)
	assert.Empty(t, res.Updates)
}
