package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

// AbsentPolicy: kapan status "Absent" dipertahankan saat batch edit.
type AbsentPolicy int

const (
	// AbsentKeptWhenBlank: Absent tetap kalau jam masuk & pulang kosong;
	// kalau salah satu jam diisi, status dihitung ulang.
	AbsentKeptWhenBlank AbsentPolicy = iota
	// AbsentAlwaysKept: Absent tidak pernah ditimpa, dan status juga tidak
	// dihitung ulang untuk hari tanpa jam sama sekali.
	AbsentAlwaysKept
)

// ParseAbsentPolicy: "kept_when_blank" (default) | "always_kept".
func ParseAbsentPolicy(s string) (AbsentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kept_when_blank":
		return AbsentKeptWhenBlank, nil
	case "always_kept":
		return AbsentAlwaysKept, nil
	}
	return AbsentKeptWhenBlank, fmt.Errorf("absent policy tidak dikenal: %q", s)
}

func (p AbsentPolicy) keepStatus(prior model.AttendanceStatus, start, end dbtime.TrainingTime) bool {
	blank := start.IsBlank() && end.IsBlank()
	switch p {
	case AbsentAlwaysKept:
		return prior == model.StatusAbsent || blank
	default:
		return prior == model.StatusAbsent && blank
	}
}

type MergeParams struct {
	UserID       uuid.UUID // pemilik record
	AccountID    uuid.UUID
	ModifierID   uuid.UUID // user yang mengedit
	Now          time.Time
	Window       WorkWindow
	AbsentPolicy AbsentPolicy
}

type MergeResult struct {
	Inserts []*model.StudentAttendanceModel
	Updates []*model.StudentAttendanceModel
}

// All: inserts lalu updates.
func (r MergeResult) All() []*model.StudentAttendanceModel {
	out := make([]*model.StudentAttendanceModel, 0, len(r.Inserts)+len(r.Updates))
	out = append(out, r.Inserts...)
	return append(out, r.Updates...)
}

// DateOnly: tanggal kalender t sebagai 00:00 UTC (format kolom date).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format(dbtime.DateLayout)
}

// MergeEntries menggabungkan entry batch ke record yang sudah ada (dicocokkan per tanggal).
// existing tidak diubah; record yang disentuh dikembalikan sebagai insert/update.
func MergeEntries(entries []DailyEntry, existing []model.StudentAttendanceModel, p MergeParams) MergeResult {
	byDate := make(map[string]*model.StudentAttendanceModel, len(existing))
	for i := range existing {
		rec := existing[i]
		byDate[dateKey(rec.TrainingDate())] = &rec
	}

	touched := make([]*model.StudentAttendanceModel, 0, len(entries))
	seen := make(map[*model.StudentAttendanceModel]struct{}, len(entries))

	for _, e := range entries {
		key := dateKey(e.Date)
		rec, ok := byDate[key]
		if !ok {
			rec = &model.StudentAttendanceModel{
				StudentAttendanceTrainingDate: datatypes.Date(DateOnly(e.Date)),
			}
			byDate[key] = rec
		}

		applyEntry(rec, e, p)

		if _, dup := seen[rec]; !dup {
			seen[rec] = struct{}{}
			touched = append(touched, rec)
		}
	}

	var res MergeResult
	for _, rec := range touched {
		if rec.IsNew() {
			rec.StudentAttendanceCreatedBy = p.ModifierID
			rec.StudentAttendanceCreatedAt = p.Now
			res.Inserts = append(res.Inserts, rec)
		} else {
			res.Updates = append(res.Updates, rec)
		}
	}
	return res
}

func applyEntry(rec *model.StudentAttendanceModel, e DailyEntry, p MergeParams) {
	start := dbtime.FromParts(e.StartHour, e.StartMinute)
	end := dbtime.FromParts(e.EndHour, e.EndMinute)

	rec.StudentAttendanceUserID = p.UserID
	rec.StudentAttendanceAccountID = p.AccountID
	rec.StudentAttendanceStartTime = start
	rec.StudentAttendanceEndTime = end
	rec.StudentAttendanceBlankTime = copyInt(e.BlankTime)

	if !p.AbsentPolicy.keepStatus(e.PriorStatus, start, end) {
		rec.StudentAttendanceStatus = Classify(start, end, p.Window)
	}

	rec.StudentAttendanceNote = e.Note
	rec.StudentAttendanceIsDeleted = false
	rec.StudentAttendanceUpdatedBy = p.ModifierID
	rec.StudentAttendanceUpdatedAt = p.Now
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	x := *v
	return &x
}
