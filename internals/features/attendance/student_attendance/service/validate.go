package service

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"lms_backend/internals/constants"
	"lms_backend/internals/helpers/dbtime"
	"lms_backend/internals/helpers/message"
)

// ValidateOptions = policy validasi batch.
type ValidateOptions struct {
	// TotalMinuteRangeCheck: true → jam masuk >= jam pulang dibandingkan dalam menit total.
	// Default false: aturan lama (jam & menit dibandingkan terpisah).
	TotalMinuteRangeCheck bool
}

// Nama field untuk FieldError
const (
	FieldNote              = "note"
	FieldTrainingStartHour = "training_start_hour"
	FieldTrainingEndHour   = "training_end_hour"
	FieldEndOnly           = "end_only"
	FieldTrainingTimeOver  = "training_time_over"
	FieldBlankTime         = "blank_time"
)

func listField(i int, name string) string {
	return fmt.Sprintf("attendance_list[%d].%s", i, name)
}

// ValidateBatch memeriksa batch edit. Hanya entry dengan tanggal < tanggal asOf yang dicek.
// Semua error dikumpulkan (tidak berhenti di error pertama). nil = valid.
func ValidateBatch(entries []DailyEntry, asOf time.Time, r message.Resolver, opts ValidateOptions) *ValidationErrors {
	errs := &ValidationErrors{}

	for i, e := range entries {
		if !dbtime.BeforeDate(e.Date, asOf) {
			continue
		}
		validateEntry(errs, i, e, r, opts)
	}

	if errs.Len() == 0 {
		return nil
	}
	return errs
}

func validateEntry(errs *ValidationErrors, i int, e DailyEntry, r message.Resolver, opts ValidateOptions) {
	sh, sm, eh, em := e.StartHour, e.StartMinute, e.EndHour, e.EndMinute

	// 1) panjang catatan
	if utf8.RuneCountInString(e.Note) >= constants.AttendanceNoteMaxLength {
		msg := r.Resolve(constants.MsgMaxLength, r.Resolve(constants.LabelNote), strconv.Itoa(constants.AttendanceNoteMaxLength))
		errs.add(i, FieldNote, msg)
	}

	// 2) jam masuk cuma terisi sebagian
	if (sh == nil) != (sm == nil) {
		msg := r.Resolve(constants.MsgInputInvalid, r.Resolve(constants.LabelStartTime))
		errs.add(i, FieldTrainingStartHour, msg)
		if sh == nil {
			errs.add(i, listField(i, "start_hour"), msg)
		} else {
			errs.add(i, listField(i, "start_minute"), msg)
		}
	}

	// 3) jam pulang cuma terisi sebagian
	if (eh == nil) != (em == nil) {
		msg := r.Resolve(constants.MsgInputInvalid, r.Resolve(constants.LabelEndTime))
		errs.add(i, FieldTrainingEndHour, msg)
		if eh == nil {
			errs.add(i, listField(i, "end_hour"), msg)
		} else {
			errs.add(i, listField(i, "end_minute"), msg)
		}
	}

	// 4) hanya jam pulang
	if sh == nil && sm == nil && eh != nil && em != nil {
		errs.add(i, FieldEndOnly, r.Resolve(constants.MsgAttendancePunchInEmpty))
	}

	complete := sh != nil && sm != nil && eh != nil && em != nil

	// 5) urutan jam masuk / pulang
	if complete && rangeInverted(*sh, *sm, *eh, *em, opts) {
		errs.add(i, FieldTrainingTimeOver, r.Resolve(constants.MsgAttendanceTimeRange))
	}

	// 6) istirahat tidak boleh lebih lama dari waktu pelatihan
	worked := 0
	if complete {
		worked = (*eh-*sh)*60 + (*em - *sm)
	}
	if e.BlankTime != nil && worked < *e.BlankTime {
		errs.add(i, FieldBlankTime, r.Resolve(constants.MsgAttendanceBlankTimeError))
	}
}

func rangeInverted(sh, sm, eh, em int, opts ValidateOptions) bool {
	if opts.TotalMinuteRangeCheck {
		return sh*60+sm >= eh*60+em
	}
	return sh > eh && sm > em
}
