package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms_backend/internals/constants"
)

// AttendanceError = kegagalan tunggal (otorisasi / prasyarat). Key = message key.
type AttendanceError struct {
	Status int
	Key    string
}

func (e *AttendanceError) Error() string { return e.Key }

var (
	ErrNotAuthorized      = &AttendanceError{Status: fiber.StatusForbidden, Key: constants.MsgAuthorization}
	ErrNotWorkDay         = &AttendanceError{Status: fiber.StatusConflict, Key: constants.MsgAttendanceNotWorkDay}
	ErrPunchAlreadyExists = &AttendanceError{Status: fiber.StatusConflict, Key: constants.MsgAttendancePunchExists}
	ErrPunchInEmpty       = &AttendanceError{Status: fiber.StatusConflict, Key: constants.MsgAttendancePunchInEmpty}
	ErrTrainingTimeRange  = &AttendanceError{Status: fiber.StatusConflict, Key: constants.MsgAttendanceTimeRange}
)

// FieldError: satu error yang terikat ke field tertentu di batch.
type FieldError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors = kumpulan error batch edit. Messages sudah unik (urutan kemunculan pertama).
type ValidationErrors struct {
	Fields   []FieldError `json:"fields"`
	Messages []string     `json:"messages"`

	seen map[string]struct{}
}

func (v *ValidationErrors) add(index int, field, msg string) {
	v.Fields = append(v.Fields, FieldError{Index: index, Field: field, Message: msg})
	if v.seen == nil {
		v.seen = make(map[string]struct{})
	}
	if _, ok := v.seen[msg]; ok {
		return
	}
	v.seen[msg] = struct{}{}
	v.Messages = append(v.Messages, msg)
}

func (v *ValidationErrors) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Fields)
}

// HasField: ada error untuk field ini di entry ke-index?
func (v *ValidationErrors) HasField(index int, field string) bool {
	if v == nil {
		return false
	}
	for _, f := range v.Fields {
		if f.Index == index && f.Field == field {
			return true
		}
	}
	return false
}

func (v *ValidationErrors) Error() string {
	return strings.Join(v.Messages, "; ")
}
