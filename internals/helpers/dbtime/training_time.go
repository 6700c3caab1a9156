// file: internals/helpers/dbtime/training_time.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TrainingTime = jam:menit dalam satu hari (tanpa tanggal & zona).
// Zero value adalah "blank": jam & menit sama-sama belum diisi.
type TrainingTime struct {
	hour   int
	minute int
	set    bool
}

// NewTrainingTime: jam/menit di luar rentang menghasilkan blank.
func NewTrainingTime(hour, minute int) TrainingTime {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TrainingTime{}
	}
	return TrainingTime{hour: hour, minute: minute, set: true}
}

// From: ambil jam & menit dari time.Time (detik dibuang)
func From(t time.Time) TrainingTime {
	return NewTrainingTime(t.Hour(), t.Minute())
}

// FromParts: gabungkan pasangan jam/menit dari form. Salah satu nil → blank.
func FromParts(hour, minute *int) TrainingTime {
	if hour == nil || minute == nil {
		return TrainingTime{}
	}
	return NewTrainingTime(*hour, *minute)
}

// Parse membaca "H:MM" / "HH:MM". Input kosong, rusak, atau di luar rentang → blank.
func Parse(s string) TrainingTime {
	t, err := ParseStrict(s)
	if err != nil {
		return TrainingTime{}
	}
	return t
}

// ParseStrict sama seperti Parse tapi mengembalikan error.
func ParseStrict(s string) (TrainingTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TrainingTime{}, fmt.Errorf("training time: empty")
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TrainingTime{}, fmt.Errorf("training time: invalid format %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TrainingTime{}, fmt.Errorf("training time: invalid hour %q", parts[0])
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TrainingTime{}, fmt.Errorf("training time: invalid minute %q", parts[1])
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TrainingTime{}, fmt.Errorf("training time: out of range %q", s)
	}
	return TrainingTime{hour: h, minute: m, set: true}, nil
}

func (t TrainingTime) IsBlank() bool { return !t.set }
func (t TrainingTime) IsSet() bool   { return t.set }
func (t TrainingTime) Hour() int     { return t.hour }
func (t TrainingTime) Minute() int   { return t.minute }

// Minutes sejak 00:00. Blank → 0.
func (t TrainingTime) Minutes() int {
	if !t.set {
		return 0
	}
	return t.hour*60 + t.minute
}

// Compare: -1, 0, 1. Blank selalu paling awal (blank vs blank = 0).
func (t TrainingTime) Compare(o TrainingTime) int {
	switch {
	case !t.set && !o.set:
		return 0
	case !t.set:
		return -1
	case !o.set:
		return 1
	}
	a, b := t.Minutes(), o.Minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (t TrainingTime) Before(o TrainingTime) bool { return t.Compare(o) < 0 }
func (t TrainingTime) After(o TrainingTime) bool  { return t.Compare(o) > 0 }

// String: "HH:MM" untuk disimpan; blank → "".
func (t TrainingTime) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Scan: terima string/[]byte "HH:MM" atau NULL. Format rusak → blank.
func (t *TrainingTime) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*t = TrainingTime{}
	case string:
		*t = Parse(x)
	case []byte:
		*t = Parse(string(x))
	case time.Time:
		*t = From(x)
	default:
		return fmt.Errorf("training time: unsupported Scan type %T", v)
	}
	return nil
}

// Value: kolom varchar, blank disimpan sebagai "".
func (t TrainingTime) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t TrainingTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TrainingTime) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*t = TrainingTime{}
		return nil
	}
	*t = Parse(*s)
	return nil
}
