package model

// AttendanceStatus disimpan sebagai kode numerik (kolom student_attendance_status).
type AttendanceStatus int16

const (
	StatusNone                 AttendanceStatus = 0
	StatusTardy                AttendanceStatus = 1
	StatusLeavingEarly         AttendanceStatus = 2
	StatusTardyAndLeavingEarly AttendanceStatus = 3
	StatusAbsent               AttendanceStatus = 4 // diisi staff, tidak pernah dari classifier
)

type statusInfo struct {
	Status AttendanceStatus
	Label  string
}

// Tabel kode ↔ label. Urutan = urutan kode.
var statusTable = []statusInfo{
	{StatusNone, ""},
	{StatusTardy, "Tardy"},
	{StatusLeavingEarly, "Leaving early"},
	{StatusTardyAndLeavingEarly, "Tardy & leaving early"},
	{StatusAbsent, "Absent"},
}

// StatusFromCode: ok=false kalau kode tidak dikenal.
func StatusFromCode(code int) (AttendanceStatus, bool) {
	for _, s := range statusTable {
		if int(s.Status) == code {
			return s.Status, true
		}
	}
	return StatusNone, false
}

// StatusFromLabel: kebalikan dari Label().
func StatusFromLabel(label string) (AttendanceStatus, bool) {
	for _, s := range statusTable {
		if s.Label == label {
			return s.Status, true
		}
	}
	return StatusNone, false
}

func (s AttendanceStatus) Code() int { return int(s) }

func (s AttendanceStatus) Label() string {
	for _, st := range statusTable {
		if st.Status == s {
			return st.Label
		}
	}
	return ""
}

func (s AttendanceStatus) IsValid() bool {
	_, ok := StatusFromCode(int(s))
	return ok
}

func (s AttendanceStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusTardy:
		return "tardy"
	case StatusLeavingEarly:
		return "leaving_early"
	case StatusTardyAndLeavingEarly:
		return "tardy_and_leaving_early"
	case StatusAbsent:
		return "absent"
	}
	return "unknown"
}
