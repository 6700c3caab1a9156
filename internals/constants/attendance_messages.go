package constants

// Message keys untuk fitur kehadiran (dipakai helpers/message)
const (
	MsgAuthorization              = "attendance.authorization"
	MsgAttendanceNotWorkDay       = "attendance.not_work_day"
	MsgAttendancePunchExists      = "attendance.punch_already_exists"
	MsgAttendancePunchInEmpty     = "attendance.punch_in_empty"
	MsgAttendanceTimeRange        = "attendance.training_time_range"
	MsgAttendanceBlankTimeError   = "attendance.blank_time_error"
	MsgAttendanceUpdateNotice     = "attendance.update_notice"
	MsgAttendanceValidationFailed = "attendance.validation_failed"
	MsgMaxLength                  = "validation.max_length"
	MsgInputInvalid               = "validation.input_invalid"

	LabelNote      = "label.note"
	LabelStartTime = "label.start_time"
	LabelEndTime   = "label.end_time"
)

// Batas panjang catatan harian
const AttendanceNoteMaxLength = 100
