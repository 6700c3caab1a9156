// file: internals/features/attendance/student_attendance/dto/student_attendance_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/features/attendance/student_attendance/service"
	"lms_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST: batch edit
   ========================================================= */

type DailyAttendanceRequest struct {
	StudentAttendanceID *uuid.UUID `json:"student_attendance_id"`
	TrainingDate        string     `json:"training_date" validate:"required,datetime=2006-01-02"`
	StartHour           *int       `json:"start_hour" validate:"omitempty,min=0,max=23"`
	StartMinute         *int       `json:"start_minute" validate:"omitempty,min=0,max=59"`
	EndHour             *int       `json:"end_hour" validate:"omitempty,min=0,max=23"`
	EndMinute           *int       `json:"end_minute" validate:"omitempty,min=0,max=59"`
	BlankTime           *int       `json:"blank_time" validate:"omitempty,min=0,max=1440"`
	Note                string     `json:"note"`
	SectionName         string     `json:"section_name"`
	Status              *int       `json:"status" validate:"omitempty,min=0,max=4"`
	StatusDispName      string     `json:"status_disp_name"`
}

type AttendanceUpdateRequest struct {
	AttendanceList []DailyAttendanceRequest `json:"attendance_list" validate:"required,min=1,dive"`
}

// ToEntry: request → service.DailyEntry (tanggal diparse di loc).
func (r DailyAttendanceRequest) ToEntry(loc *time.Location) (service.DailyEntry, error) {
	date, err := dbtime.ParseDate(r.TrainingDate, loc)
	if err != nil {
		return service.DailyEntry{}, err
	}
	return service.DailyEntry{
		RecordID:    r.StudentAttendanceID,
		Date:        date,
		StartHour:   r.StartHour,
		StartMinute: r.StartMinute,
		EndHour:     r.EndHour,
		EndMinute:   r.EndMinute,
		BlankTime:   r.BlankTime,
		Note:        r.Note,
		SectionName: strings.TrimSpace(r.SectionName),
		PriorStatus: r.priorStatus(),
	}, nil
}

// priorStatus: kode status dipakai dulu, kalau kosong coba dari label.
func (r DailyAttendanceRequest) priorStatus() model.AttendanceStatus {
	if r.Status != nil {
		if s, ok := model.StatusFromCode(*r.Status); ok {
			return s
		}
	}
	if s, ok := model.StatusFromLabel(strings.TrimSpace(r.StatusDispName)); ok {
		return s
	}
	return model.StatusNone
}

func (in AttendanceUpdateRequest) ToEntries(loc *time.Location) ([]service.DailyEntry, error) {
	out := make([]service.DailyEntry, 0, len(in.AttendanceList))
	for _, r := range in.AttendanceList {
		e, err := r.ToEntry(loc)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentAttendanceResponse struct {
	StudentAttendanceID uuid.UUID `json:"student_attendance_id"`
	UserID              uuid.UUID `json:"user_id"`
	TrainingDate        string    `json:"training_date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	BlankTime           *int      `json:"blank_time,omitempty"`
	BlankTimeValue      string    `json:"blank_time_value,omitempty"`
	Status              int       `json:"status"`
	StatusDispName      string    `json:"status_disp_name"`
	Note                string    `json:"note"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromModel(m *model.StudentAttendanceModel) StudentAttendanceResponse {
	out := StudentAttendanceResponse{
		StudentAttendanceID: m.StudentAttendanceID,
		UserID:              m.StudentAttendanceUserID,
		TrainingDate:        m.TrainingDate().Format(dbtime.DateLayout),
		StartTime:           m.StudentAttendanceStartTime.String(),
		EndTime:             m.StudentAttendanceEndTime.String(),
		BlankTime:           m.StudentAttendanceBlankTime,
		Status:              m.StudentAttendanceStatus.Code(),
		StatusDispName:      m.StudentAttendanceStatus.Label(),
		Note:                m.StudentAttendanceNote,
		UpdatedAt:           m.StudentAttendanceUpdatedAt,
	}
	if m.StudentAttendanceBlankTime != nil {
		out.BlankTimeValue = service.ToHourMinute(*m.StudentAttendanceBlankTime).String()
	}
	return out
}

func FromModels(ms []*model.StudentAttendanceModel) []StudentAttendanceResponse {
	out := make([]StudentAttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

type ManagementResponse struct {
	StudentAttendanceID *uuid.UUID `json:"student_attendance_id,omitempty"`
	TrainingDate        string     `json:"training_date"`
	SectionName         string     `json:"section_name"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	BlankTime           *int       `json:"blank_time,omitempty"`
	BlankTimeValue      string     `json:"blank_time_value,omitempty"`
	Status              int        `json:"status"`
	StatusDispName      string     `json:"status_disp_name"`
	Note                string     `json:"note"`
	IsToday             bool       `json:"is_today"`
}

func FromManagementItems(items []service.ManagementItem) []ManagementResponse {
	out := make([]ManagementResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ManagementResponse{
			StudentAttendanceID: it.StudentAttendanceID,
			TrainingDate:        it.TrainingDate.Format(dbtime.DateLayout),
			SectionName:         it.SectionName,
			StartTime:           it.StartTime.String(),
			EndTime:             it.EndTime.String(),
			BlankTime:           it.BlankTime,
			BlankTimeValue:      it.BlankTimeValue,
			Status:              it.Status.Code(),
			StatusDispName:      it.StatusDispName,
			Note:                it.Note,
			IsToday:             it.IsToday,
		})
	}
	return out
}

/* =========================================================
   EDIT FORM
   ========================================================= */

type DailyAttendanceForm struct {
	DailyAttendanceRequest
	IsToday        bool   `json:"is_today"`
	BlankTimeValue string `json:"blank_time_value,omitempty"`
}

type AttendanceForm struct {
	UserID         uuid.UUID             `json:"user_id"`
	UserName       string                `json:"user_name"`
	LeaveDate      string                `json:"leave_date,omitempty"`
	AttendanceList []DailyAttendanceForm `json:"attendance_list"`
	BlankTimes     []service.Option      `json:"blank_times"`
	HourOptions    []service.Option      `json:"hour_options"`
	MinuteOptions  []service.Option      `json:"minute_options"`
}

// NewAttendanceForm: daftar kehadiran → form edit (jam & menit dipisah).
func NewAttendanceForm(userID uuid.UUID, userName string, leaveDate *time.Time, items []service.ManagementItem) AttendanceForm {
	f := AttendanceForm{
		UserID:         userID,
		UserName:       userName,
		AttendanceList: make([]DailyAttendanceForm, 0, len(items)),
		BlankTimes:     service.BlankTimeOptions(),
		HourOptions:    service.HourOptions(),
		MinuteOptions:  service.MinuteOptions(),
	}
	if leaveDate != nil {
		f.LeaveDate = leaveDate.Format(dbtime.DateLayout)
	}

	for _, it := range items {
		code := it.Status.Code()
		row := DailyAttendanceForm{
			DailyAttendanceRequest: DailyAttendanceRequest{
				StudentAttendanceID: it.StudentAttendanceID,
				TrainingDate:        it.TrainingDate.Format(dbtime.DateLayout),
				BlankTime:           it.BlankTime,
				Note:                it.Note,
				SectionName:         it.SectionName,
				Status:              &code,
				StatusDispName:      it.StatusDispName,
			},
			IsToday:        it.IsToday,
			BlankTimeValue: it.BlankTimeValue,
		}
		if it.StartTime.IsSet() {
			row.StartHour, row.StartMinute = intPtr(it.StartTime.Hour()), intPtr(it.StartTime.Minute())
		}
		if it.EndTime.IsSet() {
			row.EndHour, row.EndMinute = intPtr(it.EndTime.Hour()), intPtr(it.EndTime.Minute())
		}
		f.AttendanceList = append(f.AttendanceList, row)
	}
	return f
}

func intPtr(v int) *int { return &v }

/* =========================================================
   QUERY
   ========================================================= */

// ParseUserIDs: "a,b,c" → []uuid.UUID
func ParseUserIDs(raw string) ([]uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &InvalidIDError{Value: s}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type InvalidIDError struct{ Value string }

func (e *InvalidIDError) Error() string { return "id tidak valid: " + strconv.Quote(e.Value) }
