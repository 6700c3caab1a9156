package service

import (
	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

// WorkWindow = jam standar (定時) lembaga.
type WorkWindow struct {
	Start dbtime.TrainingTime
	End   dbtime.TrainingTime
}

// Jam standar lembaga: 09:00 - 18:00
var standardWorkWindow = WorkWindow{
	Start: dbtime.NewTrainingTime(9, 0),
	End:   dbtime.NewTrainingTime(18, 0),
}

func StandardWorkWindow() WorkWindow { return standardWorkWindow }

func (w WorkWindow) IsSet() bool { return w.Start.IsSet() && w.End.IsSet() }

// Classify menentukan status terlambat/pulang cepat terhadap window.
// Tepat di batas (sama dengan jam standar) tidak dihitung terlambat/pulang cepat.
func Classify(start, end dbtime.TrainingTime, w WorkWindow) model.AttendanceStatus {
	if !w.IsSet() {
		return model.StatusNone
	}
	late := start.IsSet() && start.After(w.Start)
	early := end.IsSet() && end.Before(w.End)

	switch {
	case late && early:
		return model.StatusTardyAndLeavingEarly
	case late:
		return model.StatusTardy
	case early:
		return model.StatusLeavingEarly
	}
	return model.StatusNone
}

// ClassifyStandard = Classify dengan jam standar lembaga.
func ClassifyStandard(start, end dbtime.TrainingTime) model.AttendanceStatus {
	return Classify(start, end, standardWorkWindow)
}
