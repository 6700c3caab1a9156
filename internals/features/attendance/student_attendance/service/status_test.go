package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

func tt(h, m int) dbtime.TrainingTime { return dbtime.NewTrainingTime(h, m) }

func TestClassify(t *testing.T) {
	w := WorkWindow{Start: tt(9, 0), End: tt(18, 0)}
	blank := dbtime.TrainingTime{}

	tests := []struct {
		name       string
		start, end dbtime.TrainingTime
		want       model.AttendanceStatus
	}{
		{"late", tt(9, 5), tt(18, 0), model.StatusTardy},
		{"early", tt(9, 0), tt(17, 30), model.StatusLeavingEarly},
		{"late and early", tt(9, 10), tt(17, 45), model.StatusTardyAndLeavingEarly},
		{"boundary", tt(9, 0), tt(18, 0), model.StatusNone},
		{"early arrival late leave", tt(8, 30), tt(19, 0), model.StatusNone},
		{"start only late", tt(10, 0), blank, model.StatusTardy},
		{"end only early", blank, tt(12, 0), model.StatusLeavingEarly},
		{"both blank", blank, blank, model.StatusNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.start, tc.end, w))
		})
	}
}

func TestClassifyWithoutStandardIsNone(t *testing.T) {
	blank := dbtime.TrainingTime{}
	assert.Equal(t, model.StatusNone, Classify(tt(11, 0), tt(12, 0), WorkWindow{Start: blank, End: tt(18, 0)}))
	assert.Equal(t, model.StatusNone, Classify(tt(11, 0), tt(12, 0), WorkWindow{Start: tt(9, 0), End: blank}))
	assert.Equal(t, model.StatusNone, Classify(tt(11, 0), tt(12, 0), WorkWindow{}))
}

func TestClassifyStandard(t *testing.T) {
	assert.Equal(t, model.StatusTardy, ClassifyStandard(tt(9, 1), tt(18, 0)))
	assert.Equal(t, model.StatusLeavingEarly, ClassifyStandard(tt(9, 0), tt(17, 59)))
	assert.Equal(t, "09:00", StandardWorkWindow().Start.String())
	assert.Equal(t, "18:00", StandardWorkWindow().End.String())
}
