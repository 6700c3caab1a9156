package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lms_backend/internals/features/attendance/student_attendance/model"
	"lms_backend/internals/helpers/dbtime"
)

func TestBuildRecapWorkbook(t *testing.T) {
	userID := uuid.New()
	items := []ManagementItem{
		{
			AttendanceManagementRow: model.AttendanceManagementRow{
				UserID:       userID,
				TrainingDate: past,
				SectionName:  "Go dasar",
				StartTime:    dbtime.NewTrainingTime(9, 5),
				EndTime:      dbtime.NewTrainingTime(18, 0),
				BlankTime:    intp(75),
				Note:         "macet",
			},
			StatusDispName: "Tardy",
		},
	}

	buf, err := BuildRecapWorkbook(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecapSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, recapHeaders, rows[0])
	assert.Equal(t, []string{"1", userID.String(), "2026-10-10", "Go dasar", "09:05", "18:00", "1h 15m", "Tardy", "macet"}, rows[1])
}
