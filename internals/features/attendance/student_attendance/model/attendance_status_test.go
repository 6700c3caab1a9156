package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeTable(t *testing.T) {
	for _, s := range []AttendanceStatus{StatusNone, StatusTardy, StatusLeavingEarly, StatusTardyAndLeavingEarly, StatusAbsent} {
		got, ok := StatusFromCode(s.Code())
		assert.True(t, ok)
		assert.Equal(t, s, got)

		byLabel, ok := StatusFromLabel(s.Label())
		assert.True(t, ok)
		assert.Equal(t, s, byLabel)
		assert.True(t, s.IsValid())
	}

	_, ok := StatusFromCode(9)
	assert.False(t, ok)
	assert.False(t, AttendanceStatus(9).IsValid())
	assert.Equal(t, "unknown", AttendanceStatus(9).String())
	assert.Equal(t, "Absent", StatusAbsent.Label())
}
