package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromSchedule(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ConfigFromSchedule("", "", false, "", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, StandardWorkWindow(), cfg.Window)
		assert.Equal(t, AbsentKeptWhenBlank, cfg.AbsentPolicy)
		assert.False(t, cfg.Validation.TotalMinuteRangeCheck)
	})

	t.Run("custom window and policy", func(t *testing.T) {
		cfg, err := ConfigFromSchedule("8:30", "17:00", true, "always_kept", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "08:30", cfg.Window.Start.String())
		assert.Equal(t, "17:00", cfg.Window.End.String())
		assert.Equal(t, AbsentAlwaysKept, cfg.AbsentPolicy)
		assert.True(t, cfg.Validation.TotalMinuteRangeCheck)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name, start, end, policy string
		}{
			{"only start", "09:00", "", ""},
			{"bad start", "9h", "18:00", ""},
			{"inverted", "18:00", "09:00", ""},
			{"unknown policy", "", "", "sometimes"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ConfigFromSchedule(tc.start, tc.end, false, tc.policy, time.UTC)
				assert.Error(t, err)
			})
		}
	})
}
