package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchedule(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schedule.yaml")
		content := "work_window:\n  start: \"08:30\"\n  end: \"17:30\"\nvalidation:\n  total_minute_range_check: true\nmerge:\n  absent_policy: always_kept\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadSchedule(path)
		require.NoError(t, err)
		assert.Equal(t, "08:30", cfg.WorkWindow.Start)
		assert.Equal(t, "17:30", cfg.WorkWindow.End)
		assert.True(t, cfg.Validation.TotalMinuteRangeCheck)
		assert.Equal(t, "always_kept", cfg.Merge.AbsentPolicy)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadSchedule(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.WorkWindow.Start)
		assert.False(t, cfg.Validation.TotalMinuteRangeCheck)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("WORK_START_TIME", "10:00")
		t.Setenv("WORK_END_TIME", "19:00")

		cfg, err := LoadSchedule(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "10:00", cfg.WorkWindow.Start)
		assert.Equal(t, "19:00", cfg.WorkWindow.End)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schedule.yaml")
		require.NoError(t, os.WriteFile(path, []byte("work_window: [\n"), 0o600))

		_, err := LoadSchedule(path)
		assert.Error(t, err)
	})
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("LMS_TEST_EMPTY", "")
	assert.Equal(t, "x", GetEnv("LMS_TEST_EMPTY", "x"))
	assert.Equal(t, "y", GetEnv("LMS_TEST_UNSET_KEY", "y"))

	t.Setenv("LMS_TEST_SET", "v")
	assert.Equal(t, "v", GetEnv("LMS_TEST_SET", "x"))
}
