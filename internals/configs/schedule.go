package configs

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type WorkWindowConfig struct {
	Start string `yaml:"start"` // "HH:MM"
	End   string `yaml:"end"`
}

type ValidationConfig struct {
	TotalMinuteRangeCheck bool `yaml:"total_minute_range_check"`
}

type MergeConfig struct {
	AbsentPolicy string `yaml:"absent_policy"` // kept_when_blank | always_kept
}

// ScheduleConfig = aturan jam kerja lembaga (file YAML + override ENV).
type ScheduleConfig struct {
	WorkWindow WorkWindowConfig `yaml:"work_window"`
	Validation ValidationConfig `yaml:"validation"`
	Merge      MergeConfig      `yaml:"merge"`
}

// LoadSchedule membaca file jadwal. File tidak ada → nilai kosong (jam standar).
// WORK_START_TIME / WORK_END_TIME menimpa isi file.
func LoadSchedule(filename string) (*ScheduleConfig, error) {
	var cfg ScheduleConfig

	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[INFO] file jadwal %s tidak ada, pakai jam standar", filename)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(GetEnv("WORK_START_TIME")); v != "" {
		cfg.WorkWindow.Start = v
	}
	if v := strings.TrimSpace(GetEnv("WORK_END_TIME")); v != "" {
		cfg.WorkWindow.End = v
	}
	return &cfg, nil
}

func ScheduleFile() string {
	return GetEnv("ATTENDANCE_SCHEDULE_FILE", "configs/schedule.yaml")
}
