package service

import "fmt"

// HourMinute = durasi istirahat dalam jam + menit.
type HourMinute struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String: "1:30"
func (hm HourMinute) String() string {
	return fmt.Sprintf("%d:%02d", hm.Hour, hm.Minute)
}

func (hm HourMinute) TotalMinutes() int {
	return hm.Hour*60 + hm.Minute
}

func ToHourMinute(totalMinutes int) HourMinute {
	return HourMinute{Hour: totalMinutes / 60, Minute: totalMinutes % 60}
}

// BlankTimeLabel: 120 → "2h", 15 → "15m", 75 → "1h 15m"
func BlankTimeLabel(minutes int) string {
	hm := ToHourMinute(minutes)
	switch {
	case hm.Hour == 0:
		return fmt.Sprintf("%dm", hm.Minute)
	case hm.Minute == 0:
		return fmt.Sprintf("%dh", hm.Hour)
	}
	return fmt.Sprintf("%dh %dm", hm.Hour, hm.Minute)
}

// Option = pilihan dropdown form. Value nil = pilihan kosong.
type Option struct {
	Value *int   `json:"value"`
	Label string `json:"label"`
}

const (
	blankTimeStep = 15
	blankTimeMax  = 480 // eksklusif
)

// BlankTimeOptions: "", 15m, 30m, ... 7h 45m
func BlankTimeOptions() []Option {
	out := []Option{{Value: nil, Label: ""}}
	for i := blankTimeStep; i < blankTimeMax; i += blankTimeStep {
		v := i
		out = append(out, Option{Value: &v, Label: BlankTimeLabel(v)})
	}
	return out
}

func HourOptions() []Option   { return numberOptions(24) }
func MinuteOptions() []Option { return numberOptions(60) }

func numberOptions(n int) []Option {
	out := make([]Option, 0, n)
	for i := 0; i < n; i++ {
		v := i
		out = append(out, Option{Value: &v, Label: fmt.Sprintf("%02d", i)})
	}
	return out
}
