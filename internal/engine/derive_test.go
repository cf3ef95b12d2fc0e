package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/model"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name string
		m    model.Measurements
		want float64
		ok   bool
	}{
		{
			name: "metric 65kg 170cm",
			m:    model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "170", Weight: "65"},
			want: 22.5,
			ok:   true,
		},
		{
			name: "metric rounds to one decimal",
			m:    model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "180", Weight: "80"},
			want: 24.7,
			ok:   true,
		},
		{
			name: "imperial 143lb 5ft7in",
			m:    model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "5", HeightIn: "7", Weight: "143"},
			want: 22.4,
			ok:   true,
		},
		{
			name: "imperial zero inches allowed",
			m:    model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "5", HeightIn: "0", Weight: "130"},
			want: 25.4,
			ok:   true,
		},
		{
			name: "zero height rejected",
			m:    model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "0", Weight: "65"},
			ok:   false,
		},
		{
			name: "imperial zero total height rejected",
			m:    model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "0", HeightIn: "0", Weight: "143"},
			ok:   false,
		},
		{
			name: "unparseable weight rejected",
			m:    model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "170", Weight: "heavy"},
			ok:   false,
		},
		{
			name: "empty record rejected",
			m:    model.Measurements{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BMI(tt.m)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.01)
			}
		})
	}
}

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		name string
		s    model.SleepSchedule
		want string
		ok   bool
	}{
		{"overnight", model.SleepSchedule{Bedtime: "23:00", Waketime: "07:00"}, "8h 0m", true},
		{"same day", model.SleepSchedule{Bedtime: "01:30", Waketime: "09:15"}, "7h 45m", true},
		{"wrap past midnight", model.SleepSchedule{Bedtime: "22:45", Waketime: "06:30"}, "7h 45m", true},
		{"equal times round the clock", model.SleepSchedule{Bedtime: "22:00", Waketime: "22:00"}, "0h 0m", true},
		{"missing waketime", model.SleepSchedule{Bedtime: "23:00"}, "", false},
		{"not a clock", model.SleepSchedule{Bedtime: "bedtime", Waketime: "07:00"}, "", false},
		{"hour out of range", model.SleepSchedule{Bedtime: "25:00", Waketime: "07:00"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SleepDuration(tt.s)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
