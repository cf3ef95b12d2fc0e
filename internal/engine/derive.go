package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nutriplan/internal/model"
)

// BMI computes body mass index from a measurements answer, rounded to one
// decimal. ok is false while the record is incomplete or unparseable.
func BMI(m model.Measurements) (float64, bool) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(m.Weight), 64)
	if err != nil || weight <= 0 {
		return 0, false
	}
	switch m.UnitSystem {
	case model.UnitSystemImperial:
		ft, errFt := strconv.ParseFloat(strings.TrimSpace(m.HeightFt), 64)
		in, errIn := strconv.ParseFloat(strings.TrimSpace(m.HeightIn), 64)
		if errFt != nil || errIn != nil {
			return 0, false
		}
		totalIn := ft*12 + in
		if totalIn <= 0 {
			return 0, false
		}
		return math.Round(703*weight/(totalIn*totalIn)*10) / 10, true
	default:
		heightCm, err := strconv.ParseFloat(strings.TrimSpace(m.Height), 64)
		if err != nil || heightCm <= 0 {
			return 0, false
		}
		heightM := heightCm / 100
		return math.Round(weight/(heightM*heightM)*10) / 10, true
	}
}

// SleepDuration computes the span between bedtime and wake time formatted as
// "8h 0m". A wake time earlier than bedtime is treated as the next calendar
// day, never as a negative duration.
func SleepDuration(s model.SleepSchedule) (string, bool) {
	bed, okBed := parseClock(s.Bedtime)
	wake, okWake := parseClock(s.Waketime)
	if !okBed || !okWake {
		return "", false
	}
	minutes := wake - bed
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60), true
}

// parseClock converts "HH:MM" to minutes since midnight
func parseClock(v string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
