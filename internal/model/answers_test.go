package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleBaseOption(t *testing.T) {
	exclusive := []string{"none"}

	tests := []struct {
		name    string
		toggles []string
		want    map[string]bool
	}{
		{
			name:    "select one option",
			toggles: []string{"coffee"},
			want:    map[string]bool{"coffee": true},
		},
		{
			name:    "toggle twice deselects",
			toggles: []string{"coffee", "coffee"},
			want:    map[string]bool{},
		},
		{
			name:    "exclusive clears others",
			toggles: []string{"coffee", "alcohol", "none"},
			want:    map[string]bool{"none": true},
		},
		{
			name:    "regular clears exclusive",
			toggles: []string{"none", "coffee"},
			want:    map[string]bool{"coffee": true},
		},
		{
			name:    "multiple regular options coexist",
			toggles: []string{"coffee", "alcohol"},
			want:    map[string]bool{"coffee": true, "alcohol": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnswerSet()
			for _, opt := range tt.toggles {
				a = a.ToggleBaseOption("substances", opt, exclusive)
			}
			got := map[string]bool{}
			for id, on := range a.Options("substances") {
				if on {
					got[id] = true
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// After any toggle sequence, an exclusive sentinel never coexists with a
// regular option.
func TestToggleExclusivityInvariant(t *testing.T) {
	exclusive := []string{"none"}
	sequence := []string{"coffee", "none", "alcohol", "coffee", "none", "none", "tobacco", "none", "coffee"}

	a := NewAnswerSet()
	for _, opt := range sequence {
		a = a.ToggleBaseOption("substances", opt, exclusive)

		hasExclusive := a.Selected("substances", "none")
		regulars := 0
		for id, on := range a.Options("substances") {
			if on && id != "none" {
				regulars++
			}
		}
		if hasExclusive {
			assert.Zero(t, regulars, "sentinel must stand alone after toggling %q", opt)
		}
	}
}

func TestWithBaseMergesComposites(t *testing.T) {
	a := NewAnswerSet()
	a = a.WithBase("measurements", Value{Measurements: &Measurements{UnitSystem: UnitSystemMetric}})
	a = a.WithBase("measurements", Value{Measurements: &Measurements{Height: "170"}})
	a = a.WithBase("measurements", Value{Measurements: &Measurements{Weight: "65"}})

	m := a.GetMeasurements("measurements")
	assert.Equal(t, UnitSystemMetric, m.UnitSystem)
	assert.Equal(t, "170", m.Height)
	assert.Equal(t, "65", m.Weight)

	a = a.WithBase("sleepSchedule", Value{Sleep: &SleepSchedule{Bedtime: "23:00"}})
	a = a.WithBase("sleepSchedule", Value{Sleep: &SleepSchedule{Waketime: "07:00"}})

	s := a.GetSleep("sleepSchedule")
	assert.Equal(t, "23:00", s.Bedtime)
	assert.Equal(t, "07:00", s.Waketime)
}

func TestWithBaseReplacesScalars(t *testing.T) {
	a := NewAnswerSet()
	a = a.WithBase("dietType", Value{Text: "Balanced, no restrictions"})
	a = a.WithBase("dietType", Value{Text: "Low carb, high fat (Keto)"})
	assert.Equal(t, "Low carb, high fat (Keto)", a.Text("dietType"))
}

func TestAbsentKeysReadEmpty(t *testing.T) {
	a := NewAnswerSet()

	assert.Equal(t, "", a.Text("missing"))
	assert.Empty(t, a.Options("missing"))
	assert.False(t, a.Selected("missing", "x"))
	assert.Zero(t, a.GetMeasurements("missing"))
	assert.Zero(t, a.GetSleep("missing"))
	assert.Equal(t, "", a.FollowUpText("missing"))
	assert.Empty(t, a.FollowUpOptions("missing"))
}

func TestUpdatesDoNotMutateReceiver(t *testing.T) {
	a := NewAnswerSet().WithBase("age", Value{Text: "20"})
	b := a.WithBase("age", Value{Text: "30"})
	c := a.ToggleBaseOption("goals", "lose_weight", nil)

	assert.Equal(t, "20", a.Text("age"))
	assert.Equal(t, "30", b.Text("age"))
	assert.False(t, a.Selected("goals", "lose_weight"))
	assert.True(t, c.Selected("goals", "lose_weight"))
}

func TestFollowUpAnswersAreScoped(t *testing.T) {
	a := NewAnswerSet()
	a = a.WithFollowUp("pregnant", Value{Text: "Yes"})
	a = a.ToggleFollowUpOption("vegan_supplements", "b12", nil)

	assert.Equal(t, "Yes", a.FollowUpText("pregnant"))
	assert.True(t, a.FollowUpSelected("vegan_supplements", "b12"))
	assert.Equal(t, "", a.Text("pregnant"), "base mapping must stay untouched")
}
