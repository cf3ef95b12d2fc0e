package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/model"
)

func TestBaseValid(t *testing.T) {
	v := NewValidator(nil)

	withText := func(key, text string) model.AnswerSet {
		return model.NewAnswerSet().WithBase(key, model.Value{Text: text})
	}

	tests := []struct {
		name    string
		q       model.BaseQuestion
		answers model.AnswerSet
		want    bool
	}{
		{
			name:    "optional question always valid",
			q:       model.BaseQuestion{Key: "notes", Type: model.QuestionTypeText, Required: false},
			answers: model.NewAnswerSet(),
			want:    true,
		},
		{
			name:    "placeholder always valid",
			q:       model.BaseQuestion{Key: "intro", Type: model.QuestionTypePlaceholder, Required: true},
			answers: model.NewAnswerSet(),
			want:    true,
		},
		{
			name:    "text blank invalid",
			q:       model.BaseQuestion{Key: "name", Type: model.QuestionTypeText, Required: true},
			answers: withText("name", "   "),
			want:    false,
		},
		{
			name:    "radio chosen valid",
			q:       model.BaseQuestion{Key: "sex", Type: model.QuestionTypeRadio, Required: true},
			answers: withText("sex", "Female"),
			want:    true,
		},
		{
			name:    "number zero invalid",
			q:       model.BaseQuestion{Key: "age", Type: model.QuestionTypeNumber, Required: true},
			answers: withText("age", "0"),
			want:    false,
		},
		{
			name:    "number garbage invalid",
			q:       model.BaseQuestion{Key: "age", Type: model.QuestionTypeNumber, Required: true},
			answers: withText("age", "twenty"),
			want:    false,
		},
		{
			name:    "number positive valid",
			q:       model.BaseQuestion{Key: "age", Type: model.QuestionTypeNumber, Required: true},
			answers: withText("age", "34"),
			want:    true,
		},
		{
			name:    "multiselect empty invalid",
			q:       model.BaseQuestion{Key: "goals", Type: model.QuestionTypeMultiSelect, Required: true},
			answers: model.NewAnswerSet(),
			want:    false,
		},
		{
			name:    "multiselect one selection valid",
			q:       model.BaseQuestion{Key: "goals", Type: model.QuestionTypeMultiSelect, Required: true},
			answers: model.NewAnswerSet().ToggleBaseOption("goals", "lose_weight", nil),
			want:    true,
		},
		{
			name: "sleep needs both times",
			q:    model.BaseQuestion{Key: "sleep", Type: model.QuestionTypeSleepSchedule, Required: true},
			answers: model.NewAnswerSet().WithBase("sleep", model.Value{
				Sleep: &model.SleepSchedule{Bedtime: "23:00"},
			}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.BaseValid(tt.q, tt.answers))
		})
	}
}

func TestMeasurementsValid(t *testing.T) {
	v := NewValidator(nil)
	q := model.BaseQuestion{Key: "m", Type: model.QuestionTypeMeasurements, Required: true}

	with := func(m model.Measurements) model.AnswerSet {
		return model.NewAnswerSet().WithBase("m", model.Value{Measurements: &m})
	}

	tests := []struct {
		name string
		m    model.Measurements
		want bool
	}{
		{"no unit system", model.Measurements{Height: "170", Weight: "65"}, false},
		{"metric complete", model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "170", Weight: "65"}, true},
		{"metric zero height", model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "0", Weight: "65"}, false},
		{"metric missing weight", model.Measurements{UnitSystem: model.UnitSystemMetric, Height: "170"}, false},
		{"imperial explicit zero inches", model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "5", HeightIn: "0", Weight: "143"}, true},
		{"imperial explicit zero feet", model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "0", HeightIn: "67", Weight: "143"}, true},
		{"imperial blank inches", model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "5", Weight: "143"}, false},
		{"imperial zero weight", model.Measurements{UnitSystem: model.UnitSystemImperial, HeightFt: "5", HeightIn: "7", Weight: "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.BaseValid(q, with(tt.m)))
		})
	}
}

func TestFollowUpsValid(t *testing.T) {
	required := model.FollowUpQuestion{SubKey: "freq", SubType: model.FollowUpTypeRadio, Required: true}
	optional := model.FollowUpQuestion{SubKey: "note", SubType: model.FollowUpTypeText, Required: false}
	tip := model.FollowUpQuestion{SubKey: "tip", SubType: model.FollowUpTypeSuggestion, Required: true}
	multi := model.FollowUpQuestion{SubKey: "symptoms", SubType: model.FollowUpTypeMultiSelect, Required: true}

	v := NewValidator(nil)

	t.Run("empty list valid", func(t *testing.T) {
		assert.True(t, v.FollowUpsValid(nil, model.NewAnswerSet()))
	})

	t.Run("required radio blocks until answered", func(t *testing.T) {
		list := []model.FollowUpQuestion{required, optional, tip}
		answers := model.NewAnswerSet()
		assert.False(t, v.FollowUpsValid(list, answers))

		answers = answers.WithFollowUp("freq", model.Value{Text: "Daily"})
		assert.True(t, v.FollowUpsValid(list, answers))
	})

	t.Run("suggestion never blocks", func(t *testing.T) {
		assert.True(t, v.FollowUpsValid([]model.FollowUpQuestion{tip}, model.NewAnswerSet()))
	})

	t.Run("required multiselect needs a selection", func(t *testing.T) {
		answers := model.NewAnswerSet()
		assert.False(t, v.FollowUpsValid([]model.FollowUpQuestion{multi}, answers))

		answers = answers.ToggleFollowUpOption("symptoms", "bloating", nil)
		assert.True(t, v.FollowUpsValid([]model.FollowUpQuestion{multi}, answers))
	})

	t.Run("conditional requiredness overrides static flag", func(t *testing.T) {
		cond := NewValidator(map[string]RequiredWhen{
			"symptoms": func(a model.AnswerSet) bool {
				return a.Selected("conditions", "digestive_issues")
			},
		})

		// Statically required, but the condition is false
		assert.True(t, cond.FollowUpsValid([]model.FollowUpQuestion{multi}, model.NewAnswerSet()))

		triggered := model.NewAnswerSet().ToggleBaseOption("conditions", "digestive_issues", nil)
		assert.False(t, cond.FollowUpsValid([]model.FollowUpQuestion{multi}, triggered))
	})
}
