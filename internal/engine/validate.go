package engine

import (
	"strconv"
	"strings"

	"nutriplan/internal/model"
)

// RequiredWhen overrides a follow-up's static required flag with a condition
// on the answer set. When the condition is false the follow-up is vacuously
// valid regardless of its own flag.
type RequiredWhen func(answers model.AnswerSet) bool

// Validator decides per-step completeness for base questions and resolved
// follow-up lists. It must agree with the resolver about which follow-ups
// are mandatory, so requiredness overrides are injected alongside the rules.
type Validator struct {
	requiredWhen map[string]RequiredWhen // subKey -> condition
}

// NewValidator creates a validator with conditional requiredness overrides
func NewValidator(requiredWhen map[string]RequiredWhen) *Validator {
	if requiredWhen == nil {
		requiredWhen = map[string]RequiredWhen{}
	}
	return &Validator{requiredWhen: requiredWhen}
}

// BaseValid reports whether the base answer for q satisfies its type rules.
// Optional questions and placeholders short-circuit to valid.
func (v *Validator) BaseValid(q model.BaseQuestion, answers model.AnswerSet) bool {
	if !q.Required || q.Type == model.QuestionTypePlaceholder {
		return true
	}
	switch q.Type {
	case model.QuestionTypeText, model.QuestionTypeRadio:
		return answers.HasText(q.Key)
	case model.QuestionTypeNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(answers.Text(q.Key)), 64)
		return err == nil && n > 0
	case model.QuestionTypeMultiSelect:
		return answers.SelectedCount(q.Key) > 0
	case model.QuestionTypeMeasurements:
		return measurementsValid(answers.GetMeasurements(q.Key))
	case model.QuestionTypeSleepSchedule:
		s := answers.GetSleep(q.Key)
		return s.Bedtime != "" && s.Waketime != ""
	}
	return true
}

// FollowUpsValid reports whether every required entry of the resolved list is
// individually satisfied. Suggestions carry no input and never block.
func (v *Validator) FollowUpsValid(list []model.FollowUpQuestion, answers model.AnswerSet) bool {
	for _, fu := range list {
		if fu.SubType == model.FollowUpTypeSuggestion {
			continue
		}
		required := fu.Required
		if cond, ok := v.requiredWhen[fu.SubKey]; ok {
			required = cond(answers)
		}
		if !required {
			continue
		}
		if !followUpSatisfied(fu, answers) {
			return false
		}
	}
	return true
}

func followUpSatisfied(fu model.FollowUpQuestion, answers model.AnswerSet) bool {
	switch fu.SubType {
	case model.FollowUpTypeRadio:
		return answers.FollowUpText(fu.SubKey) != ""
	case model.FollowUpTypeMultiSelect:
		for _, on := range answers.FollowUpOptions(fu.SubKey) {
			if on {
				return true
			}
		}
		return false
	case model.FollowUpTypeText:
		return strings.TrimSpace(answers.FollowUpText(fu.SubKey)) != ""
	}
	return true
}

func measurementsValid(m model.Measurements) bool {
	switch m.UnitSystem {
	case "":
		return false
	case model.UnitSystemImperial:
		// An explicit 0 counts as present for the foot/inch fields
		if !positiveNumber(m.Weight) {
			return false
		}
		return nonNegativeNumber(m.HeightFt) && nonNegativeNumber(m.HeightIn)
	default:
		// Metric and any future systems: plain positive height and weight
		return positiveNumber(m.Height) && positiveNumber(m.Weight)
	}
}

func positiveNumber(s string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n > 0
}

func nonNegativeNumber(s string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n >= 0
}
