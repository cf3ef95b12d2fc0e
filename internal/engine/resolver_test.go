package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/model"
)

func fu(subKey string, subType model.FollowUpType) model.FollowUpQuestion {
	return model.FollowUpQuestion{SubKey: subKey, SubType: subType, Required: true}
}

func always(list ...model.FollowUpQuestion) func(RuleContext) []model.FollowUpQuestion {
	return func(RuleContext) []model.FollowUpQuestion { return list }
}

func TestResolveKeepsRuleOrder(t *testing.T) {
	r := NewResolver([]Rule{
		{BaseKey: "diet", Emit: always(fu("a", model.FollowUpTypeRadio))},
		{BaseKey: "other", Emit: always(fu("x", model.FollowUpTypeRadio))},
		{BaseKey: "diet", Emit: always(fu("b", model.FollowUpTypeText), fu("c", model.FollowUpTypeRadio))},
	}, nil)

	got := r.Resolve("diet", model.NewAnswerSet())
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].SubKey)
	assert.Equal(t, "b", got[1].SubKey)
	assert.Equal(t, "c", got[2].SubKey)
}

func TestResolveDedupFirstWins(t *testing.T) {
	first := model.FollowUpQuestion{SubKey: "dup", SubTitle: "first", SubType: model.FollowUpTypeRadio}
	second := model.FollowUpQuestion{SubKey: "dup", SubTitle: "second", SubType: model.FollowUpTypeText}

	r := NewResolver([]Rule{
		{BaseKey: "k", Emit: always(first)},
		{BaseKey: "k", Emit: always(fu("mid", model.FollowUpTypeRadio))},
		{BaseKey: "k", Emit: always(second)},
	}, nil)

	got := r.Resolve("k", model.NewAnswerSet())
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].SubTitle)
	assert.Equal(t, "mid", got[1].SubKey)
}

func TestResolveNestedRuleSeesEarlierEmissions(t *testing.T) {
	r := NewResolver([]Rule{
		{BaseKey: "k", Emit: func(rc RuleContext) []model.FollowUpQuestion {
			if rc.Answers.Text("k") == "Yes" {
				return []model.FollowUpQuestion{fu("parent", model.FollowUpTypeRadio)}
			}
			return nil
		}},
		{BaseKey: "k", Emit: func(rc RuleContext) []model.FollowUpQuestion {
			if rc.Emitted("parent") && rc.Answers.FollowUpText("parent") == "Yes" {
				return []model.FollowUpQuestion{fu("child", model.FollowUpTypeRadio)}
			}
			return nil
		}},
	}, nil)

	answers := model.NewAnswerSet().WithBase("k", model.Value{Text: "Yes"})
	got := r.Resolve("k", answers)
	require.Len(t, got, 1)
	assert.Equal(t, "parent", got[0].SubKey)

	answers = answers.WithFollowUp("parent", model.Value{Text: "Yes"})
	got = r.Resolve("k", answers)
	require.Len(t, got, 2)
	assert.Equal(t, "child", got[1].SubKey)

	// The parent rule never fires, so the nested rule must not either
	bare := model.NewAnswerSet().WithFollowUp("parent", model.Value{Text: "Yes"})
	assert.Empty(t, r.Resolve("k", bare))
}

func TestResolveSuggestionIsAddressable(t *testing.T) {
	tip := model.FollowUpQuestion{SubKey: "tip", SubType: model.FollowUpTypeSuggestion}
	r := NewResolver([]Rule{
		{BaseKey: "k", Emit: always(tip)},
		{BaseKey: "k", Emit: func(rc RuleContext) []model.FollowUpQuestion {
			if rc.Emitted("tip") {
				return []model.FollowUpQuestion{fu("interest", model.FollowUpTypeRadio)}
			}
			return nil
		}},
	}, nil)

	got := r.Resolve("k", model.NewAnswerSet())
	require.Len(t, got, 2)

	shown := Displayable(got)
	require.Len(t, shown, 1)
	assert.Equal(t, "interest", shown[0].SubKey)
}

func TestResolveOptionPrereqFilter(t *testing.T) {
	r := NewResolver(
		[]Rule{{BaseKey: "conditions", Emit: always(
			fu("detail", model.FollowUpTypeText),
			fu("other", model.FollowUpTypeRadio),
		)}},
		map[string]OptionPrereq{"detail": {BaseKey: "conditions", OptionID: "recent_surgery"}},
	)

	without := r.Resolve("conditions", model.NewAnswerSet())
	require.Len(t, without, 1)
	assert.Equal(t, "other", without[0].SubKey)

	answers := model.NewAnswerSet().ToggleBaseOption("conditions", "recent_surgery", nil)
	with := r.Resolve("conditions", answers)
	require.Len(t, with, 2)
	assert.Equal(t, "detail", with[0].SubKey)
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver([]Rule{
		{BaseKey: "k", Emit: func(rc RuleContext) []model.FollowUpQuestion {
			if rc.Answers.Selected("k", "a") {
				return []model.FollowUpQuestion{fu("fa", model.FollowUpTypeRadio)}
			}
			return nil
		}},
		{BaseKey: "k", Emit: always(fu("fb", model.FollowUpTypeText))},
	}, nil)

	answers := model.NewAnswerSet().ToggleBaseOption("k", "a", nil)
	first := r.Resolve("k", answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Resolve("k", answers))
	}
}
