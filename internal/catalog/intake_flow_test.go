package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/engine"
	"nutriplan/internal/model"
)

// Full intake run for a 29-year-old female vegetarian with no conditions and
// adult substance use, checked step by step against the shipped catalog.
func TestCompleteIntakeRun(t *testing.T) {
	nav := NewNavigator()
	st := nav.NewState()

	requireStep := func(key string, subStep int) {
		t.Helper()
		q, ok := nav.Current(st)
		require.True(t, ok)
		require.Equal(t, key, q.Key)
		require.Equal(t, subStep, st.Cursor.SubStep)
	}

	// goals
	requireStep(KeyGoals, 0)
	st.Answers = st.Answers.ToggleBaseOption(KeyGoals, GoalLoseWeight, nil)
	st = nav.Next(st)

	// age
	requireStep(KeyAge, 0)
	st.Answers = st.Answers.WithBase(KeyAge, model.Value{Text: "29"})
	st = nav.Next(st)

	// sex branches into the pregnancy follow-up for an adult female
	requireStep(KeySex, 0)
	st.Answers = st.Answers.WithBase(KeySex, model.Value{Text: SexFemale})
	require.Equal(t, engine.ButtonContinue, nav.ButtonLabel(st))
	st = nav.Next(st)
	requireStep(KeySex, 1)
	st.Answers = st.Answers.WithFollowUp(SubPregnant, model.Value{Text: "No"})
	st = nav.Next(st)

	// measurements
	requireStep(KeyMeasurements, 0)
	st.Answers = st.Answers.WithBase(KeyMeasurements, model.Value{
		Measurements: &model.Measurements{
			UnitSystem: model.UnitSystemMetric,
			Height:     "170",
			Weight:     "65",
		},
	})
	st = nav.Next(st)

	// vegetarian diet branches
	requireStep(KeyDietType, 0)
	st.Answers = st.Answers.WithBase(KeyDietType, model.Value{Text: DietVegetarian})
	st = nav.Next(st)
	requireStep(KeyDietType, 1)
	st.Answers = st.Answers.WithFollowUp(SubVegetarianDuration, model.Value{Text: "1-5 years"})
	st = nav.Next(st)

	// no conditions: the sub-step is skipped entirely
	requireStep(KeyHealthConditions, 0)
	st.Answers = st.Answers.ToggleBaseOption(KeyHealthConditions, ConditionNone, []string{ConditionNone})
	require.Equal(t, engine.ButtonNext, nav.ButtonLabel(st))
	st = nav.Next(st)

	// no improve_sleep goal, so the schedule step never appears
	requireStep(KeyActivityLevel, 0)
	st.Answers = st.Answers.WithBase(KeyActivityLevel, model.Value{Text: "Lightly active"})
	st = nav.Next(st)
	requireStep(KeyActivityLevel, 1)
	st.Answers = st.Answers.WithFollowUp(SubActivitySatisfied, model.Value{Text: "Yes"})
	st = nav.Next(st)

	// adult, so substances are asked
	requireStep(KeySubstances, 0)
	st.Answers = st.Answers.ToggleBaseOption(KeySubstances, SubstanceCoffee, []string{SubstanceNone})
	st = nav.Next(st)
	requireStep(KeySubstances, 1)
	st.Answers = st.Answers.WithFollowUp(SubCoffeeFrequency, model.Value{Text: "Daily"})
	require.False(t, nav.Valid(st), "unlocked quantity question must gate the step")
	st.Answers = st.Answers.WithFollowUp(SubCoffeeQuantity, model.Value{Text: "1-2"})
	st = nav.Next(st)

	// batch hosts
	requireStep(KeyLifeSituation, 0)
	st = nav.Next(st)
	requireStep(KeyLifeSituation, 1)
	st.Answers = st.Answers.
		WithFollowUp(SubWorkSchedule, model.Value{Text: "Regular hours"}).
		WithFollowUp(SubHousehold, model.Value{Text: "Just myself"}).
		WithFollowUp(SubBudget, model.Value{Text: "Moderate"})
	st = nav.Next(st)

	requireStep(KeyDailyRoutine, 0)
	require.Equal(t, engine.ButtonContinue, nav.ButtonLabel(st), "batch hosts always branch")
	st = nav.Next(st)
	requireStep(KeyDailyRoutine, 1)
	st.Answers = st.Answers.
		WithFollowUp(SubMealsPerDay, model.Value{Text: "3"}).
		WithFollowUp(SubCookingTime, model.Value{Text: "15-30 minutes"})
	require.Equal(t, engine.ButtonFinish, nav.ButtonLabel(st))
	st = nav.Next(st)

	assert.Equal(t, model.PhaseComplete, st.Phase)
	assert.Equal(t, float64(1), nav.Progress(st))

	bmi, ok := engine.BMI(st.Answers.GetMeasurements(KeyMeasurements))
	require.True(t, ok)
	assert.InDelta(t, 22.5, bmi, 0.01)
}

// Backtracking to the diet step and switching to balanced must self-heal the
// now-stale follow-up sub-step.
func TestDietChangeHealsFollowUpStep(t *testing.T) {
	nav := NewNavigator()
	st := nav.NewState()
	st.Answers = st.Answers.
		ToggleBaseOption(KeyGoals, GoalEatHealthier, nil).
		WithBase(KeyAge, model.Value{Text: "35"}).
		WithBase(KeySex, model.Value{Text: SexMale}).
		WithBase(KeyMeasurements, model.Value{Measurements: &model.Measurements{
			UnitSystem: model.UnitSystemMetric, Height: "180", Weight: "78",
		}}).
		WithBase(KeyDietType, model.Value{Text: DietKeto})

	for {
		q, ok := nav.Current(st)
		require.True(t, ok)
		if q.Key == KeyDietType {
			break
		}
		st = nav.Next(st)
	}

	st = nav.Next(st)
	require.Equal(t, model.PhaseAnsweringFollowUps, st.Phase)

	// Switching the diet answer empties the resolved list
	st.Answers = st.Answers.WithBase(KeyDietType, model.Value{Text: DietBalanced})
	st = nav.Normalize(st)

	assert.Equal(t, model.PhaseAnsweringBase, st.Phase)
	q, ok := nav.Current(st)
	require.True(t, ok)
	assert.Equal(t, KeyHealthConditions, q.Key)
}
