// Package catalog ships the intake questionnaire content: the ordered base
// question catalog, the conditional follow-up tables, and the rule and
// predicate sets that drive the engine. Content lives here as data so the
// engine stays generic.
package catalog

import (
	"strconv"
	"strings"

	"nutriplan/internal/model"
)

// Base question keys
const (
	KeyGoals            = "goals"
	KeyAge              = "age"
	KeySex              = "sex"
	KeyMeasurements     = "measurements"
	KeyDietType         = "dietType"
	KeyHealthConditions = "healthConditions"
	KeySleepSchedule    = "sleepSchedule"
	KeyActivityLevel    = "activityLevel"
	KeySubstances       = "substances"
	KeyLifeSituation    = "lifeSituation"
	KeyDailyRoutine     = "dailyRoutine"
)

// Goal option ids
const (
	GoalLoseWeight   = "lose_weight"
	GoalGainMuscle   = "gain_muscle"
	GoalImproveSleep = "improve_sleep"
	GoalEatHealthier = "eat_healthier"
	GoalReduceStress = "reduce_stress"
)

// Health condition option ids
const (
	ConditionNone            = "none"
	ConditionDiabetes        = "diabetes"
	ConditionHypertension    = "hypertension"
	ConditionRecentSurgery   = "recent_surgery"
	ConditionDigestiveIssues = "digestive_issues"
)

// Substance option ids
const (
	SubstanceNone    = "none"
	SubstanceCoffee  = "coffee"
	SubstanceAlcohol = "alcohol"
	SubstanceTobacco = "tobacco"
)

// Diet type answer values; the last three are the adaptive diets that
// trigger a dedicated follow-up.
const (
	DietBalanced   = "Balanced, no restrictions"
	DietVegetarian = "Mostly vegetables and no meat (Vegetarian)"
	DietVegan      = "No animal products at all (Vegan)"
	DietKeto       = "Low carb, high fat (Keto)"
)

// Sex answer values
const (
	SexFemale = "Female"
	SexMale   = "Male"
)

// AdaptiveDiets are the diet answers that branch into follow-ups
var AdaptiveDiets = []string{DietVegetarian, DietVegan, DietKeto}

var goalsQuestion = model.BaseQuestion{
	Key:      KeyGoals,
	Type:     model.QuestionTypeMultiSelect,
	Title:    "What are you hoping to achieve?",
	Required: true,
	Options: []model.Option{
		{ID: GoalLoseWeight, Label: "Lose weight"},
		{ID: GoalGainMuscle, Label: "Gain muscle"},
		{ID: GoalImproveSleep, Label: "Improve my sleep"},
		{ID: GoalEatHealthier, Label: "Eat healthier"},
		{ID: GoalReduceStress, Label: "Reduce stress"},
	},
}

var ageQuestion = model.BaseQuestion{
	Key:      KeyAge,
	Type:     model.QuestionTypeNumber,
	Title:    "How old are you?",
	Required: true,
}

var sexQuestion = model.BaseQuestion{
	Key:      KeySex,
	Type:     model.QuestionTypeRadio,
	Title:    "What is your biological sex?",
	Required: true,
	Options: []model.Option{
		{ID: SexFemale, Label: SexFemale},
		{ID: SexMale, Label: SexMale},
	},
}

var measurementsQuestion = model.BaseQuestion{
	Key:         KeyMeasurements,
	Type:        model.QuestionTypeMeasurements,
	Title:       "Your height and weight",
	Description: "We use this to estimate your daily needs.",
	Required:    true,
}

var dietTypeQuestion = model.BaseQuestion{
	Key:      KeyDietType,
	Type:     model.QuestionTypeRadio,
	Title:    "How would you describe the way you eat?",
	Required: true,
	Options: []model.Option{
		{ID: DietBalanced, Label: DietBalanced},
		{ID: DietVegetarian, Label: DietVegetarian},
		{ID: DietVegan, Label: DietVegan},
		{ID: DietKeto, Label: DietKeto},
	},
}

var healthConditionsQuestion = model.BaseQuestion{
	Key:      KeyHealthConditions,
	Type:     model.QuestionTypeMultiSelect,
	Title:    "Have you been diagnosed with any of these?",
	Required: true,
	Options: []model.Option{
		{ID: ConditionNone, Label: "None of these", Exclusive: true},
		{ID: ConditionDiabetes, Label: "Diabetes"},
		{ID: ConditionHypertension, Label: "High blood pressure"},
		{ID: ConditionRecentSurgery, Label: "Recent surgery"},
		{ID: ConditionDigestiveIssues, Label: "Digestive issues"},
	},
}

var sleepScheduleQuestion = model.BaseQuestion{
	Key:      KeySleepSchedule,
	Type:     model.QuestionTypeSleepSchedule,
	Title:    "When do you usually sleep?",
	Required: true,
}

var activityLevelQuestion = model.BaseQuestion{
	Key:      KeyActivityLevel,
	Type:     model.QuestionTypeRadio,
	Title:    "How active are you on a typical week?",
	Required: true,
	Options: []model.Option{
		{ID: "Sedentary", Label: "Sedentary"},
		{ID: "Lightly active", Label: "Lightly active"},
		{ID: "Moderately active", Label: "Moderately active"},
		{ID: "Very active", Label: "Very active"},
	},
}

var substancesQuestion = model.BaseQuestion{
	Key:      KeySubstances,
	Type:     model.QuestionTypeMultiSelect,
	Title:    "Which of these do you consume?",
	Required: true,
	Options: []model.Option{
		{ID: SubstanceNone, Label: "None of these", Exclusive: true},
		{ID: SubstanceCoffee, Label: "Coffee"},
		{ID: SubstanceAlcohol, Label: "Alcohol"},
		{ID: SubstanceTobacco, Label: "Tobacco"},
	},
}

var lifeSituationQuestion = model.BaseQuestion{
	Key:         KeyLifeSituation,
	Type:        model.QuestionTypePlaceholder,
	Title:       "A few things about your day-to-day",
	Description: "These help us fit the plan around your life.",
	Required:    false,
}

var dailyRoutineQuestion = model.BaseQuestion{
	Key:      KeyDailyRoutine,
	Type:     model.QuestionTypePlaceholder,
	Title:    "Your eating routine",
	Required: false,
}

// Questions is the catalog lookup: the ordered base question list for the
// current goal, age, and sex answers. It is pure and stable for unchanged
// inputs, so the navigator may call it on every event.
func Questions(answers model.AnswerSet) []model.BaseQuestion {
	qs := []model.BaseQuestion{
		goalsQuestion,
		ageQuestion,
		sexQuestion,
		measurementsQuestion,
		dietTypeQuestion,
		healthConditionsQuestion,
	}
	if answers.Selected(KeyGoals, GoalImproveSleep) {
		qs = append(qs, sleepScheduleQuestion)
	}
	qs = append(qs, activityLevelQuestion)
	if Age(answers) >= 18 {
		qs = append(qs, substancesQuestion)
	}
	return append(qs, lifeSituationQuestion, dailyRoutineQuestion)
}

// AllQuestions returns every question that can appear in a run, in catalog
// order, including the conditionally included ones.
func AllQuestions() []model.BaseQuestion {
	return []model.BaseQuestion{
		goalsQuestion,
		ageQuestion,
		sexQuestion,
		measurementsQuestion,
		dietTypeQuestion,
		healthConditionsQuestion,
		sleepScheduleQuestion,
		activityLevelQuestion,
		substancesQuestion,
		lifeSituationQuestion,
		dailyRoutineQuestion,
	}
}

// Age parses the age answer, 0 when absent or malformed
func Age(answers model.AnswerSet) int {
	n, err := strconv.Atoi(strings.TrimSpace(answers.Text(KeyAge)))
	if err != nil {
		return 0
	}
	return n
}
