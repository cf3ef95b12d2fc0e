package catalog

import "nutriplan/internal/model"

// Follow-up subKeys referenced by rules, indexes, and overrides
const (
	SubPregnant           = "pregnant"
	SubPregnancyTrimester = "pregnancy_trimester"

	SubVegetarianDuration = "vegetarian_duration"
	SubVeganSupplements   = "vegan_supplements"
	SubKetoExperience     = "keto_experience"

	SubDiabetesType       = "diabetes_type"
	SubDiabetesMedication = "diabetes_medication"
	SubHypertensionMeds   = "hypertension_medication"
	SubSurgeryDetail      = "surgery_detail"
	SubSurgeryRecovery    = "surgery_recovery"
	SubDigestiveSymptoms  = "digestive_symptoms"
	SubCurrentSymptoms    = "current_symptoms"

	SubCoffeeFrequency  = "coffee_frequency"
	SubAlcoholFrequency = "alcohol_frequency"
	SubTobaccoFrequency = "tobacco_frequency"
	SubCoffeeQuantity   = "coffee_quantity"
	SubAlcoholQuantity  = "alcohol_quantity"
	SubTobaccoQuantity  = "tobacco_quantity"
	SubCoffeeCutbackTip = "coffee_cutback_tip"
	SubCoffeeCutback    = "coffee_cutback_interest"

	SubActivitySatisfied = "activity_satisfied"
	SubActivityDirection = "activity_direction"
	SubActivityBlockers  = "activity_blockers"
	SubActivityKeepUp    = "activity_keep_up"

	SubWorkSchedule = "work_schedule"
	SubHousehold    = "household"
	SubBudget       = "budget"
	SubShiftPattern = "shift_pattern"

	SubMealsPerDay = "meals_per_day"
	SubCookingTime = "cooking_time"
)

// Named condition ids used as table trigger keys alongside literal answers
const (
	TriggerPregnancy    = "pregnancy"
	TriggerAnyCondition = "any_condition"
)

func radioOptions(labels ...string) []model.Option {
	opts := make([]model.Option, 0, len(labels))
	for _, l := range labels {
		opts = append(opts, model.Option{ID: l, Label: l})
	}
	return opts
}

// FollowUpTable is the static declarative table behind the resolver rules:
// trigger key (a literal answer value or a named condition id) to the
// follow-ups it contributes.
var FollowUpTable = map[string][]model.FollowUpQuestion{
	TriggerPregnancy: {{
		SubKey:   SubPregnant,
		SubTitle: "Are you currently pregnant or breastfeeding?",
		SubType:  model.FollowUpTypeRadio,
		Options:  radioOptions("Yes", "No"),
		Required: true,
	}},
	SubPregnancyTrimester: {{
		SubKey:    SubPregnancyTrimester,
		SubTitle:  "Which trimester are you in?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("First", "Second", "Third", "Breastfeeding"),
		Required:  true,
		ParentKey: SubPregnant,
	}},

	DietVegetarian: {{
		SubKey:   SubVegetarianDuration,
		SubTitle: "How long have you been vegetarian?",
		SubType:  model.FollowUpTypeRadio,
		Options:  radioOptions("Less than a year", "1-5 years", "More than 5 years"),
		Required: true,
	}},
	DietVegan: {{
		SubKey:   SubVeganSupplements,
		SubTitle: "Which supplements do you take?",
		SubType:  model.FollowUpTypeMultiSelect,
		Options: []model.Option{
			{ID: "b12", Label: "Vitamin B12"},
			{ID: "iron", Label: "Iron"},
			{ID: "omega3", Label: "Omega-3"},
			{ID: "no_supplements", Label: "I don't take supplements", Exclusive: true},
		},
		Required: true,
	}},
	DietKeto: {{
		SubKey:   SubKetoExperience,
		SubTitle: "How long have you been eating keto?",
		SubType:  model.FollowUpTypeRadio,
		Options:  radioOptions("Just starting", "A few months", "Over a year"),
		Required: true,
	}},

	SubDiabetesType: {{
		SubKey:    SubDiabetesType,
		SubTitle:  "Which type of diabetes?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Type 1", "Type 2", "Prediabetes", "Not sure"),
		Required:  true,
		ParentKey: ConditionDiabetes,
	}},
	SubDiabetesMedication: {{
		SubKey:    SubDiabetesMedication,
		SubTitle:  "Do you take medication for it?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Insulin", "Oral medication", "No medication"),
		Required:  true,
		ParentKey: ConditionDiabetes,
	}},
	SubHypertensionMeds: {{
		SubKey:    SubHypertensionMeds,
		SubTitle:  "Do you take blood pressure medication?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Yes", "No"),
		Required:  true,
		ParentKey: ConditionHypertension,
	}},
	SubSurgeryDetail: {{
		SubKey:    SubSurgeryDetail,
		SubTitle:  "What kind of surgery did you have?",
		SubType:   model.FollowUpTypeText,
		Required:  true,
		ParentKey: ConditionRecentSurgery,
	}},
	SubDigestiveSymptoms: {{
		SubKey:    SubDigestiveSymptoms,
		SubTitle:  "Which digestive issues do you experience?",
		SubType:   model.FollowUpTypeMultiSelect,
		Options: []model.Option{
			{ID: "bloating", Label: "Bloating"},
			{ID: "reflux", Label: "Acid reflux"},
			{ID: "ibs", Label: "IBS"},
			{ID: "intolerance", Label: "Food intolerance"},
		},
		Required:  true,
		ParentKey: ConditionDigestiveIssues,
	}},
	TriggerAnyCondition: {
		{
			SubKey:   SubCurrentSymptoms,
			SubTitle: "Are any symptoms bothering you right now?",
			SubType:  model.FollowUpTypeMultiSelect,
			Options: []model.Option{
				{ID: "fatigue", Label: "Fatigue"},
				{ID: "pain", Label: "Pain"},
				{ID: "nausea", Label: "Nausea"},
				{ID: "none_symptoms", Label: "Nothing right now", Exclusive: true},
			},
			Required: true, // conditionally required, see RequiredWhen
		},
		{
			SubKey:    SubSurgeryRecovery,
			SubTitle:  "Are you still recovering from the surgery?",
			SubType:   model.FollowUpTypeRadio,
			Options:   radioOptions("Yes, still recovering", "No, fully recovered"),
			Required:  true,
			ParentKey: ConditionRecentSurgery,
		},
	},

	SubCoffeeFrequency: {{
		SubKey:    SubCoffeeFrequency,
		SubTitle:  "How often do you drink coffee?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Never", "A few times a week", "Daily", "Several times a day"),
		Required:  true,
		ParentKey: SubstanceCoffee,
	}},
	SubAlcoholFrequency: {{
		SubKey:    SubAlcoholFrequency,
		SubTitle:  "How often do you drink alcohol?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Never", "A few times a month", "Weekly", "Daily"),
		Required:  true,
		ParentKey: SubstanceAlcohol,
	}},
	SubTobaccoFrequency: {{
		SubKey:    SubTobaccoFrequency,
		SubTitle:  "How often do you smoke?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Never", "Occasionally", "Daily"),
		Required:  true,
		ParentKey: SubstanceTobacco,
	}},
	SubCoffeeQuantity: {{
		SubKey:    SubCoffeeQuantity,
		SubTitle:  "How many cups on a typical day?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("1-2", "3-4", "5 or more"),
		Required:  true,
		ParentKey: SubstanceCoffee,
	}},
	SubAlcoholQuantity: {{
		SubKey:    SubAlcoholQuantity,
		SubTitle:  "How many drinks per occasion?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("1-2", "3-4", "5 or more"),
		Required:  true,
		ParentKey: SubstanceAlcohol,
	}},
	SubTobaccoQuantity: {{
		SubKey:    SubTobaccoQuantity,
		SubTitle:  "How much do you smoke per day?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("A few cigarettes", "Half a pack", "A pack or more"),
		Required:  true,
		ParentKey: SubstanceTobacco,
	}},
	SubCoffeeCutbackTip: {{
		SubKey:    SubCoffeeCutbackTip,
		SubTitle:  "Heavy caffeine intake can affect sleep quality.",
		SubType:   model.FollowUpTypeSuggestion,
		ParentKey: SubstanceCoffee,
	}},
	SubCoffeeCutback: {{
		SubKey:    SubCoffeeCutback,
		SubTitle:  "Would you like your plan to help you cut back?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Yes", "No"),
		ParentKey: SubstanceCoffee,
	}},

	SubActivitySatisfied: {{
		SubKey:   SubActivitySatisfied,
		SubTitle: "Are you happy with your current activity level?",
		SubType:  model.FollowUpTypeRadio,
		Options:  radioOptions("Yes", "No"),
		Required: true,
	}},
	SubActivityDirection: {{
		SubKey:    SubActivityDirection,
		SubTitle:  "Would you like to move more or take it easier?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("More active", "Less intense"),
		Required:  true,
		ParentKey: SubActivitySatisfied,
	}},
	SubActivityBlockers: {{
		SubKey:    SubActivityBlockers,
		SubTitle:  "What usually gets in the way?",
		SubType:   model.FollowUpTypeMultiSelect,
		Options: []model.Option{
			{ID: "time", Label: "Not enough time"},
			{ID: "motivation", Label: "Motivation"},
			{ID: "energy", Label: "Low energy"},
			{ID: "access", Label: "No gym or equipment"},
		},
		Required:  true,
		ParentKey: SubActivityDirection,
	}},
	SubActivityKeepUp: {{
		SubKey:    SubActivityKeepUp,
		SubTitle:  "Great — we'll build the plan around your current routine.",
		SubType:   model.FollowUpTypeSuggestion,
		ParentKey: SubActivitySatisfied,
	}},

	KeyLifeSituation: {
		{
			SubKey:   SubWorkSchedule,
			SubTitle: "What does your work schedule look like?",
			SubType:  model.FollowUpTypeRadio,
			Options:  radioOptions("Regular hours", "Shift work", "Flexible", "Not working"),
			Required: true,
		},
		{
			SubKey:   SubHousehold,
			SubTitle: "Who do you usually cook for?",
			SubType:  model.FollowUpTypeRadio,
			Options:  radioOptions("Just myself", "Me and a partner", "A family"),
			Required: true,
		},
		{
			SubKey:   SubBudget,
			SubTitle: "How much do you want to spend on food?",
			SubType:  model.FollowUpTypeRadio,
			Options:  radioOptions("Keep it cheap", "Moderate", "Money is no object"),
			Required: true,
		},
	},
	SubShiftPattern: {{
		SubKey:    SubShiftPattern,
		SubTitle:  "Do your shifts rotate between day and night?",
		SubType:   model.FollowUpTypeRadio,
		Options:   radioOptions("Mostly days", "Mostly nights", "Rotating"),
		Required:  true,
		ParentKey: SubWorkSchedule,
	}},

	KeyDailyRoutine: {
		{
			SubKey:   SubMealsPerDay,
			SubTitle: "How many meals do you eat on a typical day?",
			SubType:  model.FollowUpTypeRadio,
			Options:  radioOptions("1-2", "3", "4 or more"),
			Required: true,
		},
		{
			SubKey:   SubCookingTime,
			SubTitle: "How much time can you spend cooking?",
			SubType:  model.FollowUpTypeRadio,
			Options:  radioOptions("Under 15 minutes", "15-30 minutes", "30-60 minutes", "As long as it takes"),
			Required: true,
		},
	},
}

// HealthConditionFollowUpIndex maps a diagnosed condition to the follow-up
// table keys it unlocks, in presentation order.
var HealthConditionFollowUpIndex = map[string][]string{
	ConditionDiabetes:        {SubDiabetesType, SubDiabetesMedication},
	ConditionHypertension:    {SubHypertensionMeds},
	ConditionRecentSurgery:   {SubSurgeryDetail},
	ConditionDigestiveIssues: {SubDigestiveSymptoms},
}

// SubstanceFrequencyFollowUpIndex maps a substance to its frequency question
var SubstanceFrequencyFollowUpIndex = map[string]string{
	SubstanceCoffee:  SubCoffeeFrequency,
	SubstanceAlcohol: SubAlcoholFrequency,
	SubstanceTobacco: SubTobaccoFrequency,
}

// SubstanceQuantityFollowUpIndex maps a substance to the quantity question
// unlocked once its frequency has been answered.
var SubstanceQuantityFollowUpIndex = map[string]string{
	SubstanceCoffee:  SubCoffeeQuantity,
	SubstanceAlcohol: SubAlcoholQuantity,
	SubstanceTobacco: SubTobaccoQuantity,
}

func tableEntries(key string) []model.FollowUpQuestion {
	return FollowUpTable[key]
}
