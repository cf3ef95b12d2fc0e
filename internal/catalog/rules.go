package catalog

import (
	"nutriplan/internal/engine"
	"nutriplan/internal/model"
)

// Rules returns the ordered resolution table for the shipped catalog.
// Declaration order is presentation order; nested rules sit after the rules
// that emit the entries they depend on.
func Rules() []engine.Rule {
	return []engine.Rule{
		// Pregnancy: direct on sex, gated by age recorded earlier in the run
		{BaseKey: KeySex, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Answers.Text(KeySex) == SexFemale && Age(rc.Answers) > 18 {
				return tableEntries(TriggerPregnancy)
			}
			return nil
		}},
		// Nested: trimester unlocks once the pregnancy answer is Yes
		{BaseKey: KeySex, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Emitted(SubPregnant) && rc.Answers.FollowUpText(SubPregnant) == "Yes" {
				return tableEntries(SubPregnancyTrimester)
			}
			return nil
		}},

		// Diet: the literal answer value is the table trigger
		{BaseKey: KeyDietType, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			return tableEntries(rc.Answers.Text(KeyDietType))
		}},

		// Conditions: each selected diagnosis contributes through the index
		{BaseKey: KeyHealthConditions, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			var out []model.FollowUpQuestion
			for _, opt := range healthConditionsQuestion.Options {
				if opt.Exclusive || !rc.Answers.Selected(KeyHealthConditions, opt.ID) {
					continue
				}
				for _, tableKey := range HealthConditionFollowUpIndex[opt.ID] {
					out = append(out, tableEntries(tableKey)...)
				}
			}
			return out
		}},
		// Shared condition follow-ups; surgery_recovery survives only when
		// the recent-surgery option is actually selected (prereq filter)
		{BaseKey: KeyHealthConditions, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if anySelectedExcept(rc.Answers, KeyHealthConditions, ConditionNone) {
				return tableEntries(TriggerAnyCondition)
			}
			return nil
		}},

		// Substances: frequency per selection, quantity once frequency known
		{BaseKey: KeySubstances, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			var out []model.FollowUpQuestion
			for _, opt := range substancesQuestion.Options {
				if opt.Exclusive || !rc.Answers.Selected(KeySubstances, opt.ID) {
					continue
				}
				out = append(out, tableEntries(SubstanceFrequencyFollowUpIndex[opt.ID])...)
			}
			return out
		}},
		{BaseKey: KeySubstances, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			var out []model.FollowUpQuestion
			for _, opt := range substancesQuestion.Options {
				if opt.Exclusive || !rc.Answers.Selected(KeySubstances, opt.ID) {
					continue
				}
				freq := rc.Answers.FollowUpText(SubstanceFrequencyFollowUpIndex[opt.ID])
				if freq != "" && freq != "Never" {
					out = append(out, tableEntries(SubstanceQuantityFollowUpIndex[opt.ID])...)
				}
			}
			return out
		}},
		// Heavy coffee intake surfaces a suggestion entry
		{BaseKey: KeySubstances, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Answers.FollowUpText(SubCoffeeFrequency) == "Several times a day" {
				return tableEntries(SubCoffeeCutbackTip)
			}
			return nil
		}},
		// The suggestion is not displayed but still triggers this rule
		{BaseKey: KeySubstances, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Emitted(SubCoffeeCutbackTip) {
				return tableEntries(SubCoffeeCutback)
			}
			return nil
		}},

		// Activity: satisfaction question unless already very active
		{BaseKey: KeyActivityLevel, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if lvl := rc.Answers.Text(KeyActivityLevel); lvl != "" && lvl != "Very active" {
				return tableEntries(SubActivitySatisfied)
			}
			return nil
		}},
		{BaseKey: KeyActivityLevel, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			switch rc.Answers.FollowUpText(SubActivitySatisfied) {
			case "No":
				return tableEntries(SubActivityDirection)
			case "Yes":
				return tableEntries(SubActivityKeepUp)
			}
			return nil
		}},
		{BaseKey: KeyActivityLevel, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Answers.FollowUpText(SubActivityDirection) == "More active" {
				return tableEntries(SubActivityBlockers)
			}
			return nil
		}},

		// Life situation batch host
		{BaseKey: KeyLifeSituation, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			return tableEntries(KeyLifeSituation)
		}},
		{BaseKey: KeyLifeSituation, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			if rc.Answers.FollowUpText(SubWorkSchedule) == "Shift work" {
				return tableEntries(SubShiftPattern)
			}
			return nil
		}},

		// Daily routine batch host
		{BaseKey: KeyDailyRoutine, Emit: func(rc engine.RuleContext) []model.FollowUpQuestion {
			return tableEntries(KeyDailyRoutine)
		}},
	}
}

// Prereqs lists follow-ups kept only while a specific base option stays
// selected, no matter which rule emitted them.
func Prereqs() map[string]engine.OptionPrereq {
	return map[string]engine.OptionPrereq{
		SubSurgeryDetail:   {BaseKey: KeyHealthConditions, OptionID: ConditionRecentSurgery},
		SubSurgeryRecovery: {BaseKey: KeyHealthConditions, OptionID: ConditionRecentSurgery},
	}
}

// SkipPredicates mirror each branching key's resolver triggers without
// running the resolver.
func SkipPredicates() map[string]engine.Predicate {
	return map[string]engine.Predicate{
		KeySex: func(a model.AnswerSet) bool {
			return a.Text(KeySex) == SexFemale && Age(a) > 18
		},
		KeyDietType: func(a model.AnswerSet) bool {
			diet := a.Text(KeyDietType)
			for _, adaptive := range AdaptiveDiets {
				if diet == adaptive {
					return true
				}
			}
			return false
		},
		KeyHealthConditions: func(a model.AnswerSet) bool {
			return anySelectedExcept(a, KeyHealthConditions, ConditionNone)
		},
		KeyActivityLevel: func(a model.AnswerSet) bool {
			lvl := a.Text(KeyActivityLevel)
			return lvl != "" && lvl != "Very active"
		},
		KeySubstances: func(a model.AnswerSet) bool {
			return anySelectedExcept(a, KeySubstances, SubstanceNone)
		},
	}
}

// AlwaysBranching are the keys whose sole purpose is to host a batch of
// follow-ups; they bypass their predicate and always enter the sub-step.
func AlwaysBranching() []string {
	return []string{KeyLifeSituation, KeyDailyRoutine}
}

// RequiredWhen holds the conditional requiredness overrides: current
// symptoms are only mandatory when digestive issues were also diagnosed.
func RequiredWhen() map[string]engine.RequiredWhen {
	return map[string]engine.RequiredWhen{
		SubCurrentSymptoms: func(a model.AnswerSet) bool {
			return a.Selected(KeyHealthConditions, ConditionDigestiveIssues)
		},
	}
}

// BranchingKeys lists every key that may branch into follow-ups
func BranchingKeys() []string {
	keys := []string{KeySex, KeyDietType, KeyHealthConditions, KeyActivityLevel, KeySubstances}
	return append(keys, AlwaysBranching()...)
}

// NewNavigator assembles the engine over the shipped catalog content
func NewNavigator() *engine.Navigator {
	return engine.NewNavigator(
		Questions,
		engine.NewResolver(Rules(), Prereqs()),
		engine.NewSkipGate(SkipPredicates(), AlwaysBranching()),
		engine.NewValidator(RequiredWhen()),
	)
}

func anySelectedExcept(a model.AnswerSet, key, exceptID string) bool {
	for id, on := range a.Options(key) {
		if on && id != exceptID {
			return true
		}
	}
	return false
}
