// Package engine implements the adaptive questionnaire core: the follow-up
// resolver, the skip fast-path, the validator, and the step navigator. The
// engine is pure and synchronous; all catalog and rule content is injected.
package engine

import (
	"nutriplan/internal/model"
)

// RuleContext is what a rule sees when it is evaluated: the base key the
// pass was invoked for, the full answer set (including follow-up answers
// recorded earlier in the same pass), and the subKeys accumulated so far.
type RuleContext struct {
	BaseKey string
	Answers model.AnswerSet

	emitted map[string]bool
}

// Emitted reports whether a subKey has already been contributed in this
// pass. Suggestion entries count, which is what makes them addressable by
// nested rules even though they are never displayed.
func (rc RuleContext) Emitted(subKey string) bool {
	return rc.emitted[subKey]
}

// Rule is one entry of the declarative resolution table. Emit returns zero
// or more follow-ups for the current context; it must be pure.
type Rule struct {
	BaseKey string
	Emit    func(rc RuleContext) []model.FollowUpQuestion
}

// OptionPrereq ties a subKey to a specific option that must be selected on a
// base multiselect for the follow-up to stay in the resolved list at all.
type OptionPrereq struct {
	BaseKey  string
	OptionID string
}

// Resolver evaluates the rule table in declaration order and produces the
// deduplicated follow-up list for one base question.
type Resolver struct {
	rules   []Rule
	prereqs map[string]OptionPrereq // subKey -> required selection
}

// NewResolver creates a resolver over an ordered rule table
func NewResolver(rules []Rule, prereqs map[string]OptionPrereq) *Resolver {
	if prereqs == nil {
		prereqs = map[string]OptionPrereq{}
	}
	return &Resolver{rules: rules, prereqs: prereqs}
}

// Resolve returns the ordered follow-up list for baseKey given the current
// answers. It is deterministic and side-effect-free: the same answers yield
// the same list, entry for entry. Duplicated subKeys keep their first
// occurrence; entries whose option prerequisite is not selected are dropped.
func (r *Resolver) Resolve(baseKey string, answers model.AnswerSet) []model.FollowUpQuestion {
	rc := RuleContext{
		BaseKey: baseKey,
		Answers: answers,
		emitted: map[string]bool{},
	}

	var acc []model.FollowUpQuestion
	for _, rule := range r.rules {
		if rule.BaseKey != baseKey {
			continue
		}
		for _, fu := range rule.Emit(rc) {
			acc = append(acc, fu)
			rc.emitted[fu.SubKey] = true
		}
	}

	// Stable dedup by subKey, first wins
	seen := map[string]bool{}
	out := acc[:0]
	for _, fu := range acc {
		if seen[fu.SubKey] {
			continue
		}
		seen[fu.SubKey] = true
		if pre, ok := r.prereqs[fu.SubKey]; ok && !answers.Selected(pre.BaseKey, pre.OptionID) {
			continue
		}
		out = append(out, fu)
	}
	return out
}

// Displayable filters suggestion entries out of a resolved list. Suggestions
// stay in the resolved list itself so nested rules can still reference them.
func Displayable(list []model.FollowUpQuestion) []model.FollowUpQuestion {
	var out []model.FollowUpQuestion
	for _, fu := range list {
		if fu.SubType == model.FollowUpTypeSuggestion {
			continue
		}
		out = append(out, fu)
	}
	return out
}
