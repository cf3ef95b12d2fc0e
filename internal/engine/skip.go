package engine

import "nutriplan/internal/model"

// Predicate is a skip-gate check for one branching base key. It mirrors the
// trigger conditions of that key's resolver rules without running them.
type Predicate func(answers model.AnswerSet) bool

// SkipGate decides, right after a base answer is committed, whether the
// follow-up sub-step should be entered at all. Keys in alwaysEnter bypass
// their predicate and always enter the sub-step.
type SkipGate struct {
	predicates  map[string]Predicate
	alwaysEnter map[string]bool
}

// NewSkipGate creates a gate from per-key predicates plus the keys that
// unconditionally host follow-ups.
func NewSkipGate(predicates map[string]Predicate, alwaysEnter []string) *SkipGate {
	always := make(map[string]bool, len(alwaysEnter))
	for _, k := range alwaysEnter {
		always[k] = true
	}
	return &SkipGate{predicates: predicates, alwaysEnter: always}
}

// Branching reports whether a key is in the branching key set
func (g *SkipGate) Branching(baseKey string) bool {
	if g.alwaysEnter[baseKey] {
		return true
	}
	_, ok := g.predicates[baseKey]
	return ok
}

// Needed reports whether follow-up resolution should run for baseKey. A
// "needed" verdict is a fast-path hint, not a promise: if the resolver then
// returns nothing the navigator fast-forwards past the sub-step.
func (g *SkipGate) Needed(baseKey string, answers model.AnswerSet) bool {
	if g.alwaysEnter[baseKey] {
		return true
	}
	pred, ok := g.predicates[baseKey]
	if !ok {
		return false
	}
	return pred(answers)
}
