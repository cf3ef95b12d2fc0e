package engine

import "nutriplan/internal/model"

// CatalogFunc returns the ordered base question list for the current
// answers. It must be a pure, stable lookup: unchanged goal, age, and sex
// answers yield an identical catalog.
type CatalogFunc func(answers model.AnswerSet) []model.BaseQuestion

// State is the navigator's complete position: the answers accumulated so
// far plus the two-level cursor and phase. States are values; transition
// methods return a new State and never mutate their input.
type State struct {
	Answers model.AnswerSet
	Cursor  model.StepCursor
	Phase   model.Phase
}

// Button labels exposed to the renderer
const (
	ButtonNext     = "Next"
	ButtonContinue = "Continue"
	ButtonFinish   = "Finish"
)

// Navigator orchestrates the skip gate, the resolver, and the validator
// around the step cursor.
type Navigator struct {
	catalog   CatalogFunc
	resolver  *Resolver
	gate      *SkipGate
	validator *Validator
}

// NewNavigator wires the engine pieces together
func NewNavigator(catalog CatalogFunc, resolver *Resolver, gate *SkipGate, validator *Validator) *Navigator {
	return &Navigator{
		catalog:   catalog,
		resolver:  resolver,
		gate:      gate,
		validator: validator,
	}
}

// NewState returns the initial position: step 1, base sub-step, empty answers
func (n *Navigator) NewState() State {
	return State{
		Answers: model.NewAnswerSet(),
		Cursor:  model.StepCursor{StepIndex: 1, SubStep: 0},
		Phase:   model.PhaseAnsweringBase,
	}
}

// Questions returns the catalog for the state's answers
func (n *Navigator) Questions(st State) []model.BaseQuestion {
	return n.catalog(st.Answers)
}

// Current returns the base question under the cursor. ok is false when the
// cursor points outside the catalog (e.g. the catalog shrank after a goal
// change); that is a benign sentinel, not an error.
func (n *Navigator) Current(st State) (model.BaseQuestion, bool) {
	qs := n.catalog(st.Answers)
	if st.Cursor.StepIndex < 1 || st.Cursor.StepIndex > len(qs) {
		return model.BaseQuestion{}, false
	}
	return qs[st.Cursor.StepIndex-1], true
}

// FollowUps returns the live resolved follow-up list for the current step.
// It is recomputed from the answers on every call; the result is derived
// state and never a source of truth.
func (n *Navigator) FollowUps(st State) []model.FollowUpQuestion {
	q, ok := n.Current(st)
	if !ok || !n.gate.Branching(q.Key) {
		return nil
	}
	return n.resolver.Resolve(q.Key, st.Answers)
}

// Valid reports whether Next/Skip may fire from the current position
func (n *Navigator) Valid(st State) bool {
	if st.Phase == model.PhaseComplete {
		return false
	}
	q, ok := n.Current(st)
	if !ok {
		return false
	}
	if st.Phase == model.PhaseAnsweringFollowUps {
		return n.validator.FollowUpsValid(n.FollowUps(st), st.Answers)
	}
	return n.validator.BaseValid(q, st.Answers)
}

// Next advances the cursor. The transition is refused (the state is returned
// unchanged) while the current position is invalid. From a branching base
// question it enters the follow-up sub-step when the gate says resolution is
// needed and the resolver actually produces entries; a gate/resolver
// disagreement fast-forwards to the next step instead of stalling.
func (n *Navigator) Next(st State) State {
	if st.Phase == model.PhaseComplete || !n.Valid(st) {
		return st
	}
	if st.Phase == model.PhaseAnsweringBase {
		q, ok := n.Current(st)
		if ok && n.gate.Branching(q.Key) && n.gate.Needed(q.Key, st.Answers) {
			if len(n.resolver.Resolve(q.Key, st.Answers)) > 0 {
				st.Cursor.SubStep = 1
				st.Phase = model.PhaseAnsweringFollowUps
				return st
			}
		}
	}
	return n.advanceStep(st)
}

// Skip behaves exactly like Next; only the control's label differs
func (n *Navigator) Skip(st State) State {
	return n.Next(st)
}

// Back retreats the cursor. From the follow-up sub-step it returns to the
// same step's base sub-step. Across a step boundary it always lands on the
// previous step's base sub-step, even if that step had follow-ups:
// follow-up visitation is forward-only.
func (n *Navigator) Back(st State) State {
	switch st.Phase {
	case model.PhaseAnsweringFollowUps:
		st.Cursor.SubStep = 0
		st.Phase = model.PhaseAnsweringBase
	case model.PhaseAnsweringBase:
		if st.Cursor.StepIndex > 1 {
			st.Cursor.StepIndex--
			st.Cursor.SubStep = 0
		}
	}
	return st
}

// Normalize applies the self-healing rule after any answer change: when the
// live resolved list of an active follow-up sub-step becomes empty, the
// navigator advances on its own without waiting for user action.
func (n *Navigator) Normalize(st State) State {
	if st.Phase != model.PhaseAnsweringFollowUps {
		return st
	}
	if len(n.FollowUps(st)) > 0 {
		return st
	}
	return n.advanceStep(st)
}

func (n *Navigator) advanceStep(st State) State {
	total := len(n.catalog(st.Answers))
	if st.Cursor.StepIndex >= total {
		st.Phase = model.PhaseComplete
		st.Cursor.SubStep = 0
		return st
	}
	st.Cursor.StepIndex++
	st.Cursor.SubStep = 0
	st.Phase = model.PhaseAnsweringBase
	return st
}

// Progress returns the completion fraction in [0, 1]
func (n *Navigator) Progress(st State) float64 {
	total := len(n.catalog(st.Answers))
	if total == 0 || st.Phase == model.PhaseComplete {
		return 1
	}
	p := float64(st.Cursor.StepIndex)
	if st.Cursor.SubStep == 1 {
		p += 0.5
	}
	frac := p / float64(total)
	if frac > 1 {
		return 1
	}
	return frac
}

// ButtonLabel returns the advance control's label for the current position:
// Continue on a branching base sub-step that will enter follow-ups, Finish
// on the last step, Next otherwise.
func (n *Navigator) ButtonLabel(st State) string {
	if st.Phase == model.PhaseComplete {
		return ButtonFinish
	}
	q, ok := n.Current(st)
	if !ok {
		return ButtonNext
	}
	if st.Phase == model.PhaseAnsweringBase && n.gate.Branching(q.Key) && n.gate.Needed(q.Key, st.Answers) {
		return ButtonContinue
	}
	if st.Cursor.StepIndex == len(n.catalog(st.Answers)) {
		return ButtonFinish
	}
	return ButtonNext
}
