package model

import "strings"

// Unit system values as they appear in the measurements answer
const (
	UnitSystemMetric   = "Metric (cm, kg)"
	UnitSystemImperial = "Imperial (ft/in, lb)"
)

// Measurements is the composite record behind a measurements question.
// Field values are kept as entered; validation and BMI derivation parse them.
type Measurements struct {
	UnitSystem string `json:"unitSystem,omitempty" bson:"unitSystem,omitempty"`
	Height     string `json:"height,omitempty" bson:"height,omitempty"` // metric, cm
	Weight     string `json:"weight,omitempty" bson:"weight,omitempty"` // kg or lb depending on unit system
	HeightFt   string `json:"heightFt,omitempty" bson:"heightFt,omitempty"`
	HeightIn   string `json:"heightIn,omitempty" bson:"heightIn,omitempty"`
}

// SleepSchedule is the composite record behind a sleepSchedule question
type SleepSchedule struct {
	Bedtime  string `json:"bedtime,omitempty" bson:"bedtime,omitempty"`   // "HH:MM"
	Waketime string `json:"waketime,omitempty" bson:"waketime,omitempty"` // "HH:MM"
}

// Value is one answer cell: a scalar, an option mapping, or a composite
// record. Exactly one group of fields is populated per question type.
type Value struct {
	Text         string          `json:"text,omitempty" bson:"text,omitempty"`
	Options      map[string]bool `json:"options,omitempty" bson:"options,omitempty"`
	Measurements *Measurements   `json:"measurements,omitempty" bson:"measurements,omitempty"`
	Sleep        *SleepSchedule  `json:"sleep,omitempty" bson:"sleep,omitempty"`
}

// AnswerSet is the accumulated answer state for one session: base answers
// keyed by question key, plus the nested follow-up sub-mapping keyed by
// subKey. Absent keys always read as empty typed values, never as an error.
//
// Update operations return a new AnswerSet; the receiver is never mutated.
// Every transition is therefore replayable in isolation.
type AnswerSet struct {
	Base      map[string]Value `json:"base" bson:"base"`
	FollowUps map[string]Value `json:"followUps" bson:"followUps"`
}

// NewAnswerSet returns an empty answer set
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		Base:      map[string]Value{},
		FollowUps: map[string]Value{},
	}
}

func cloneValues(src map[string]Value) map[string]Value {
	out := make(map[string]Value, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cloneOptions(src map[string]bool) map[string]bool {
	out := make(map[string]bool, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}

// WithBase replaces the value for a base question. Measurements and sleep
// values merge field-wise into the existing composite record instead of
// replacing it, so partial edits never erase sibling fields.
func (a AnswerSet) WithBase(key string, v Value) AnswerSet {
	base := cloneValues(a.Base)
	prev := base[key]
	if v.Measurements != nil {
		merged := mergeMeasurements(prev.Measurements, v.Measurements)
		v.Measurements = &merged
	}
	if v.Sleep != nil {
		merged := mergeSleep(prev.Sleep, v.Sleep)
		v.Sleep = &merged
	}
	base[key] = v
	return AnswerSet{Base: base, FollowUps: a.FollowUps}
}

// WithFollowUp replaces the value for a follow-up subKey
func (a AnswerSet) WithFollowUp(subKey string, v Value) AnswerSet {
	fu := cloneValues(a.FollowUps)
	fu[subKey] = v
	return AnswerSet{Base: a.Base, FollowUps: fu}
}

// ToggleBaseOption flips one option of a base multiselect answer, applying
// exclusivity: selecting an exclusive sentinel clears every other option and
// selecting any regular option clears all sentinels. Toggling a selected
// option deselects it.
func (a AnswerSet) ToggleBaseOption(key, optionID string, exclusiveIDs []string) AnswerSet {
	base := cloneValues(a.Base)
	v := base[key]
	v.Options = toggleOption(v.Options, optionID, exclusiveIDs)
	base[key] = v
	return AnswerSet{Base: base, FollowUps: a.FollowUps}
}

// ToggleFollowUpOption is ToggleBaseOption scoped to the follow-up sub-mapping
func (a AnswerSet) ToggleFollowUpOption(subKey, optionID string, exclusiveIDs []string) AnswerSet {
	fu := cloneValues(a.FollowUps)
	v := fu[subKey]
	v.Options = toggleOption(v.Options, optionID, exclusiveIDs)
	fu[subKey] = v
	return AnswerSet{Base: a.Base, FollowUps: fu}
}

func toggleOption(current map[string]bool, optionID string, exclusiveIDs []string) map[string]bool {
	opts := cloneOptions(current)
	if opts[optionID] {
		delete(opts, optionID)
		return opts
	}
	exclusive := map[string]bool{}
	for _, id := range exclusiveIDs {
		exclusive[id] = true
	}
	if exclusive[optionID] {
		// Sentinel selection stands alone
		return map[string]bool{optionID: true}
	}
	for id := range opts {
		if exclusive[id] {
			delete(opts, id)
		}
	}
	opts[optionID] = true
	return opts
}

func mergeMeasurements(prev, next *Measurements) Measurements {
	var out Measurements
	if prev != nil {
		out = *prev
	}
	if next.UnitSystem != "" {
		out.UnitSystem = next.UnitSystem
	}
	if next.Height != "" {
		out.Height = next.Height
	}
	if next.Weight != "" {
		out.Weight = next.Weight
	}
	if next.HeightFt != "" {
		out.HeightFt = next.HeightFt
	}
	if next.HeightIn != "" {
		out.HeightIn = next.HeightIn
	}
	return out
}

func mergeSleep(prev, next *SleepSchedule) SleepSchedule {
	var out SleepSchedule
	if prev != nil {
		out = *prev
	}
	if next.Bedtime != "" {
		out.Bedtime = next.Bedtime
	}
	if next.Waketime != "" {
		out.Waketime = next.Waketime
	}
	return out
}

// Text returns the scalar answer for a base key, "" when absent
func (a AnswerSet) Text(key string) string {
	return a.Base[key].Text
}

// Options returns the option mapping for a base key, empty when absent.
// The returned map must not be mutated by callers.
func (a AnswerSet) Options(key string) map[string]bool {
	if opts := a.Base[key].Options; opts != nil {
		return opts
	}
	return map[string]bool{}
}

// Selected reports whether one option of a base multiselect is on
func (a AnswerSet) Selected(key, optionID string) bool {
	return a.Base[key].Options[optionID]
}

// SelectedCount returns how many options of a base multiselect are on
func (a AnswerSet) SelectedCount(key string) int {
	n := 0
	for _, on := range a.Base[key].Options {
		if on {
			n++
		}
	}
	return n
}

// GetMeasurements returns the composite measurement record, zero when absent
func (a AnswerSet) GetMeasurements(key string) Measurements {
	if m := a.Base[key].Measurements; m != nil {
		return *m
	}
	return Measurements{}
}

// GetSleep returns the composite sleep record, zero when absent
func (a AnswerSet) GetSleep(key string) SleepSchedule {
	if s := a.Base[key].Sleep; s != nil {
		return *s
	}
	return SleepSchedule{}
}

// FollowUpText returns the scalar follow-up answer, "" when absent
func (a AnswerSet) FollowUpText(subKey string) string {
	return a.FollowUps[subKey].Text
}

// FollowUpOptions returns the follow-up option mapping, empty when absent
func (a AnswerSet) FollowUpOptions(subKey string) map[string]bool {
	if opts := a.FollowUps[subKey].Options; opts != nil {
		return opts
	}
	return map[string]bool{}
}

// FollowUpSelected reports whether one option of a follow-up multiselect is on
func (a AnswerSet) FollowUpSelected(subKey, optionID string) bool {
	return a.FollowUps[subKey].Options[optionID]
}

// HasText reports whether a base scalar answer has non-blank content
func (a AnswerSet) HasText(key string) bool {
	return strings.TrimSpace(a.Text(key)) != ""
}
