package model

// QuestionType defines the input type of a base question
type QuestionType string

const (
	QuestionTypeText          QuestionType = "text"
	QuestionTypeNumber        QuestionType = "number"
	QuestionTypeRadio         QuestionType = "radio"
	QuestionTypeMultiSelect   QuestionType = "multiselect"
	QuestionTypeMeasurements  QuestionType = "measurements"
	QuestionTypeSleepSchedule QuestionType = "sleepSchedule"
	QuestionTypePlaceholder   QuestionType = "placeholder" // hosts follow-ups only, no input of its own
)

// FollowUpType defines the input type of a resolved follow-up
type FollowUpType string

const (
	FollowUpTypeRadio       FollowUpType = "radio"
	FollowUpTypeMultiSelect FollowUpType = "multiselect"
	FollowUpTypeText        FollowUpType = "text"
	FollowUpTypeSuggestion  FollowUpType = "suggestion" // informational, never rendered as an input
)

// Option is a selectable choice on a radio or multiselect question
type Option struct {
	ID        string `json:"id" bson:"id"`
	Label     string `json:"label" bson:"label"`
	Exclusive bool   `json:"exclusive,omitempty" bson:"exclusive,omitempty"` // "none"-like sentinel, clears all others
}

// BaseQuestion is one catalog entry. Ordinal position in the catalog
// defines step order.
type BaseQuestion struct {
	Key         string       `json:"key" bson:"key"`
	Type        QuestionType `json:"type" bson:"type"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`
	Required    bool         `json:"required" bson:"required"`
}

// FollowUpQuestion is a dynamically resolved sub-question. SubKey is unique
// within one resolution pass. ParentKey is an informational back-reference to
// the answer branch that produced it (e.g. the multiselect option id), not an
// ownership link.
type FollowUpQuestion struct {
	SubKey    string       `json:"subKey"`
	SubTitle  string       `json:"subTitle"`
	SubType   FollowUpType `json:"subType"`
	Options   []Option     `json:"options,omitempty"`
	Required  bool         `json:"required"`
	ParentKey string       `json:"parentKey,omitempty"`
}

// ExclusiveIDs returns the option ids marked as exclusive sentinels
func ExclusiveIDs(options []Option) []string {
	var ids []string
	for _, o := range options {
		if o.Exclusive {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
