package model

import "time"

// Phase is the navigator state
type Phase string

const (
	PhaseAnsweringBase      Phase = "answering_base"
	PhaseAnsweringFollowUps Phase = "answering_followups"
	PhaseComplete           Phase = "complete"
)

// StepCursor is the two-level position in the questionnaire.
// StepIndex is 1-based; SubStep 1 is only meaningful on a branching step.
type StepCursor struct {
	StepIndex int `json:"stepIndex" bson:"stepIndex"`
	SubStep   int `json:"subStep" bson:"subStep"`
}

// Session is one live intake run: the growing answer set plus the cursor.
// The resolved follow-up list is derived state and is never stored here.
type Session struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Answers     AnswerSet  `json:"answers" bson:"answers"`
	Cursor      StepCursor `json:"cursor" bson:"cursor"`
	Phase       Phase      `json:"phase" bson:"phase"`
	StartedAt   time.Time  `json:"startedAt" bson:"startedAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// IntakeRecord is the finalized outcome of a completed session, handed to
// downstream processing.
type IntakeRecord struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SessionID     string    `json:"sessionId" bson:"sessionId"`
	Answers       AnswerSet `json:"answers" bson:"answers"`
	BMI           float64   `json:"bmi,omitempty" bson:"bmi,omitempty"`
	SleepDuration string    `json:"sleepDuration,omitempty" bson:"sleepDuration,omitempty"`
	CompletedAt   time.Time `json:"completedAt" bson:"completedAt"`
}
