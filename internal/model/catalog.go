package model

import "time"

// CatalogTemplate is the published questionnaire content document: every
// base question that can appear in a run, in catalog order, together with
// the set of keys that may branch into follow-ups.
type CatalogTemplate struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	Version       string         `json:"version" bson:"version"`
	Questions     []BaseQuestion `json:"questions" bson:"questions"`
	BranchingKeys []string       `json:"branchingKeys" bson:"branchingKeys"`
	PublishedAt   time.Time      `json:"publishedAt" bson:"publishedAt"`
}
