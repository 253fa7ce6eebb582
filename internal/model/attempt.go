package model

import (
	"time"

	"gorm.io/datatypes"
)

type AttemptStatus string

const (
	AttemptInProgress    AttemptStatus = "in-progress"
	AttemptSubmitted     AttemptStatus = "submitted"
	AttemptAutoSubmitted AttemptStatus = "auto-submitted"
	AttemptGraded        AttemptStatus = "graded" // reserved for manual grading
)

// TerminalStatuses lists every status an attempt can never leave.
var TerminalStatuses = []AttemptStatus{AttemptSubmitted, AttemptAutoSubmitted, AttemptGraded}

func (s AttemptStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

type Attempt struct {
	ID                   string                      `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"_id"`
	TestID               string                      `gorm:"type:varchar(36);not null;index" json:"testId" bson:"testId"`
	UserID               string                      `gorm:"type:varchar(64);not null;index" json:"userId" bson:"userId"`
	StartedAt            time.Time                   `gorm:"not null" json:"startedAt" bson:"startedAt"`
	SubmittedAt          *time.Time                  `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	DurationTakenSeconds int                         `gorm:"not null;default:0" json:"durationTakenSeconds" bson:"durationTakenSeconds"`
	Answers              datatypes.JSONSlice[Answer] `gorm:"type:jsonb;not null" json:"answers" bson:"answers"`
	Score                int                         `gorm:"not null;default:0" json:"score" bson:"score"`
	MaxScore             int                         `gorm:"not null;default:0" json:"maxScore" bson:"maxScore"` // snapshot of Test.TotalMarks at start
	Status               AttemptStatus               `gorm:"type:varchar(20);not null;index" json:"status" bson:"status"`
	CreatedAt            time.Time                   `gorm:"index" json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt" bson:"updatedAt"`
}
