package model

import (
	"time"

	"gorm.io/datatypes"
)

type Test struct {
	ID              string                        `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"_id"`
	Title           string                        `gorm:"not null" json:"title" bson:"title"`
	Description     string                        `json:"description" bson:"description"`
	Subject         string                        `json:"subject" bson:"subject"`
	DurationMinutes int                           `gorm:"not null" json:"durationMinutes" bson:"durationMinutes"`
	TotalMarks      int                           `gorm:"not null" json:"totalMarks" bson:"totalMarks"` // derived, see RecomputeTotalMarks
	Questions       datatypes.JSONSlice[Question] `gorm:"type:jsonb;not null" json:"questions" bson:"questions"`
	CreatedBy       string                        `gorm:"type:varchar(64);not null;index" json:"createdBy" bson:"createdBy"`
	Published       bool                          `gorm:"not null;index" json:"published" bson:"published"`
	AllowRetake     bool                          `gorm:"not null" json:"allowRetake" bson:"allowRetake"`
	CreatedAt       time.Time                     `gorm:"index" json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time                     `json:"updatedAt" bson:"updatedAt"`
}

// RecomputeTotalMarks sets TotalMarks to the sum of the question marks.
func (t *Test) RecomputeTotalMarks() {
	total := 0
	for _, q := range t.Questions {
		total += q.Marks
	}
	t.TotalMarks = total
}

// Duration is the time allotted to a single attempt.
func (t *Test) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}
