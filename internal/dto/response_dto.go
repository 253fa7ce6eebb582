package dto

import "time"

// QuestionResponseDTO is the owner view of a question, answer key included.
type QuestionResponseDTO struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correctIndex"`
	Marks         int      `json:"marks"`
	NegativeMarks int      `json:"negativeMarks"`
}

// TestResponseDTO is the owner view of a test.
type TestResponseDTO struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Subject         string                `json:"subject"`
	DurationMinutes int                   `json:"durationMinutes"`
	TotalMarks      int                   `json:"totalMarks"`
	Questions       []QuestionResponseDTO `json:"questions"`
	CreatedBy       string                `json:"createdBy"`
	Published       bool                  `json:"published"`
	AllowRetake     bool                  `json:"allowRetake"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
