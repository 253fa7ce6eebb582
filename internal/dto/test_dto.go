package dto

import "time"

// SafeQuestionDTO is the test-taker view of a question. It never carries the
// correct index or the negative marks.
type SafeQuestionDTO struct {
	QuestionIndex int      `json:"questionIndex"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	Marks         int      `json:"marks"`
}

// SafeTestDTO is the test-taker view of a published test.
type SafeTestDTO struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Subject         string            `json:"subject"`
	DurationMinutes int               `json:"durationMinutes"`
	TotalMarks      int               `json:"totalMarks"`
	QuestionCount   int               `json:"questionCount"`
	Questions       []SafeQuestionDTO `json:"questions"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// StartAttemptResponseDTO is returned when a test-taker starts a test.
type StartAttemptResponseDTO struct {
	AttemptID string      `json:"attemptId"`
	StartedAt time.Time   `json:"startedAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Test      SafeTestDTO `json:"test"`
}

// SubmitAttemptResponseDTO is the grading outcome of a submission.
type SubmitAttemptResponseDTO struct {
	AttemptID     string `json:"attemptId"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"maxScore"`
	AutoSubmitted bool   `json:"autoSubmitted"`
}

type AnswerResponseDTO struct {
	QuestionIndex int  `json:"questionIndex"`
	SelectedIndex *int `json:"selectedIndex"`
	IsCorrect     bool `json:"isCorrect"`
	MarksObtained int  `json:"marksObtained"`
}

// AttemptTestDTO is the minimal test projection attached to an attempt.
type AttemptTestDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TotalMarks int    `json:"totalMarks"`
}

// TestAttemptDetailDTO is the full result of one attempt, for its owner.
type TestAttemptDetailDTO struct {
	ID                   string              `json:"id"`
	TestID               string              `json:"testId"`
	UserID               string              `json:"userId"`
	StartedAt            time.Time           `json:"startedAt"`
	SubmittedAt          *time.Time          `json:"submittedAt,omitempty"`
	DurationTakenSeconds int                 `json:"durationTakenSeconds"`
	Answers              []AnswerResponseDTO `json:"answers"`
	Score                int                 `json:"score"`
	MaxScore             int                 `json:"maxScore"`
	Percentage           float64             `json:"percentage"`
	Status               string              `json:"status"`
	Test                 *AttemptTestDTO     `json:"test"`
}

// TestAttemptSummaryDTO is one leaderboard row.
type TestAttemptSummaryDTO struct {
	ID                   string     `json:"id"`
	TestID               string     `json:"testId"`
	UserID               string     `json:"userId"`
	StartedAt            time.Time  `json:"startedAt"`
	SubmittedAt          *time.Time `json:"submittedAt,omitempty"`
	DurationTakenSeconds int        `json:"durationTakenSeconds"`
	Score                int        `json:"score"`
	MaxScore             int        `json:"maxScore"`
	Percentage           float64    `json:"percentage"`
	Status               string     `json:"status"`
}
