package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MalformedSelection is recorded for a selectedIndex that is present but not
// an integer. It never matches an option, so the answer grades as wrong.
const MalformedSelection = -1

// AnswerSubmitDTO is a test-taker's choice for one question. SelectedIndex is
// kept raw so a malformed value degrades to a wrong answer instead of failing
// the whole submission.
type AnswerSubmitDTO struct {
	QuestionIndex *int            `json:"questionIndex"`
	SelectedIndex json.RawMessage `json:"selectedIndex" swaggertype:"integer"`
}

// Selection decodes SelectedIndex: nil when skipped, MalformedSelection when
// the value is not an integer.
func (a AnswerSubmitDTO) Selection() *int {
	raw := bytes.TrimSpace(a.SelectedIndex)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if v, err := strconv.Atoi(string(raw)); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		v := int(f)
		return &v
	}
	v := MalformedSelection
	return &v
}

// TestAttemptSubmitDTO is the request body of a test submission.
type TestAttemptSubmitDTO struct {
	AttemptID string            `json:"attemptId" binding:"required"`
	Answers   []AnswerSubmitDTO `json:"answers"`
}
