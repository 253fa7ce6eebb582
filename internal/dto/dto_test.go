package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestAnswerSelection(t *testing.T) {
	cases := []struct {
		name string
		body string
		want *int
	}{
		{"integer", `{"questionIndex":0,"selectedIndex":2}`, intPtr(2)},
		{"zero", `{"questionIndex":0,"selectedIndex":0}`, intPtr(0)},
		{"integral float", `{"questionIndex":0,"selectedIndex":1.0}`, intPtr(1)},
		{"null", `{"questionIndex":0,"selectedIndex":null}`, nil},
		{"absent", `{"questionIndex":0}`, nil},
		{"string", `{"questionIndex":0,"selectedIndex":"b"}`, intPtr(MalformedSelection)},
		{"fraction", `{"questionIndex":0,"selectedIndex":1.5}`, intPtr(MalformedSelection)},
		{"bool", `{"questionIndex":0,"selectedIndex":true}`, intPtr(MalformedSelection)},
		{"negative", `{"questionIndex":0,"selectedIndex":-3}`, intPtr(-3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a AnswerSubmitDTO
			require.NoError(t, json.Unmarshal([]byte(tc.body), &a))
			assert.Equal(t, tc.want, a.Selection())
		})
	}
}

func validQuestion() QuestionCreateDTO {
	return QuestionCreateDTO{Text: "2+2?", Options: []string{"3", "4"}, CorrectIndex: intPtr(1)}
}

func TestTestCreateValidate(t *testing.T) {
	base := func() TestCreateDTO {
		return TestCreateDTO{Title: "Algebra", DurationMinutes: 10, Questions: []QuestionCreateDTO{validQuestion()}}
	}

	require.NoError(t, base().Validate())

	cases := []struct {
		name   string
		mutate func(*TestCreateDTO)
		errKey string
	}{
		{"missing title", func(d *TestCreateDTO) { d.Title = "" }, "title"},
		{"missing duration", func(d *TestCreateDTO) { d.DurationMinutes = 0 }, "durationMinutes"},
		{"negative duration", func(d *TestCreateDTO) { d.DurationMinutes = -5 }, "durationMinutes"},
		{"no questions", func(d *TestCreateDTO) { d.Questions = nil }, "questions"},
		{"one option", func(d *TestCreateDTO) { d.Questions[0].Options = []string{"only"}; d.Questions[0].CorrectIndex = intPtr(0) }, "questions"},
		{"correct index out of range", func(d *TestCreateDTO) { d.Questions[0].CorrectIndex = intPtr(2) }, "questions"},
		{"negative correct index", func(d *TestCreateDTO) { d.Questions[0].CorrectIndex = intPtr(-1) }, "questions"},
		{"missing correct index", func(d *TestCreateDTO) { d.Questions[0].CorrectIndex = nil }, "questions"},
		{"missing text", func(d *TestCreateDTO) { d.Questions[0].Text = "" }, "questions"},
		{"negative marks value", func(d *TestCreateDTO) { d.Questions[0].Marks = intPtr(-2) }, "questions"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errKey)
		})
	}
}

func TestTestUpdateValidate(t *testing.T) {
	empty := ""
	zero := 0
	noQuestions := []QuestionCreateDTO{}
	badQuestions := []QuestionCreateDTO{{Text: "q", Options: []string{"a"}, CorrectIndex: intPtr(0)}}
	title := "Renamed"

	assert.NoError(t, TestUpdateDTO{}.Validate())
	assert.NoError(t, TestUpdateDTO{Title: &title}.Validate())
	assert.Error(t, TestUpdateDTO{Title: &empty}.Validate())
	assert.Error(t, TestUpdateDTO{DurationMinutes: &zero}.Validate())
	assert.Error(t, TestUpdateDTO{Questions: &noQuestions}.Validate())
	assert.Error(t, TestUpdateDTO{Questions: &badQuestions}.Validate())

	assert.True(t, TestUpdateDTO{}.IsEmpty())
	assert.False(t, TestUpdateDTO{Title: &title}.IsEmpty())
}
