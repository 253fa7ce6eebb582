package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// QuestionCreateDTO is one question of an admin create or update request.
type QuestionCreateDTO struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectIndex  *int     `json:"correctIndex"`
	Marks         *int     `json:"marks"`         // defaults to 1
	NegativeMarks *int     `json:"negativeMarks"` // defaults to 0
}

func (q QuestionCreateDTO) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Text, validation.Required.Error("question text is required")),
		validation.Field(&q.Options,
			validation.Required.Error("options are required"),
			validation.Length(2, 0).Error("a question needs at least 2 options"),
			validation.Each(validation.Required.Error("option text is required")),
		),
		validation.Field(&q.CorrectIndex,
			validation.NotNil.Error("correctIndex is required"),
			validation.By(optionIndexRule(len(q.Options))),
		),
		validation.Field(&q.Marks, validation.Min(0).Error("marks must not be negative")),
	)
}

func optionIndexRule(optionCount int) validation.RuleFunc {
	return func(value interface{}) error {
		idx, _ := value.(*int)
		if idx == nil {
			return nil
		}
		if *idx < 0 || *idx >= optionCount {
			return validation.NewError("validation_correct_index", "correctIndex must reference one of the options")
		}
		return nil
	}
}

// TestCreateDTO is the admin request to create a test.
type TestCreateDTO struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Subject         string              `json:"subject"`
	DurationMinutes int                 `json:"durationMinutes"`
	Questions       []QuestionCreateDTO `json:"questions"`
	AllowRetake     *bool               `json:"allowRetake"`
}

func (t TestCreateDTO) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required.Error("title is required")),
		validation.Field(&t.DurationMinutes,
			validation.Required.Error("durationMinutes is required"),
			validation.Min(1).Error("durationMinutes must be positive"),
		),
		validation.Field(&t.Questions, validation.Required.Error("at least one question is required")),
	)
}

// TestUpdateDTO is a partial update: nil fields are left unchanged.
type TestUpdateDTO struct {
	Title           *string              `json:"title"`
	Description     *string              `json:"description"`
	Subject         *string              `json:"subject"`
	DurationMinutes *int                 `json:"durationMinutes"`
	Questions       *[]QuestionCreateDTO `json:"questions"`
	Published       *bool                `json:"published"`
	AllowRetake     *bool                `json:"allowRetake"`
}

func (t TestUpdateDTO) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.NilOrNotEmpty.Error("title must not be empty")),
		validation.Field(&t.DurationMinutes,
			validation.NilOrNotEmpty.Error("durationMinutes must be positive"),
			validation.Min(1).Error("durationMinutes must be positive"),
		),
		validation.Field(&t.Questions, validation.NilOrNotEmpty.Error("at least one question is required")),
	)
}

// IsEmpty reports whether the update carries no field at all.
func (t TestUpdateDTO) IsEmpty() bool {
	return t.Title == nil && t.Description == nil && t.Subject == nil && t.DurationMinutes == nil &&
		t.Questions == nil && t.Published == nil && t.AllowRetake == nil
}
