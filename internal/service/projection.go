package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/rs/zerolog/log"
)

// toSafeTestDTO builds the test-taker view. Fields are picked explicitly so
// the answer key can never leak through a struct copy.
func toSafeTestDTO(test *model.Test) dto.SafeTestDTO {
	questions := make([]dto.SafeQuestionDTO, len(test.Questions))
	for i, q := range test.Questions {
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		questions[i] = dto.SafeQuestionDTO{
			QuestionIndex: i,
			Text:          q.Text,
			Options:       options,
			Marks:         q.Marks,
		}
	}
	return dto.SafeTestDTO{
		ID:              test.ID,
		Title:           test.Title,
		Description:     test.Description,
		Subject:         test.Subject,
		DurationMinutes: test.DurationMinutes,
		TotalMarks:      test.TotalMarks,
		QuestionCount:   len(test.Questions),
		Questions:       questions,
		CreatedAt:       test.CreatedAt,
	}
}

func toTestResponseDTO(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, err
	}
	resp.Questions = make([]dto.QuestionResponseDTO, len(test.Questions))
	if err := copier.Copy(&resp.Questions, []model.Question(test.Questions)); err != nil {
		return nil, err
	}
	return &resp, nil
}

func toAnswerResponseDTOs(answers []model.Answer) []dto.AnswerResponseDTO {
	out := make([]dto.AnswerResponseDTO, len(answers))
	for i, a := range answers {
		out[i] = dto.AnswerResponseDTO{
			QuestionIndex: a.QuestionIndex,
			SelectedIndex: copyIntPtr(a.SelectedIndex),
			IsCorrect:     a.IsCorrect,
			MarksObtained: a.MarksObtained,
		}
	}
	return out
}

// publish is fire and forget. A broker failure never fails the operation.
func publish(p event.Publisher, eventType string, payload map[string]interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(eventType, payload); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("Failed to publish event")
	}
}
