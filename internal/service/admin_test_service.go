package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultQuestionMarks = 1

// AdminTestService is the owner side of the test catalog.
type AdminTestService interface {
	CreateTest(ctx context.Context, adminID string, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	UpdateTest(ctx context.Context, adminID, testID string, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	// DeleteTest removes the test and every attempt made against it.
	DeleteTest(ctx context.Context, adminID, testID string) error
	ListOwnedTests(ctx context.Context, adminID string) ([]dto.TestResponseDTO, error)
}

type adminTestService struct {
	testRepo    repository.TestRepository
	attemptRepo repository.AttemptRepository
	publisher   event.Publisher
	now         Clock
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	publisher event.Publisher,
	clock Clock,
) AdminTestService {
	return &adminTestService{testRepo: testRepo, attemptRepo: attemptRepo, publisher: publisher, now: clock}
}

func (s *adminTestService) CreateTest(ctx context.Context, adminID string, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	now := s.now()
	test := model.Test{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Subject:         req.Subject,
		DurationMinutes: req.DurationMinutes,
		Questions:       buildQuestions(req.Questions),
		CreatedBy:       adminID,
		Published:       true,
		AllowRetake:     req.AllowRetake != nil && *req.AllowRetake,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	test.RecomputeTotalMarks()

	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Str("adminID", adminID).Msg("Failed to create test")
		return nil, apperror.Unexpected(err, "failed to create test")
	}
	log.Info().Str("testID", test.ID).Str("adminID", adminID).Int("questions", len(test.Questions)).Msg("Test created")

	publish(s.publisher, event.TestCreated, map[string]interface{}{
		"testId":     test.ID,
		"createdBy":  adminID,
		"totalMarks": test.TotalMarks,
	})
	return toTestResponseDTO(&test)
}

func (s *adminTestService) UpdateTest(ctx context.Context, adminID, testID string, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.findOwned(ctx, adminID, testID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.Subject != nil {
		test.Subject = *req.Subject
	}
	if req.DurationMinutes != nil {
		test.DurationMinutes = *req.DurationMinutes
	}
	if req.Published != nil {
		test.Published = *req.Published
	}
	if req.AllowRetake != nil {
		test.AllowRetake = *req.AllowRetake
	}
	if req.Questions != nil {
		test.Questions = buildQuestions(*req.Questions)
		test.RecomputeTotalMarks()
	}
	test.UpdatedAt = s.now()

	if err := s.testRepo.Update(ctx, test); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Test not found")
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to update test")
		return nil, apperror.Unexpected(err, "failed to update test")
	}

	publish(s.publisher, event.TestUpdated, map[string]interface{}{
		"testId":     test.ID,
		"published":  test.Published,
		"totalMarks": test.TotalMarks,
	})
	return toTestResponseDTO(test)
}

func (s *adminTestService) DeleteTest(ctx context.Context, adminID, testID string) error {
	if _, err := s.findOwned(ctx, adminID, testID); err != nil {
		return err
	}

	removed, err := s.attemptRepo.DeleteAllByTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to delete attempts of test")
		return apperror.Unexpected(err, "failed to delete test attempts")
	}

	if err := s.testRepo.Delete(ctx, testID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Test not found")
		}
		// The attempts are already gone at this point.
		log.Error().Err(err).Str("testID", testID).Int64("deletedAttempts", removed).Msg("Failed to delete test after removing its attempts")
		return apperror.Unexpected(err, "failed to delete test")
	}
	log.Info().Str("testID", testID).Int64("deletedAttempts", removed).Msg("Test deleted")

	publish(s.publisher, event.TestDeleted, map[string]interface{}{
		"testId":          testID,
		"deletedAttempts": removed,
	})
	return nil
}

func (s *adminTestService) ListOwnedTests(ctx context.Context, adminID string) ([]dto.TestResponseDTO, error) {
	tests, err := s.testRepo.FindAllByOwner(ctx, adminID)
	if err != nil {
		log.Error().Err(err).Str("adminID", adminID).Msg("Failed to list owned tests")
		return nil, apperror.Unexpected(err, "failed to list tests")
	}

	out := make([]dto.TestResponseDTO, 0, len(tests))
	for i := range tests {
		resp, err := toTestResponseDTO(&tests[i])
		if err != nil {
			return nil, apperror.Unexpected(err, "failed to map test")
		}
		out = append(out, *resp)
	}
	return out, nil
}

// findOwned hides tests of other owners behind the same NotFound as a
// missing test.
func (s *adminTestService) findOwned(ctx context.Context, adminID, testID string) (*model.Test, error) {
	test, err := s.testRepo.FindByIDAndOwner(ctx, testID, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Test not found")
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to load test")
		return nil, apperror.Unexpected(err, "failed to load test")
	}
	return test, nil
}

func buildQuestions(reqs []dto.QuestionCreateDTO) []model.Question {
	questions := make([]model.Question, 0, len(reqs))
	for _, q := range reqs {
		marks := defaultQuestionMarks
		if q.Marks != nil && *q.Marks != 0 {
			marks = *q.Marks
		}
		negative := 0
		if q.NegativeMarks != nil {
			negative = absInt(*q.NegativeMarks)
		}
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		questions = append(questions, model.Question{
			Text:          q.Text,
			Options:       options,
			CorrectIndex:  *q.CorrectIndex,
			Marks:         marks,
			NegativeMarks: negative,
		})
	}
	return questions
}
