package service

import (
	"context"
	"errors"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttemptService reports results of attempts.
type AttemptService interface {
	// GetAttemptDetails returns one attempt to the user who made it.
	GetAttemptDetails(ctx context.Context, userID, attemptID string) (*dto.TestAttemptDetailDTO, error)
	// GetTestLeaderboard lists every attempt of a test, best score first.
	GetTestLeaderboard(ctx context.Context, testID string) ([]dto.TestAttemptSummaryDTO, error)
}

type attemptService struct {
	testRepo       repository.TestRepository
	attemptRepo    repository.AttemptRepository
	scoreConverter ScoreConverterService
}

func NewAttemptService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	scoreConverter ScoreConverterService,
) AttemptService {
	return &attemptService{testRepo: testRepo, attemptRepo: attemptRepo, scoreConverter: scoreConverter}
}

func (s *attemptService) GetAttemptDetails(ctx context.Context, userID, attemptID string) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Attempt not found")
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Failed to get attempt from repository")
		return nil, apperror.Unexpected(err, "failed to load attempt")
	}
	if attempt.UserID != userID {
		return nil, apperror.Forbidden("You are not allowed to view this attempt")
	}

	resp := dto.TestAttemptDetailDTO{
		ID:                   attempt.ID,
		TestID:               attempt.TestID,
		UserID:               attempt.UserID,
		StartedAt:            attempt.StartedAt,
		SubmittedAt:          attempt.SubmittedAt,
		DurationTakenSeconds: attempt.DurationTakenSeconds,
		Answers:              toAnswerResponseDTOs(attempt.Answers),
		Score:                attempt.Score,
		MaxScore:             attempt.MaxScore,
		Percentage:           s.scoreConverter.ToPercentage(attempt.Score, attempt.MaxScore),
		Status:               string(attempt.Status),
	}

	// The test may have been removed since; the attempt is still reported.
	test, err := s.testRepo.FindByID(ctx, attempt.TestID)
	switch {
	case err == nil:
		resp.Test = &dto.AttemptTestDTO{ID: test.ID, Title: test.Title, TotalMarks: test.TotalMarks}
	case !errors.Is(err, repository.ErrNotFound):
		log.Error().Err(err).Str("testID", attempt.TestID).Msg("Failed to get test of attempt")
		return nil, apperror.Unexpected(err, "failed to load test")
	}
	return &resp, nil
}

func (s *attemptService) GetTestLeaderboard(ctx context.Context, testID string) ([]dto.TestAttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get attempts for test")
		return nil, apperror.Unexpected(err, "failed to list attempts")
	}

	// Equal scores keep their stored order.
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].Score > attempts[j].Score
	})

	summaries := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summary, err := s.toSummary(&attempts[i])
		if err != nil {
			log.Error().Err(err).Str("attemptID", attempts[i].ID).Msg("Failed to map attempt summary")
			return nil, apperror.Unexpected(err, "failed to map attempt")
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *attemptService) toSummary(attempt *model.Attempt) (dto.TestAttemptSummaryDTO, error) {
	var summary dto.TestAttemptSummaryDTO
	if err := copier.Copy(&summary, attempt); err != nil {
		return summary, err
	}
	summary.Status = string(attempt.Status)
	summary.Percentage = s.scoreConverter.ToPercentage(attempt.Score, attempt.MaxScore)
	return summary, nil
}
