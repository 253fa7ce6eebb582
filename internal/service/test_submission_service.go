package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestSubmissionService runs the attempt lifecycle: start, then submit once.
type TestSubmissionService interface {
	StartTest(ctx context.Context, userID, testID string) (*dto.StartAttemptResponseDTO, error)
	SubmitTest(ctx context.Context, userID, testID string, req dto.TestAttemptSubmitDTO) (*dto.SubmitAttemptResponseDTO, error)
}

type testSubmissionService struct {
	testRepo    repository.TestRepository
	attemptRepo repository.AttemptRepository
	publisher   event.Publisher
	now         Clock
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	publisher event.Publisher,
	clock Clock,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
		publisher:   publisher,
		now:         clock,
	}
}

func (s *testSubmissionService) StartTest(ctx context.Context, userID, testID string) (*dto.StartAttemptResponseDTO, error) {
	test, err := findPublishedTest(ctx, s.testRepo, testID)
	if err != nil {
		return nil, err
	}

	if !test.AllowRetake {
		attempted, err := s.attemptRepo.ExistsForUser(ctx, testID, userID, model.TerminalStatuses)
		if err != nil {
			log.Error().Err(err).Str("testID", testID).Str("userID", userID).Msg("Failed to check previous attempts")
			return nil, apperror.Unexpected(err, "failed to check previous attempts")
		}
		if attempted {
			return nil, apperror.Conflict("You have already attempted this test and retake not allowed")
		}
	}

	now := s.now()
	attempt := model.Attempt{
		ID:        uuid.NewString(),
		TestID:    test.ID,
		UserID:    userID,
		StartedAt: now,
		Answers:   []model.Answer{},
		MaxScore:  test.TotalMarks,
		Status:    model.AttemptInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("testID", testID).Str("userID", userID).Msg("Failed to create attempt")
		return nil, apperror.Unexpected(err, "failed to start test")
	}
	log.Info().Str("attemptID", attempt.ID).Str("testID", testID).Str("userID", userID).Msg("Attempt started")

	publish(s.publisher, event.AttemptStarted, map[string]interface{}{
		"attemptId": attempt.ID,
		"testId":    test.ID,
		"userId":    userID,
	})

	return &dto.StartAttemptResponseDTO{
		AttemptID: attempt.ID,
		StartedAt: attempt.StartedAt,
		ExpiresAt: attempt.StartedAt.Add(test.Duration()),
		Test:      toSafeTestDTO(test),
	}, nil
}

func (s *testSubmissionService) SubmitTest(ctx context.Context, userID, testID string, req dto.TestAttemptSubmitDTO) (*dto.SubmitAttemptResponseDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Test not found")
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get test for submission")
		return nil, apperror.Unexpected(err, "failed to load test")
	}

	attempt, err := s.attemptRepo.FindByID(ctx, req.AttemptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Attempt not found")
		}
		log.Error().Err(err).Str("attemptID", req.AttemptID).Msg("Failed to get attempt for submission")
		return nil, apperror.Unexpected(err, "failed to load attempt")
	}
	// An attempt only exists in the scope of the test it was started for.
	if attempt.TestID != test.ID {
		return nil, apperror.NotFound("Attempt not found")
	}
	if attempt.UserID != userID {
		return nil, apperror.Forbidden("You are not allowed to submit this attempt")
	}
	if attempt.Status.IsTerminal() {
		return nil, apperror.Conflict("Attempt already submitted")
	}

	now := s.now()
	elapsed := now.Sub(attempt.StartedAt)
	autoSubmitted := elapsed > test.Duration()

	graded := Grade(test.Questions, toSubmittedAnswers(req.Answers))

	attempt.Answers = graded.Answers
	attempt.Score = graded.Score
	attempt.SubmittedAt = &now
	attempt.DurationTakenSeconds = int(math.Max(0, math.Floor(elapsed.Seconds())))
	attempt.UpdatedAt = now
	attempt.Status = model.AttemptSubmitted
	if autoSubmitted {
		attempt.Status = model.AttemptAutoSubmitted
	}

	if err := s.attemptRepo.Submit(ctx, attempt); err != nil {
		if errors.Is(err, repository.ErrAttemptNotInProgress) {
			return nil, apperror.Conflict("Attempt already submitted")
		}
		log.Error().Err(err).Str("attemptID", attempt.ID).Msg("Failed to store graded attempt")
		return nil, apperror.Unexpected(err, "failed to submit test")
	}
	log.Info().
		Str("attemptID", attempt.ID).
		Str("userID", userID).
		Int("score", attempt.Score).
		Int("maxScore", attempt.MaxScore).
		Bool("autoSubmitted", autoSubmitted).
		Msg("Attempt submitted")

	publish(s.publisher, event.AttemptSubmitted, map[string]interface{}{
		"attemptId":     attempt.ID,
		"testId":        attempt.TestID,
		"userId":        userID,
		"score":         attempt.Score,
		"maxScore":      attempt.MaxScore,
		"autoSubmitted": autoSubmitted,
	})

	return &dto.SubmitAttemptResponseDTO{
		AttemptID:     attempt.ID,
		Score:         attempt.Score,
		MaxScore:      attempt.MaxScore,
		AutoSubmitted: autoSubmitted,
	}, nil
}

// toSubmittedAnswers drops entries without a question index; they cannot be
// matched to a question.
func toSubmittedAnswers(answers []dto.AnswerSubmitDTO) []SubmittedAnswer {
	out := make([]SubmittedAnswer, 0, len(answers))
	for _, a := range answers {
		if a.QuestionIndex == nil {
			continue
		}
		out = append(out, SubmittedAnswer{QuestionIndex: *a.QuestionIndex, SelectedIndex: a.Selection()})
	}
	return out
}
