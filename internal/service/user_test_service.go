package service

import (
	"context"
	"errors"

	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService is the test-taker side of the catalog. Every projection it
// returns is answer-key free.
type UserTestService interface {
	ListPublishedTests(ctx context.Context) ([]dto.SafeTestDTO, error)
	GetTest(ctx context.Context, testID string) (*dto.SafeTestDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) ListPublishedTests(ctx context.Context) ([]dto.SafeTestDTO, error) {
	tests, err := s.testRepo.FindAllPublished(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get published tests from repository")
		return nil, apperror.Unexpected(err, "failed to list tests")
	}

	dtos := make([]dto.SafeTestDTO, 0, len(tests))
	for i := range tests {
		dtos = append(dtos, toSafeTestDTO(&tests[i]))
	}
	return dtos, nil
}

func (s *userTestService) GetTest(ctx context.Context, testID string) (*dto.SafeTestDTO, error) {
	test, err := findPublishedTest(ctx, s.testRepo, testID)
	if err != nil {
		return nil, err
	}
	safe := toSafeTestDTO(test)
	return &safe, nil
}

// findPublishedTest treats an unpublished test exactly like a missing one.
func findPublishedTest(ctx context.Context, repo repository.TestRepository, testID string) (*model.Test, error) {
	test, err := repo.FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Test not found")
		}
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get test from repository")
		return nil, apperror.Unexpected(err, "failed to load test")
	}
	if !test.Published {
		return nil, apperror.NotFound("Test not found")
	}
	return test, nil
}
