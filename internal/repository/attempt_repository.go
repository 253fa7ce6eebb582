package repository

import (
	"context"

	"github.com/lshigami/coursehive/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id string) (*model.Attempt, error)
	ExistsForUser(ctx context.Context, testID, userID string, statuses []model.AttemptStatus) (bool, error)
	FindAllByTest(ctx context.Context, testID string) ([]model.Attempt, error) // creation order
	// Submit stores the grading fields of attempt, but only while the stored
	// attempt is still in progress. Otherwise it returns ErrAttemptNotInProgress.
	Submit(ctx context.Context, attempt *model.Attempt) error
	DeleteAllByTest(ctx context.Context, testID string) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &attempt, nil
}

func (r *attemptRepository) ExistsForUser(ctx context.Context, testID, userID string, statuses []model.AttemptStatus) (bool, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("test_id = ? AND user_id = ? AND status IN ?", testID, userID, names).
		Count(&count).Error
	return count > 0, err
}

func (r *attemptRepository) FindAllByTest(ctx context.Context, testID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("created_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Submit(ctx context.Context, attempt *model.Attempt) error {
	res := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("id = ? AND status = ?", attempt.ID, string(model.AttemptInProgress)).
		Updates(map[string]interface{}{
			"answers":                attempt.Answers,
			"submitted_at":           attempt.SubmittedAt,
			"duration_taken_seconds": attempt.DurationTakenSeconds,
			"score":                  attempt.Score,
			"status":                 string(attempt.Status),
			"updated_at":             attempt.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttemptNotInProgress
	}
	return nil
}

func (r *attemptRepository) DeleteAllByTest(ctx context.Context, testID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("test_id = ?", testID).Delete(&model.Attempt{})
	return res.RowsAffected, res.Error
}
