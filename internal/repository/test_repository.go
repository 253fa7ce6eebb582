package repository

import (
	"context"

	"github.com/lshigami/coursehive/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id string) (*model.Test, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Test, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]model.Test, error) // newest first
	FindAllPublished(ctx context.Context) ([]model.Test, error)               // newest first
	Update(ctx context.Context, test *model.Test) error
	Delete(ctx context.Context, id string) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &test, nil
}

func (r *testRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&test).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &test, nil
}

func (r *testRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindAllPublished(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

// Update overwrites every mutable column. It never inserts, so a test that
// was deleted meanwhile yields ErrNotFound.
func (r *testRepository) Update(ctx context.Context, test *model.Test) error {
	res := r.db.WithContext(ctx).Model(test).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(test)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *testRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Test{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
