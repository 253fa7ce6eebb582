package repository

import (
	"context"

	"github.com/lshigami/coursehive/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoTestRepository struct {
	col *mongo.Collection
}

func NewMongoTestRepository(db *mongo.Database) TestRepository {
	return &mongoTestRepository{col: db.Collection("tests")}
}

func (r *mongoTestRepository) Create(ctx context.Context, test *model.Test) error {
	_, err := r.col.InsertOne(ctx, test)
	return err
}

func (r *mongoTestRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoTestRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Test, error) {
	return r.findOne(ctx, bson.M{"_id": id, "createdBy": ownerID})
}

func (r *mongoTestRepository) findOne(ctx context.Context, filter bson.M) (*model.Test, error) {
	var test model.Test
	if err := r.col.FindOne(ctx, filter).Decode(&test); err != nil {
		return nil, translateMongoError(err)
	}
	return &test, nil
}

func (r *mongoTestRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]model.Test, error) {
	return r.findNewestFirst(ctx, bson.M{"createdBy": ownerID})
}

func (r *mongoTestRepository) FindAllPublished(ctx context.Context) ([]model.Test, error) {
	return r.findNewestFirst(ctx, bson.M{"published": true})
}

func (r *mongoTestRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]model.Test, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tests []model.Test
	if err := cur.All(ctx, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *mongoTestRepository) Update(ctx context.Context, test *model.Test) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": test.ID}, test)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
