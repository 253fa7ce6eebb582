package repository

import (
	"context"

	"github.com/lshigami/coursehive/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAttemptRepository struct {
	col *mongo.Collection
}

func NewMongoAttemptRepository(db *mongo.Database) AttemptRepository {
	return &mongoAttemptRepository{col: db.Collection("attempts")}
}

func (r *mongoAttemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	_, err := r.col.InsertOne(ctx, attempt)
	return err
}

func (r *mongoAttemptRepository) FindByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt); err != nil {
		return nil, translateMongoError(err)
	}
	return &attempt, nil
}

func (r *mongoAttemptRepository) ExistsForUser(ctx context.Context, testID, userID string, statuses []model.AttemptStatus) (bool, error) {
	filter := bson.M{
		"testId": testID,
		"userId": userID,
		"status": bson.M{"$in": statuses},
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *mongoAttemptRepository) FindAllByTest(ctx context.Context, testID string) ([]model.Attempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"testId": testID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []model.Attempt
	if err := cur.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *mongoAttemptRepository) Submit(ctx context.Context, attempt *model.Attempt) error {
	filter := bson.M{"_id": attempt.ID, "status": model.AttemptInProgress}
	update := bson.M{"$set": bson.M{
		"answers":              attempt.Answers,
		"submittedAt":          attempt.SubmittedAt,
		"durationTakenSeconds": attempt.DurationTakenSeconds,
		"score":                attempt.Score,
		"status":               attempt.Status,
		"updatedAt":            attempt.UpdatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAttemptNotInProgress
	}
	return nil
}

func (r *mongoAttemptRepository) DeleteAllByTest(ctx context.Context, testID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"testId": testID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureMongoIndexes creates the lookup indexes used by the mongo repositories.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("tests").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("attempts").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "testId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "testId", Value: 1}, {Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}
