package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creativestyle/internal/model"
)

type mongoSubmissionRepo struct {
	collection *mongo.Collection
}

// NewMongoSubmissionRepo creates a submission repository backed by MongoDB
func NewMongoSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &mongoSubmissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *mongoSubmissionRepo) Create(ctx context.Context, s *model.Submission) error {
	if s.SubmissionTime.IsZero() {
		s.SubmissionTime = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, s)
	return err
}

func (r *mongoSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var s model.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoSubmissionRepo) List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error) {
	q := bson.M{}
	if filter.Complete != nil {
		q["isComplete"] = *filter.Complete
	}
	window := bson.M{}
	if filter.From != nil {
		window["$gte"] = *filter.From
	}
	if filter.To != nil {
		window["$lte"] = *filter.To
	}
	if len(window) > 0 {
		q["submissionTime"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "submissionTime", Value: -1}})
	cursor, err := r.collection.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []*model.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoSubmissionRepo) MarkComplete(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isComplete": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoSubmissionRepo) Count(ctx context.Context) (int64, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	completed, err := r.collection.CountDocuments(ctx, bson.M{"isComplete": true})
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
