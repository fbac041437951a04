package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creativestyle/internal/model"
	"creativestyle/internal/scoring"
)

type mongoResponseRepo struct {
	collection  *mongo.Collection
	submissions *mongo.Collection
}

// NewMongoResponseRepo creates a response repository backed by MongoDB
func NewMongoResponseRepo(db *mongo.Database) ResponseRepo {
	return &mongoResponseRepo{
		collection:  db.Collection("submission_responses"),
		submissions: db.Collection("submissions"),
	}
}

// EnsureResponseIndexes creates the unique (submission, question) index used by upserts.
func EnsureResponseIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("submission_responses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "submissionId", Value: 1}, {Key: "questionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoResponseRepo) Save(ctx context.Context, resp *model.Response) error {
	if resp.ResponseTime.IsZero() {
		resp.ResponseTime = time.Now().UTC()
	}
	filter := bson.M{"submissionId": resp.SubmissionID, "questionId": resp.QuestionID}
	_, err := r.collection.ReplaceOne(ctx, filter, resp, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoResponseRepo) GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "responseTime", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"submissionId": submissionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []*model.Response{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// rawNumeric keeps the stored value untyped so a bad document can be reported
// instead of failing the whole decode.
type rawNumeric struct {
	QuestionID      string      `bson:"questionId"`
	NumericResponse interface{} `bson:"numericResponse"`
}

func (r *mongoResponseRepo) GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error) {
	n, err := r.submissions.CountDocuments(ctx, bson.M{"_id": submissionID})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	filter := bson.M{"submissionId": submissionID, "numericResponse": bson.M{"$ne": nil}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []rawNumeric
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		v, err := toInt(row.NumericResponse)
		if err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", scoring.ErrMalformedInput, row.QuestionID, err)
		}
		out[row.QuestionID] = v
	}
	return out, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("non-integer value %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("non-numeric value %v (%T)", v, v)
	}
}
