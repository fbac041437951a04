package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoStore connects, pings and prepares indexes.
func NewMongoStore(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(database)
	if err := EnsureResponseIndexes(connectCtx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Submissions: NewMongoSubmissionRepo(db),
		Responses:   NewMongoResponseRepo(db),
		close:       client.Disconnect,
	}, nil
}
