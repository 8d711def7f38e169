package server

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gridwright/gridwright/pkg/apperr"
	"github.com/gridwright/gridwright/pkg/puzzle"
)

const puzzleCollection = "puzzles"

// MongoStore persists puzzles in a MongoDB collection, one document per
// generated puzzle keyed by its UUID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStore, err, "connecting to mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, apperr.Wrap(apperr.CodeStore, err, "pinging mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(puzzleCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, p *puzzle.Puzzle) (StoredPuzzle, error) {
	stored := StoredPuzzle{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Puzzle:    p,
	}

	if _, err := s.coll.InsertOne(ctx, stored); err != nil {
		return StoredPuzzle{}, apperr.Wrap(apperr.CodeStore, err, "inserting puzzle")
	}
	return stored, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (StoredPuzzle, error) {
	var stored StoredPuzzle
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return StoredPuzzle{}, apperr.New(apperr.CodePuzzleNotFound, "puzzle not found: %s", id)
	}
	if err != nil {
		return StoredPuzzle{}, apperr.Wrap(apperr.CodeStore, err, "finding puzzle")
	}
	return stored, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
