// Package stats is the analytics side channel. Events are written to a
// MongoDB collection; every write is best-effort and must never gate the
// request that produced it.
package stats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event types recorded by the service.
const (
	EventVisit        = "visite"
	EventOrder        = "commande"
	EventRegistration = "inscription"
)

// Event is one analytics document.
type Event struct {
	Type    string         `bson:"type"`
	Page    string         `bson:"page,omitempty"`
	Date    time.Time      `bson:"date"`
	Details map[string]any `bson:"details,omitempty"`
}

// Recorder accepts analytics events.
type Recorder interface {
	Record(ctx context.Context, event Event) error
	CountByType(ctx context.Context, eventType string) (int64, error)
}

// MongoRecorder writes events to a MongoDB collection.
type MongoRecorder struct {
	coll *mongo.Collection
}

// Connect dials MongoDB and returns a recorder over the stats collection.
func Connect(ctx context.Context, uri, database string) (*MongoRecorder, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoRecorder{coll: client.Database(database).Collection("stats")}, nil
}

func (r *MongoRecorder) Record(ctx context.Context, event Event) error {
	if event.Date.IsZero() {
		event.Date = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *MongoRecorder) CountByType(ctx context.Context, eventType string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"type": eventType})
}

// NoopRecorder is used when no analytics store is configured.
type NoopRecorder struct{}

func (NoopRecorder) Record(context.Context, Event) error { return nil }

func (NoopRecorder) CountByType(context.Context, string) (int64, error) { return 0, nil }
