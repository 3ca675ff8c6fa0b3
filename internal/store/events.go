package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lopes/lopes-events/backend/internal/models"
)

// EventStore handles event CRUD in the events collection.
type EventStore struct {
	col *mongo.Collection
}

// List returns every event in the collection in its natural order.
func (s *EventStore) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var evs []models.Event
	if err := cur.All(ctx, &evs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return evs, nil
}

// Insert stores a new event and fills in the assigned identifier.
func (s *EventStore) Insert(ctx context.Context, ev *models.Event) (*models.Event, error) {
	res, err := s.col.InsertOne(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, ErrWriteFailed
	}
	ev.ID = oid
	return ev, nil
}

func (s *EventStore) Get(ctx context.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	var ev models.Event
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &ev, nil
}

// Replace overwrites every field of the matched event with ev, then
// re-fetches the stored document. The two calls are not transactional.
func (s *EventStore) Replace(ctx context.Context, id string, ev *models.Event) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": ev})
	if err != nil {
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", id, err)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
