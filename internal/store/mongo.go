package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway is a database handle scoped to a single request: Acquire opens a
// fresh client connection, Release closes it. Nothing is pooled or reused
// across requests.
type Gateway struct {
	client *mongo.Client
	db     *mongo.Database
}

// Acquire connects a new client and binds it to the named database. The URI
// and database name are not validated here; a bad value surfaces from the
// first operation that touches the handle.
func Acquire(ctx context.Context, uri, dbName string) (*Gateway, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &Gateway{client: client, db: client.Database(dbName)}, nil
}

// Release closes the underlying client connection.
func (g *Gateway) Release(ctx context.Context) {
	_ = g.client.Disconnect(ctx)
}

func (g *Gateway) Events() *EventStore {
	return &EventStore{col: g.db.Collection("events")}
}

func (g *Gateway) Users() *UserStore {
	return &UserStore{col: g.db.Collection("users")}
}
