package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

var (
	sharedOnce   sync.Once
	sharedClient *mongo.Client
	sharedErr    error
)

// SharedClient returns the process-wide Mongo client, connecting on first
// use. Construction is idempotent: concurrent first callers race on a single
// sync.Once and every caller receives the same client (or the same
// connection error). Warm reloads therefore never stack up duplicate
// clients.
func SharedClient(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = ConnectMongo(ctx, uri, timeout)
	})
	return sharedClient, sharedErr
}
