package hr

import "context"

// StoreAPI supplies a complete, consistent copy of every collection.
type StoreAPI interface {
	Snapshot(ctx context.Context) (Dataset, error)
	Ping(ctx context.Context) error
}
