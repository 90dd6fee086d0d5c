// Package metadata provides a small key-value repository used by the session
// store to persist identity material between runs.
package metadata

import (
	"context"
)

// Repository is a durable key-value store. Get returns (nil, nil) when the
// key is absent; read paths never fail on missing data.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
