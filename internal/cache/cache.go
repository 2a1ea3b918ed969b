// Package cache stores encoded listings per entity kind. Every kind is a
// namespace; entries inside it are keyed by page and size, and EvictAll
// drops the whole namespace at once.
//
// Each namespace carries a generation that EvictAll advances. A listing
// read from the store is only stored if the generation observed before
// the read is still current, so a write that lands mid-read cannot leave
// its pre-write snapshot behind.
package cache

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss indicates the requested entry is not cached.
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleGeneration is returned by Put when the kind was evicted after
	// the caller read its generation. Nothing is stored.
	ErrStaleGeneration = errors.New("cache generation changed")
)

type Cache interface {
	Get(ctx context.Context, kind, key string) ([]byte, error)
	Generation(ctx context.Context, kind string) (uint64, error)
	Put(ctx context.Context, kind, key string, gen uint64, data []byte) error
	EvictAll(ctx context.Context, kind string) error
}

// ListingKey identifies one page of a listing within a kind.
func ListingKey(page, size int) string {
	return fmt.Sprintf("page=%d:size=%d", page, size)
}
