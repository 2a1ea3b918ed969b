package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tpc/ocean/internal/cache"
	"github.com/tpc/ocean/internal/hypermedia"
	"github.com/tpc/ocean/internal/model"
	"github.com/tpc/ocean/internal/repository"
	"github.com/tpc/ocean/internal/resource"
)

// Store persists records of one kind. Lookups and deletes of missing ids
// return gorm.ErrRecordNotFound.
type Store[T any] interface {
	FindPage(ctx context.Context, page, size int) ([]T, int64, error)
	FindByID(ctx context.Context, id uint64) (*T, error)
	Save(ctx context.Context, rec *T) error
	DeleteByID(ctx context.Context, id uint64) error
}

// exportPageSize bounds each store round trip while building a Table.
const exportPageSize = 200

// ResourceManager implements list/get/create/update/delete for one kind.
// Listings are cached per page; every successful write evicts the whole
// kind from the cache.
type ResourceManager[T any] struct {
	kind  resource.Kind[T]
	store Store[T]
	cache cache.Cache
	links *hypermedia.Assembler[T]
	log   zerolog.Logger
}

func NewResourceManager[T any](kind resource.Kind[T], store Store[T], c cache.Cache, links *hypermedia.Assembler[T], log zerolog.Logger) *ResourceManager[T] {
	return &ResourceManager[T]{
		kind:  kind,
		store: store,
		cache: c,
		links: links,
		log:   log.With().Str("component", "manager").Str("kind", kind.Name).Logger(),
	}
}

func (m *ResourceManager[T]) Kind() resource.Kind[T] {
	return m.kind
}

type listing[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
}

func (m *ResourceManager[T]) List(ctx context.Context, page, size int) (hypermedia.PagedModel[T], error) {
	if page < 0 {
		return hypermedia.PagedModel[T]{}, fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if size <= 0 {
		return hypermedia.PagedModel[T]{}, fmt.Errorf("%w: size must be positive", ErrInvalidInput)
	}

	key := cache.ListingKey(page, size)
	if cached, ok := m.cachedListing(ctx, key); ok {
		return m.links.ToPagedModel(cached.Records, page, size, cached.Total), nil
	}

	// The generation must be read before the store so that an eviction
	// racing with FindPage makes the Put below a no-op.
	gen, genErr := m.cache.Generation(ctx, m.kind.Name)
	if genErr != nil {
		m.log.Warn().Err(genErr).Msg("cache generation unavailable, listing not cached")
	}

	records, total, err := m.store.FindPage(ctx, page, size)
	if err != nil {
		return hypermedia.PagedModel[T]{}, m.translate(err)
	}

	if genErr == nil {
		m.storeListing(ctx, key, gen, listing[T]{Records: records, Total: total})
	}
	return m.links.ToPagedModel(records, page, size, total), nil
}

func (m *ResourceManager[T]) storeListing(ctx context.Context, key string, gen uint64, l listing[T]) {
	data, err := json.Marshal(l)
	if err != nil {
		m.log.Warn().Err(err).Msg("encode listing for cache")
		return
	}
	err = m.cache.Put(ctx, m.kind.Name, key, gen, data)
	switch {
	case err == nil:
	case errors.Is(err, cache.ErrStaleGeneration):
		m.log.Debug().Str("key", key).Msg("listing changed while read, not cached")
	default:
		m.log.Warn().Err(err).Str("key", key).Msg("cache put failed")
	}
}

func (m *ResourceManager[T]) cachedListing(ctx context.Context, key string) (listing[T], bool) {
	var out listing[T]
	data, err := m.cache.Get(ctx, m.kind.Name, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			m.log.Warn().Err(err).Str("key", key).Msg("cache read failed, using store")
		}
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return out, false
	}
	return out, true
}

func (m *ResourceManager[T]) Get(ctx context.Context, id uint64) (hypermedia.EntityModel[T], error) {
	rec, err := m.store.FindByID(ctx, id)
	if err != nil {
		return hypermedia.EntityModel[T]{}, m.translate(err)
	}
	return m.links.ToModel(*rec), nil
}

// Create ignores any identity carried by candidate; the store assigns one.
func (m *ResourceManager[T]) Create(ctx context.Context, candidate *T) (hypermedia.EntityModel[T], error) {
	if err := m.kind.Validate(candidate); err != nil {
		return hypermedia.EntityModel[T]{}, m.translate(err)
	}
	m.kind.SetID(candidate, 0)

	err := m.withEviction(ctx, func() error {
		return m.store.Save(ctx, candidate)
	})
	if err != nil {
		return hypermedia.EntityModel[T]{}, err
	}
	return m.links.ToModel(*candidate), nil
}

// Update overwrites every mutable field of the stored record with the
// values of replacement; fields left out of replacement end up cleared.
func (m *ResourceManager[T]) Update(ctx context.Context, id uint64, replacement *T) (hypermedia.EntityModel[T], error) {
	existing, err := m.store.FindByID(ctx, id)
	if err != nil {
		return hypermedia.EntityModel[T]{}, m.translate(err)
	}
	if err := m.kind.Validate(replacement); err != nil {
		return hypermedia.EntityModel[T]{}, m.translate(err)
	}
	m.kind.Overwrite(existing, replacement)

	err = m.withEviction(ctx, func() error {
		return m.store.Save(ctx, existing)
	})
	if err != nil {
		return hypermedia.EntityModel[T]{}, err
	}
	return m.links.ToModel(*existing), nil
}

// Delete does not look at records referencing id.
func (m *ResourceManager[T]) Delete(ctx context.Context, id uint64) error {
	return m.withEviction(ctx, func() error {
		return m.store.DeleteByID(ctx, id)
	})
}

// Table renders every record of the kind for export.
func (m *ResourceManager[T]) Table(ctx context.Context) (model.Table, error) {
	table := model.Table{
		Kind:        m.kind.Name,
		Title:       m.kind.Plural,
		Headers:     m.kind.Headers(),
		GeneratedAt: time.Now().UTC(),
	}
	for page := 0; ; page++ {
		records, total, err := m.store.FindPage(ctx, page, exportPageSize)
		if err != nil {
			return model.Table{}, m.translate(err)
		}
		for i := range records {
			table.Rows = append(table.Rows, m.kind.Row(&records[i]))
		}
		if len(records) < exportPageSize || int64(len(table.Rows)) >= total {
			return table, nil
		}
	}
}

// withEviction runs op and, when it succeeds, drops every cached listing
// of the kind. A failed eviction is logged and does not fail the write.
func (m *ResourceManager[T]) withEviction(ctx context.Context, op func() error) error {
	if err := op(); err != nil {
		return m.translate(err)
	}
	if err := m.cache.EvictAll(ctx, m.kind.Name); err != nil {
		m.log.Error().Err(err).Msg("cache eviction failed")
	}
	return nil
}

func (m *ResourceManager[T]) translate(err error) error {
	var invalid *resource.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, m.kind.Singular)
	case errors.As(err, &invalid):
		return fmt.Errorf("%w: %s", ErrInvalidInput, invalid.Error())
	case errors.Is(err, repository.ErrReferenceNotFound):
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
