package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps one hash per kind plus a generation counter next to it.
// EvictAll deletes the hash and bumps the counter in one transaction.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) hashKey(kind string) string {
	return fmt.Sprintf("%s:listing:%s", r.prefix, kind)
}

func (r *Redis) genKey(kind string) string {
	return fmt.Sprintf("%s:listing-gen:%s", r.prefix, kind)
}

func (r *Redis) Get(ctx context.Context, kind, key string) ([]byte, error) {
	data, err := r.client.HGet(ctx, r.hashKey(kind), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			CacheMisses.WithLabelValues(kind).Inc()
			return nil, ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis hget: %w", err)
	}
	CacheHits.WithLabelValues(kind).Inc()
	return data, nil
}

func (r *Redis) Generation(ctx context.Context, kind string) (uint64, error) {
	gen, err := readGeneration(ctx, r.client, r.genKey(kind))
	if err != nil {
		CacheErrors.WithLabelValues("generation").Inc()
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

// Put watches the generation key, so an EvictAll committed between the
// check and the write aborts the transaction.
func (r *Redis) Put(ctx context.Context, kind, key string, gen uint64, data []byte) error {
	genKey := r.genKey(kind)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != gen {
			return ErrStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.hashKey(kind), key, data)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleGeneration), errors.Is(err, redis.TxFailedErr):
		CacheStalePuts.WithLabelValues(kind).Inc()
		return ErrStaleGeneration
	default:
		CacheErrors.WithLabelValues("put").Inc()
		return fmt.Errorf("redis hset: %w", err)
	}
}

func (r *Redis) EvictAll(ctx context.Context, kind string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.hashKey(kind))
		pipe.Incr(ctx, r.genKey(kind))
		return nil
	})
	if err != nil {
		CacheErrors.WithLabelValues("evict").Inc()
		return fmt.Errorf("redis evict: %w", err)
	}
	CacheEvictions.WithLabelValues(kind).Inc()
	return nil
}

func readGeneration(ctx context.Context, c redis.Cmdable, key string) (uint64, error) {
	gen, err := c.Get(ctx, key).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
