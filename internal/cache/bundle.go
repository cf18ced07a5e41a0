// Package cache implements persistent read-through cache for fetched github data.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
}

// Bundles is a read-through cache of user repositories bundles.
//
// Bundles are persisted in the store as json and never expire. An entry stays valid until it's removed from the store,
// by Invalidate or by any other store client.
// The store is read on every call. Decoded bundles are kept in memory along with their raw payload,
// so an unchanged payload isn't decoded again.
// Concurrent misses of the same key share a single fetch.
type Bundles struct {
	store       KVStore
	memo        *lru.Cache
	group       singleflight.Group
	loadTimeout time.Duration
	l           logrus.FieldLogger
}

// memoEntry is a decoded bundle with the payload it was decoded from.
type memoEntry struct {
	data   []byte
	bundle []app.UserRepositories
}

var _ app.BundleCache = &Bundles{}

// NewBundles creates new Bundles instance.
// memoSize is the maximum number of decoded bundles kept in memory.
// loadTimeout limits a shared load, which outlives callers context. Zero means no limit.
func NewBundles(store KVStore, memoSize int, loadTimeout time.Duration, l logrus.FieldLogger) (*Bundles, error) {
	if memoSize <= 0 {
		return nil, errors.New("memo size must be greater than 0")
	}
	memo, err := lru.New(memoSize)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for bundles: %w", err)
	}

	return &Bundles{
		store:       store,
		memo:        memo,
		loadTimeout: loadTimeout,
		l:           l,
	}, nil
}

// GetOrFetch returns bundle stored under key.
// On miss, calls fetch and stores its result.
// Every call gets its own copy of the bundle slice.
//
// Concurrent calls for the same key share one load. The load isn't cancelled when a caller's ctx is done,
// the caller just stops waiting for it.
//
// Returns app.CacheCorruptError if stored data can't be decoded.
// Returns app.CachePersistError along with fetched data if it couldn't be stored.
func (b *Bundles) GetOrFetch(ctx context.Context, key string, fetch app.BundleFetcher) ([]app.UserRepositories, error) {
	ch := b.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := b.loadContext(ctx)
		defer cancel()

		return b.load(loadCtx, key, fetch)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			b.l.Debugf("shared load of %s", key)
		}
		bundle, _ := res.Val.([]app.UserRepositories)

		return cloneBundle(bundle), res.Err
	}
}

func (b *Bundles) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if b.loadTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.loadTimeout)
}

// load reads bundle from the store, falling back to fetch.
func (b *Bundles) load(ctx context.Context, key string, fetch app.BundleFetcher) ([]app.UserRepositories, error) {
	data, err := b.store.ReadKey([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("reading cache entry %s: %w", key, err)
	}
	if data != nil {
		if v, ok := b.memo.Get(key); ok {
			if e := v.(memoEntry); bytes.Equal(e.data, data) {
				return e.bundle, nil
			}
		}

		bundle, err := unserializeBundle(data)
		if err != nil {
			b.memo.Remove(key)
			return nil, &app.CacheCorruptError{Key: key, Err: err}
		}
		b.l.Debugf("cache hit for %s", key)
		b.memo.Add(key, memoEntry{data: data, bundle: bundle})

		return bundle, nil
	}

	b.memo.Remove(key)
	b.l.Infof("cache miss for %s, fetching", key)
	bundle, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err = serializeBundle(bundle)
	if err != nil {
		return bundle, &app.CachePersistError{Key: key, Err: err}
	}
	if err := b.store.UpdateKey([]byte(key), data); err != nil {
		return bundle, &app.CachePersistError{Key: key, Err: err}
	}
	b.memo.Add(key, memoEntry{data: data, bundle: bundle})

	return bundle, nil
}

// Invalidate removes bundle stored under key.
func (b *Bundles) Invalidate(key string) error {
	b.memo.Remove(key)
	if err := b.store.DeleteKey([]byte(key)); err != nil {
		return fmt.Errorf("deleting cache entry %s: %w", key, err)
	}

	return nil
}

func cloneBundle(bundle []app.UserRepositories) []app.UserRepositories {
	if bundle == nil {
		return nil
	}
	c := make([]app.UserRepositories, len(bundle))
	copy(c, bundle)

	return c
}

func serializeBundle(bundle []app.UserRepositories) ([]byte, error) {
	if bundle == nil {
		bundle = []app.UserRepositories{}
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func unserializeBundle(data []byte) ([]app.UserRepositories, error) {
	var bundle []app.UserRepositories
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}
	if bundle == nil {
		return nil, errors.New("expected json array")
	}

	return bundle, nil
}
