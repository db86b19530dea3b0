package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/go-json-experiment/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/paletteapp/palette-server/internal/content"
)

const (
	searchPrefix = "search:"

	// High volume, results go stale quickly.
	searchCacheDuration = 24 * time.Hour
)

// CachedSearch wraps provider search results with cache info.
type CachedSearch struct {
	Items     []content.Item `json:"items"`
	FetchedAt time.Time      `json:"fetched_at"`
	Provider  string         `json:"provider"`
	Query     string         `json:"query"`
	Limit     int            `json:"limit"`
}

// searchCacheKey generates a cache key for search results.
// Uses hash to handle long query strings. The requested limit is part of the
// key so a broader follow-up query is never served a previously truncated
// result set.
func searchCacheKey(provider, query string, limit int) []byte {
	hash := sha256.Sum256([]byte(query))
	hashStr := hex.EncodeToString(hash[:8]) // First 8 bytes = 16 hex chars
	return fmt.Appendf(nil, "%s%s:%s:%d", searchPrefix, provider, hashStr, limit)
}

// GetCachedSearch retrieves cached search results.
// Returns nil, nil if not found or expired.
func (s *Store) GetCachedSearch(ctx context.Context, provider, query string, limit int) (*CachedSearch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := searchCacheKey(provider, query, limit)

	var cached CachedSearch
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached search: %w", err)
	}

	// Check if expired
	if time.Since(cached.FetchedAt) > searchCacheDuration {
		return nil, nil // Treat as cache miss
	}

	return &cached, nil
}

// SetCachedSearch stores search results in cache.
func (s *Store) SetCachedSearch(ctx context.Context, provider, query string, limit int, items []content.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cached := CachedSearch{
		Items:     items,
		FetchedAt: time.Now(),
		Provider:  provider,
		Query:     query,
		Limit:     limit,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal cached search: %w", err)
	}

	key := searchCacheKey(provider, query, limit)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// DeleteCachedSearch removes cached search results.
func (s *Store) DeleteCachedSearch(ctx context.Context, provider, query string, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := searchCacheKey(provider, query, limit)

	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Idempotent
		}
		return err
	})
}
