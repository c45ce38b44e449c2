// Package cache wraps a campaign store with a short-lived in-memory copy of
// its documents. Selection itself is never cached; only the documents the
// selection reads are.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

const (
	keyAdvertisers = "advertisers"
	keyCampaigns   = "campaigns"
	keySettings    = "settings"
)

// Store implements port.CampaignStore by reading through to next and
// keeping the encoded documents in bigcache for ttl. Every write through
// Store drops the affected entry and bumps its generation; a load that
// started before the bump is returned but not cached.
type Store struct {
	next   port.CampaignStore
	cache  *bigcache.BigCache
	logger *slog.Logger

	mu  sync.Mutex
	gen map[string]uint64
}

// New creates the cache. Close must be called to stop its cleanup
// goroutine.
func New(ctx context.Context, next port.CampaignStore, ttl time.Duration, logger *slog.Logger) (*Store, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Shards = 16
	cfg.MaxEntriesInWindow = 64
	cfg.MaxEntrySize = 64 * 1024
	cfg.HardMaxCacheSize = 32 // MB
	cfg.CleanWindow = ttl
	cfg.Verbose = false

	c, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{next: next, cache: c, logger: logger, gen: make(map[string]uint64)}, nil
}

// Close releases the cache.
func (s *Store) Close() error {
	return s.cache.Close()
}

func (s *Store) Advertisers(ctx context.Context) ([]domain.Advertiser, error) {
	return readThrough(ctx, s, keyAdvertisers, s.next.Advertisers)
}

func (s *Store) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	return readThrough(ctx, s, keyCampaigns, s.next.Campaigns)
}

func (s *Store) Settings(ctx context.Context) (domain.Settings, error) {
	return readThrough(ctx, s, keySettings, s.next.Settings)
}

func (s *Store) SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	defer s.invalidate(keyAdvertisers)
	return s.next.SaveAdvertisers(ctx, advertisers)
}

func (s *Store) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	defer s.invalidate(keyCampaigns)
	return s.next.SaveCampaigns(ctx, campaigns)
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	defer s.invalidate(keySettings)
	return s.next.SaveSettings(ctx, settings)
}

func (s *Store) RecordClick(ctx context.Context, click domain.Click) (domain.Campaign, error) {
	defer s.invalidate(keyCampaigns)
	return s.next.RecordClick(ctx, click)
}

func (s *Store) invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[key]++
	if err := s.cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		s.logger.Warn("cache invalidate", slog.String("key", key), slog.Any("error", err))
	}
}

func readThrough[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if raw, err := s.cache.Get(key); err == nil {
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		s.logger.Warn("cache decode, reloading", slog.String("key", key), slog.Any("error", err))
	}

	s.mu.Lock()
	gen := s.gen[key]
	s.mu.Unlock()

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[key] != gen {
		return v, nil
	}
	if err = s.cache.Set(key, raw); err != nil {
		s.logger.Warn("cache set", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}
