// Package jsonstore keeps the campaign store as JSON documents in a
// directory: advertisers.json, campaigns.json and settings.json, plus an
// append-only clicks.jsonl event log.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

const (
	advertisersFile = "advertisers.json"
	campaignsFile   = "campaigns.json"
	settingsFile    = "settings.json"
	clicksFile      = "clicks.jsonl"
)

// Store implements port.CampaignStore on top of a data directory.
// Documents are rewritten whole and atomically (temp file + rename).
type Store struct {
	dir    string
	logger *slog.Logger
	// mu serialises writers inside this process. Other processes editing
	// the files remain last-write-wins.
	mu sync.Mutex
}

// New returns a store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Advertisers returns the advertiser document, empty when missing.
func (s *Store) Advertisers(ctx context.Context) ([]domain.Advertiser, error) {
	var out []domain.Advertiser
	if err := s.read(advertisersFile, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Advertiser{}
	}
	return out, nil
}

// Campaigns returns the campaign document, empty when missing.
func (s *Store) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := s.read(campaignsFile, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Campaign{}
	}
	return out, nil
}

// Settings returns the settings document, zero when missing.
func (s *Store) Settings(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	if err := s.read(settingsFile, &out); err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}

func (s *Store) SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(advertisersFile, nonNil(advertisers))
}

func (s *Store) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(campaignsFile, nonNil(campaigns))
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(settingsFile, settings)
}

// RecordClick bumps the campaign counter and appends the event to the
// click log. A failure to append is logged and does not fail the click.
func (s *Store) RecordClick(ctx context.Context, click domain.Click) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var campaigns []domain.Campaign
	if err := s.read(campaignsFile, &campaigns); err != nil {
		return domain.Campaign{}, err
	}
	idx := -1
	for i := range campaigns {
		if campaigns[i].ID == click.CampaignID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Campaign{}, port.ErrCampaignNotFound
	}
	campaigns[idx].Clicks++
	click.Link = campaigns[idx].Link
	if err := s.write(campaignsFile, campaigns); err != nil {
		return domain.Campaign{}, err
	}

	if err := s.appendClick(click); err != nil {
		s.logger.Warn("append click event", slog.String("campaign_id", click.CampaignID), slog.Any("error", err))
	}
	return campaigns[idx], nil
}

type clickLine struct {
	ID         string           `json:"id"`
	CampaignID string           `json:"campaignId"`
	Placement  domain.Placement `json:"placement"`
	Link       string           `json:"link"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (s *Store) appendClick(click domain.Click) error {
	line, err := json.Marshal(clickLine(click))
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(s.dir, clicksFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err = f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// read decodes a document into v. Missing and empty files leave v
// untouched. A document that does not decode is reported as
// port.ErrMalformedDocument; v may then be partly filled and must be
// discarded.
func (s *Store) read(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, v); err != nil {
		s.logger.Error("malformed store document", slog.String("file", path), slog.Any("error", err))
		return fmt.Errorf("%s: %w: %v", name, port.ErrMalformedDocument, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
