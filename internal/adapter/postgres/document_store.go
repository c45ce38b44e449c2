package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

const (
	docAdvertisers = "advertisers"
	docCampaigns   = "campaigns"
	docSettings    = "settings"
)

// DocumentStore implements port.CampaignStore using pgxpool. Each store
// document is one JSONB row in store_documents; clicks are kept as rows.
type DocumentStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewDocumentStore returns a new store instance.
func NewDocumentStore(pool *pgxpool.Pool, logger *slog.Logger) *DocumentStore {
	return &DocumentStore{pool: pool, logger: logger}
}

// Advertisers returns the advertiser document.
func (s *DocumentStore) Advertisers(ctx context.Context) ([]domain.Advertiser, error) {
	out := []domain.Advertiser{}
	if err := s.load(ctx, s.pool, docAdvertisers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Campaigns returns the campaign document.
func (s *DocumentStore) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	out := []domain.Campaign{}
	if err := s.load(ctx, s.pool, docCampaigns, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Settings returns the settings document.
func (s *DocumentStore) Settings(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	if err := s.load(ctx, s.pool, docSettings, &out); err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}

// SaveAdvertisers replaces the advertiser document.
func (s *DocumentStore) SaveAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	if advertisers == nil {
		advertisers = []domain.Advertiser{}
	}
	return s.store(ctx, s.pool, docAdvertisers, advertisers)
}

// SaveCampaigns replaces the campaign document.
func (s *DocumentStore) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return s.store(ctx, s.pool, docCampaigns, campaigns)
}

// SaveSettings replaces the settings document.
func (s *DocumentStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.store(ctx, s.pool, docSettings, settings)
}

// RecordClick inserts the click event and bumps the campaign counter in
// one transaction, holding a row lock on the campaign document.
func (s *DocumentStore) RecordClick(ctx context.Context, click domain.Click) (domain.Campaign, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var raw []byte
	err = tx.QueryRow(ctx, `SELECT body FROM store_documents WHERE name = $1 FOR UPDATE`, docCampaigns).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return domain.Campaign{}, err
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	var campaigns []domain.Campaign
	if err = json.Unmarshal(raw, &campaigns); err != nil {
		err = fmt.Errorf("%s: %w: %v", docCampaigns, port.ErrMalformedDocument, err)
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
		err = port.ErrCampaignNotFound
		return domain.Campaign{}, err
	}
	campaigns[idx].Clicks++
	click.Link = campaigns[idx].Link

	if err = s.store(ctx, tx, docCampaigns, campaigns); err != nil {
		return domain.Campaign{}, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO clicks (id, campaign_id, placement, link, created_at) VALUES ($1,$2,$3,$4,$5)`,
		click.ID, click.CampaignID, string(click.Placement), click.Link, click.CreatedAt)
	if err != nil {
		return domain.Campaign{}, err
	}
	return campaigns[idx], nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (s *DocumentStore) load(ctx context.Context, q querier, name string, v any) error {
	var raw []byte
	err := q.QueryRow(ctx, `SELECT body FROM store_documents WHERE name = $1`, name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, v); err != nil {
		s.logger.Error("malformed store document", slog.String("document", name), slog.Any("error", err))
		return fmt.Errorf("%s: %w: %v", name, port.ErrMalformedDocument, err)
	}
	return nil
}

func (s *DocumentStore) store(ctx context.Context, q querier, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `INSERT INTO store_documents (name, body, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`, name, body)
	return err
}
