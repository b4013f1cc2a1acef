package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minshik/forensiq/internal/contracts"
)

// FraudSnapshot is one persisted fraud-score computation
type FraudSnapshot struct {
	Ticker            string              `json:"ticker"`
	Score             float64             `json:"score"`
	Band              contracts.FraudBand `json:"band"`
	MScore            *float64            `json:"m_score"`
	ThresholdsVersion string              `json:"thresholds_version"`
	ComputedAt        time.Time           `json:"computed_at"`
}

// FraudHistoryRepository persists fraud-score snapshots so score drift is
// auditable over time
type FraudHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewFraudHistoryRepository creates a new fraud history repository
func NewFraudHistoryRepository(pool *pgxpool.Pool) *FraudHistoryRepository {
	return &FraudHistoryRepository{pool: pool}
}

// EnsureSchema creates the history table when it does not exist
func (r *FraudHistoryRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS fraud_score_history (
			id                 BIGSERIAL PRIMARY KEY,
			ticker             TEXT NOT NULL,
			score              DOUBLE PRECISION NOT NULL,
			band               TEXT NOT NULL,
			m_score            DOUBLE PRECISION,
			thresholds_version TEXT NOT NULL,
			computed_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_fraud_history_ticker_time
			ON fraud_score_history (ticker, computed_at DESC)
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure fraud history schema: %w", err)
	}
	return nil
}

// Save persists one snapshot
func (r *FraudHistoryRepository) Save(ctx context.Context, snap *FraudSnapshot) error {
	query := `
		INSERT INTO fraud_score_history (ticker, score, band, m_score, thresholds_version, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		snap.Ticker, snap.Score, snap.Band, snap.MScore, snap.ThresholdsVersion, snap.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save fraud snapshot for %s: %w", snap.Ticker, err)
	}
	return nil
}

// History returns the most recent snapshots for a ticker, newest first
func (r *FraudHistoryRepository) History(ctx context.Context, ticker string, limit int) ([]FraudSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	query := `
		SELECT ticker, score, band, m_score, thresholds_version, computed_at
		FROM fraud_score_history
		WHERE ticker = $1
		ORDER BY computed_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud history for %s: %w", ticker, err)
	}
	defer rows.Close()

	var snapshots []FraudSnapshot
	for rows.Next() {
		var s FraudSnapshot
		if err := rows.Scan(&s.Ticker, &s.Score, &s.Band, &s.MScore, &s.ThresholdsVersion, &s.ComputedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// Latest returns the most recent snapshot for a ticker, or nil when none exists
func (r *FraudHistoryRepository) Latest(ctx context.Context, ticker string) (*FraudSnapshot, error) {
	snapshots, err := r.History(ctx, ticker, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}
