package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorlens/influencer-studio/internal/insights"
)

// Analysis is one completed research run: the profile that triggered it and
// the bundle it produced.
type Analysis struct {
	ID        uuid.UUID
	Niche     string
	Audience  string
	Platform  string
	Goal      string
	Bundle    insights.Bundle
	CreatedAt time.Time
}

// AnalysisRepository handles analysis database operations.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a completed analysis. A nil ID gets a fresh one.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *Analysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}

	bundle, err := json.Marshal(analysis.Bundle)
	if err != nil {
		return fmt.Errorf("marshaling bundle: %w", err)
	}

	query := `
		INSERT INTO analyses (id, niche, audience, platform, goal, bundle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err = r.pool.QueryRow(ctx, query,
		analysis.ID,
		analysis.Niche,
		analysis.Audience,
		analysis.Platform,
		analysis.Goal,
		bundle,
	).Scan(&analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

// Get retrieves an analysis by ID.
func (r *AnalysisRepository) Get(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	query := `
		SELECT id, niche, audience, platform, goal, bundle, created_at
		FROM analyses
		WHERE id = $1
	`
	analysis, err := scanAnalysis(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying analysis: %w", err)
	}
	return analysis, nil
}

// Recent retrieves the most recent analyses, newest first.
func (r *AnalysisRepository) Recent(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, niche, audience, platform, goal, bundle, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		analyses = append(analyses, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return analyses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*Analysis, error) {
	var analysis Analysis
	var bundle []byte

	err := row.Scan(
		&analysis.ID,
		&analysis.Niche,
		&analysis.Audience,
		&analysis.Platform,
		&analysis.Goal,
		&bundle,
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(bundle, &analysis.Bundle); err != nil {
		return nil, fmt.Errorf("unmarshaling bundle: %w", err)
	}
	return &analysis, nil
}
