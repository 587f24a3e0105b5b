// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles access-token rows: transactional
// replacement, lookup by value, and consumption.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

// TokenRepository handles access-token database operations.
type TokenRepository struct{}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{}
}

// Replace deletes any existing token for (candidate, purpose) and inserts the
// new one in a single transaction, so there is never a window in which the
// candidate holds zero valid tokens for the purpose.
func (r *TokenRepository) Replace(ctx context.Context, candidateID int, purpose, token string, expiresAt time.Time) (*models.AccessToken, error) {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM access_tokens WHERE candidate_id = $1 AND purpose = $2`,
		candidateID, purpose,
	)
	if err != nil {
		return nil, err
	}

	var t models.AccessToken
	err = tx.QueryRow(ctx, `
		INSERT INTO access_tokens (candidate_id, purpose, token, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, candidate_id, purpose, token, is_used, expires_at, created_at`,
		candidateID, purpose, token, expiresAt,
	).Scan(&t.ID, &t.CandidateID, &t.Purpose, &t.Token, &t.IsUsed, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &t, nil
}

// FindByValue retrieves a token by its opaque value.
func (r *TokenRepository) FindByValue(ctx context.Context, token string) (*models.AccessToken, error) {
	query := `
		SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at
		FROM access_tokens WHERE token = $1
	`

	var t models.AccessToken
	err := database.DB.QueryRow(ctx, query, token).Scan(
		&t.ID, &t.CandidateID, &t.Purpose, &t.Token, &t.IsUsed, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// MarkUsed flags a token as consumed. The flag is never cleared; re-enabling
// a candidate means issuing a fresh token instead.
func (r *TokenRepository) MarkUsed(ctx context.Context, id int) error {
	tag, err := database.DB.Exec(ctx, `UPDATE access_tokens SET is_used = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
