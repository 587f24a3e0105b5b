// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles candidate rows: invitation
// get-or-create, profile completion, and the HR dashboard overview query.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const candidateColumns = `id, email, name, phone, status, account_id, created_at`

// CandidateRepository handles candidate-related database operations.
type CandidateRepository struct{}

// NewCandidateRepository creates a new instance of CandidateRepository.
func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{}
}

// GetOrCreateByEmail returns the candidate with the given email, inserting a
// fresh INVITED row if none exists. The ON CONFLICT clause makes concurrent
// invitations for the same email converge on a single row.
func (r *CandidateRepository) GetOrCreateByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	query := `
		INSERT INTO candidates (email, status)
		VALUES ($1, 'INVITED')
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING ` + candidateColumns

	return scanCandidate(database.DB.QueryRow(ctx, query, email))
}

// FindByID retrieves a candidate by primary key.
func (r *CandidateRepository) FindByID(ctx context.Context, id int) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(database.DB.QueryRow(ctx, query, id))
}

// FindByEmail retrieves a candidate by their unique email address.
func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return scanCandidate(database.DB.QueryRow(ctx, query, email))
}

// CompleteProfile records the profile form submission: name, phone and the
// one-time INVITED -> PROFILE_COMPLETED transition.
func (r *CandidateRepository) CompleteProfile(ctx context.Context, id int, name, phone string) error {
	query := `
		UPDATE candidates
		SET name = $2, phone = $3, status = 'PROFILE_COMPLETED'
		WHERE id = $1
	`

	tag, err := database.DB.Exec(ctx, query, id, name, phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Overview returns the HR dashboard rows: each candidate that has uploaded
// at least one document, with live per-status counts and the linked account
// username once credentials were issued. Counts are computed fresh on every
// call; readiness is derived by the caller, never stored.
func (r *CandidateRepository) Overview(ctx context.Context) ([]models.CandidateOverview, error) {
	query := `
		SELECT c.id, c.email, c.name, c.phone, c.status, c.account_id, c.created_at,
			COUNT(d.id) AS total_docs,
			COUNT(d.id) FILTER (WHERE d.status = 'PENDING') AS pending_docs,
			COUNT(d.id) FILTER (WHERE d.status = 'VERIFIED') AS verified_docs,
			COALESCE(a.username, '') AS username
		FROM candidates c
		JOIN documents d ON d.candidate_id = c.id
		LEFT JOIN accounts a ON a.id = c.account_id
		GROUP BY c.id, c.email, c.name, c.phone, c.status, c.account_id, c.created_at, a.username
		ORDER BY c.created_at DESC
	`

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []models.CandidateOverview
	for rows.Next() {
		var o models.CandidateOverview
		err := rows.Scan(
			&o.ID, &o.Email, &o.Name, &o.Phone, &o.Status, &o.AccountID, &o.CreatedAt,
			&o.TotalDocs, &o.PendingDocs, &o.VerifiedDocs, &o.Username,
		)
		if err != nil {
			return nil, err
		}
		o.Ready = o.TotalDocs > 0 && o.PendingDocs == 0 && o.VerifiedDocs > 0
		overviews = append(overviews, o)
	}

	return overviews, rows.Err()
}

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.Status, &c.AccountID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
