// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles employee account rows, including the
// transactional issue-or-reset used by credential issuance.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const accountColumns = `id, username, email, first_name, last_name, role, password_hash, created_at`

// AccountRepository handles employee account database operations.
type AccountRepository struct{}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// FindByUsername retrieves an account by its unique username.
// Used during login; the returned record includes the password hash.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return scanAccount(database.DB.QueryRow(ctx, query, username))
}

// FindByEmail retrieves an account by its unique email address.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(database.DB.QueryRow(ctx, query, email))
}

// FindByID retrieves an account by primary key.
func (r *AccountRepository) FindByID(ctx context.Context, id int) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(database.DB.QueryRow(ctx, query, id))
}

// IssueOrReset creates or refreshes the employee account for a candidate and
// stores the candidate -> account link, all in one transaction. If an account
// with the candidate's email exists its password hash is replaced and its
// role forced to EMPLOYEE; otherwise a fresh account is inserted. Either way
// candidates.account_id is set so the linkage is explicit rather than
// inferred from email equality later.
func (r *AccountRepository) IssueOrReset(ctx context.Context, candidateID int, account *models.Account) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existingID int
	err = tx.QueryRow(ctx, `SELECT id FROM accounts WHERE email = $1`, account.Email).Scan(&existingID)
	switch {
	case err == nil:
		_, err = tx.Exec(ctx,
			`UPDATE accounts SET password_hash = $2, role = 'EMPLOYEE' WHERE id = $1`,
			existingID, account.PasswordHash,
		)
		if err != nil {
			return err
		}
		account.ID = existingID
		account.Role = models.RoleEmployee
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
			INSERT INTO accounts (username, email, first_name, last_name, role, password_hash)
			VALUES ($1, $2, $3, $4, 'EMPLOYEE', $5)
			RETURNING id, created_at`,
			account.Username, account.Email, account.FirstName, account.LastName, account.PasswordHash,
		).Scan(&account.ID, &account.CreatedAt)
		if err != nil {
			return err
		}
		account.Role = models.RoleEmployee
	default:
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE candidates SET account_id = $2 WHERE id = $1`,
		candidateID, account.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Create inserts a new account. Password must be pre-hashed with bcrypt.
// Used for seeding HR/admin accounts, not by the issuance flow.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (username, email, first_name, last_name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return database.DB.QueryRow(ctx, query,
		account.Username, account.Email, account.FirstName, account.LastName,
		account.Role, account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt)
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.FirstName, &a.LastName, &a.Role, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
