package repository_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// TestAccountRepository_FindByUsername verifies lookup and the not-found path.
func TestAccountRepository_FindByUsername(t *testing.T) {
	testTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		username      string
		mockSetup     func(pgxmock.PgxPoolIface)
		expectedError bool
	}{
		{
			name:     "existing account",
			username: "janedoe",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "username", "email", "first_name", "last_name", "role", "password_hash", "created_at"}).
					AddRow(12, "janedoe", "jane@example.com", "Jane", "Doe", "EMPLOYEE", "$2a$12$hash", testTime)

				mock.ExpectQuery("SELECT id, username, email, first_name, last_name, role, password_hash, created_at").
					WithArgs("janedoe").
					WillReturnRows(rows)
			},
			expectedError: false,
		},
		{
			name:     "unknown username",
			username: "ghost",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, username, email, first_name, last_name, role, password_hash, created_at").
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := newMockDB(t)
			defer cleanup()

			tt.mockSetup(mock)
			repo := repository.NewAccountRepository()

			account, err := repo.FindByUsername(context.Background(), tt.username)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, account.Username)
				assert.Equal(t, models.RoleEmployee, account.Role)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestAccountRepository_IssueOrReset_NewAccount verifies a fresh account is
// inserted and the candidate linked when no account holds the email yet. The
// no-rows signal arrives wrapped, as callers adding context would produce it.
func TestAccountRepository_IssueOrReset_NewAccount(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	testTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM accounts WHERE email = $1`)).
		WithArgs("jane@example.com").
		WillReturnError(fmt.Errorf("scanning account id: %w", pgx.ErrNoRows))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (username, email, first_name, last_name, role, password_hash)`)).
		WithArgs("janedoe", "jane@example.com", "Jane", "Doe", "$2a$12$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(12, testTime))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE candidates SET account_id = $2 WHERE id = $1`)).
		WithArgs(7, 12).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := repository.NewAccountRepository()
	account := &models.Account{
		Username:     "janedoe",
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "$2a$12$hash",
	}

	err := repo.IssueOrReset(context.Background(), 7, account)

	require.NoError(t, err)
	assert.Equal(t, 12, account.ID)
	assert.Equal(t, models.RoleEmployee, account.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAccountRepository_IssueOrReset_ExistingAccount verifies a reissue keeps
// the existing account row, replacing only the hash and forcing EMPLOYEE.
func TestAccountRepository_IssueOrReset_ExistingAccount(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM accounts WHERE email = $1`)).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET password_hash = $2, role = 'EMPLOYEE' WHERE id = $1`)).
		WithArgs(12, "$2a$12$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE candidates SET account_id = $2 WHERE id = $1`)).
		WithArgs(7, 12).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := repository.NewAccountRepository()
	account := &models.Account{
		Username:     "janedoe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$newhash",
	}

	err := repo.IssueOrReset(context.Background(), 7, account)

	require.NoError(t, err)
	assert.Equal(t, 12, account.ID)
	assert.Equal(t, models.RoleEmployee, account.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAccountRepository_IssueOrReset_LinkFailureRollsBack verifies that a
// failure writing the candidate link aborts the whole issuance.
func TestAccountRepository_IssueOrReset_LinkFailureRollsBack(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM accounts WHERE email = $1`)).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET password_hash = $2, role = 'EMPLOYEE' WHERE id = $1`)).
		WithArgs(12, "$2a$12$hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE candidates SET account_id = $2 WHERE id = $1`)).
		WithArgs(7, 12).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := repository.NewAccountRepository()
	account := &models.Account{Email: "jane@example.com", PasswordHash: "$2a$12$hash"}

	err := repo.IssueOrReset(context.Background(), 7, account)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
