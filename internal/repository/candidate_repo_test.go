package repository_test

import (
	"context"
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

// TestCandidateRepository_GetOrCreateByEmail verifies the upsert returns the
// same row whether the candidate is freshly inserted or already invited.
func TestCandidateRepository_GetOrCreateByEmail(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	testTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "email", "name", "phone", "status", "account_id", "created_at"}).
		AddRow(7, "jane@example.com", "", "", "INVITED", nil, testTime)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO candidates (email, status)`)).
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	repo := repository.NewCandidateRepository()
	candidate, err := repo.GetOrCreateByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, 7, candidate.ID)
	assert.Equal(t, "jane@example.com", candidate.Email)
	assert.Equal(t, models.CandidateInvited, candidate.Status)
	assert.Nil(t, candidate.AccountID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCandidateRepository_CompleteProfile verifies the status transition and
// the not-found path when no row matches.
func TestCandidateRepository_CompleteProfile(t *testing.T) {
	tests := []struct {
		name          string
		candidateID   int
		rowsAffected  int64
		expectedError error
	}{
		{
			name:          "successful completion",
			candidateID:   7,
			rowsAffected:  1,
			expectedError: nil,
		},
		{
			name:          "unknown candidate",
			candidateID:   99,
			rowsAffected:  0,
			expectedError: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectExec("UPDATE candidates").
				WithArgs(tt.candidateID, "Jane Doe", "+15550001111").
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))

			repo := repository.NewCandidateRepository()
			err := repo.CompleteProfile(context.Background(), tt.candidateID, "Jane Doe", "+15550001111")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestCandidateRepository_Overview verifies the dashboard aggregation and the
// readiness derivation: ready only when every uploaded document is reviewed
// and at least one is verified.
func TestCandidateRepository_Overview(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	testTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	accountID := 12

	rows := pgxmock.NewRows([]string{
		"id", "email", "name", "phone", "status", "account_id", "created_at",
		"total_docs", "pending_docs", "verified_docs", "username",
	}).
		AddRow(7, "jane@example.com", "Jane Doe", "+15550001111", "PROFILE_COMPLETED", &accountID, testTime, 3, 0, 3, "janedoe").
		AddRow(8, "bob@example.com", "Bob Ray", "+15550002222", "PROFILE_COMPLETED", nil, testTime, 2, 1, 1, "").
		AddRow(9, "ann@example.com", "Ann Lee", "+15550003333", "PROFILE_COMPLETED", nil, testTime, 2, 0, 0, "")

	mock.ExpectQuery("SELECT c.id, c.email, c.name, c.phone, c.status, c.account_id, c.created_at").
		WillReturnRows(rows)

	repo := repository.NewCandidateRepository()
	overviews, err := repo.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, overviews, 3)

	assert.True(t, overviews[0].Ready, "all documents verified should be ready")
	assert.Equal(t, "janedoe", overviews[0].Username)

	assert.False(t, overviews[1].Ready, "pending document should block readiness")
	assert.False(t, overviews[2].Ready, "all reupload, none verified should block readiness")

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCandidateRepository_FindByID verifies lookup by primary key.
func TestCandidateRepository_FindByID(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	testTime := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "email", "name", "phone", "status", "account_id", "created_at"}).
		AddRow(7, "jane@example.com", "Jane Doe", "+15550001111", "PROFILE_COMPLETED", nil, testTime)

	mock.ExpectQuery("SELECT id, email, name, phone, status, account_id, created_at FROM candidates").
		WithArgs(7).
		WillReturnRows(rows)

	repo := repository.NewCandidateRepository()
	candidate, err := repo.FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", candidate.Name)
	assert.Equal(t, models.CandidateProfileCompleted, candidate.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}
