// Token lifecycle tests. These live inside the services package so the
// clock hook can be pinned to a fixed time.
package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

var fixedNow = time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

// validTokenValue is a well-formed token value for lookups; the stored
// column is UUID-typed.
const validTokenValue = "1b4e28ba-2fa1-4d3b-8358-f0b6a9c0c0c0"

// installMockDB installs a pgxmock pool as the global database and returns
// it with a restore function.
func installMockDB(t *testing.T) (pgxmock.PgxPoolIface, func()) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = mock

	return mock, func() {
		database.DB = oldDB
		mock.Close()
	}
}

func newTestTokenService() *TokenService {
	svc := NewTokenService(&config.Config{
		ProfileTokenTTL:  72 * time.Hour,
		DocumentTokenTTL: 168 * time.Hour,
	})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// TestTokenService_Issue verifies each purpose gets its own expiry window and
// that issuing replaces any prior token for the purpose.
func TestTokenService_Issue(t *testing.T) {
	tests := []struct {
		name      string
		purpose   string
		expiresAt time.Time
	}{
		{
			name:      "profile token gets a three day window",
			purpose:   models.TokenPurposeProfile,
			expiresAt: fixedNow.Add(72 * time.Hour),
		},
		{
			name:      "document token gets a seven day window",
			purpose:   models.TokenPurposeDocument,
			expiresAt: fixedNow.Add(168 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := installMockDB(t)
			defer cleanup()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM access_tokens WHERE candidate_id = $1 AND purpose = $2`)).
				WithArgs(7, tt.purpose).
				WillReturnResult(pgxmock.NewResult("DELETE", 0))
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO access_tokens (candidate_id, purpose, token, expires_at)`)).
				WithArgs(7, tt.purpose, pgxmock.AnyArg(), tt.expiresAt).
				WillReturnRows(pgxmock.NewRows([]string{"id", "candidate_id", "purpose", "token", "is_used", "expires_at", "created_at"}).
					AddRow(1, 7, tt.purpose, "generated", false, tt.expiresAt, fixedNow))
			mock.ExpectCommit()

			svc := newTestTokenService()
			token, err := svc.Issue(context.Background(), 7, tt.purpose)

			require.NoError(t, err)
			assert.Equal(t, tt.purpose, token.Purpose)
			assert.Equal(t, tt.expiresAt, token.ExpiresAt)
			assert.False(t, token.IsUsed)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestTokenService_Validate verifies the lookup and liveness checks. A token
// is usable only while unconsumed and before its expiry instant.
func TestTokenService_Validate(t *testing.T) {
	tokenRows := func(isUsed bool, expiresAt time.Time) *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "candidate_id", "purpose", "token", "is_used", "expires_at", "created_at"}).
			AddRow(1, 7, "PROFILE", validTokenValue, isUsed, expiresAt, fixedNow.Add(-time.Hour))
	}

	tests := []struct {
		name          string
		mockSetup     func(pgxmock.PgxPoolIface)
		expectedError error
	}{
		{
			name: "unknown value",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at").
					WithArgs(validTokenValue).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedError: ErrTokenNotFound,
		},
		{
			name: "consumed token",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at").
					WithArgs(validTokenValue).
					WillReturnRows(tokenRows(true, fixedNow.Add(time.Hour)))
			},
			expectedError: ErrTokenExpired,
		},
		{
			name: "past expiry",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at").
					WithArgs(validTokenValue).
					WillReturnRows(tokenRows(false, fixedNow.Add(-time.Minute)))
			},
			expectedError: ErrTokenExpired,
		},
		{
			name: "expiry instant itself is expired",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at").
					WithArgs(validTokenValue).
					WillReturnRows(tokenRows(false, fixedNow))
			},
			expectedError: ErrTokenExpired,
		},
		{
			name: "live token loads its candidate",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, candidate_id, purpose, token, is_used, expires_at, created_at").
					WithArgs(validTokenValue).
					WillReturnRows(tokenRows(false, fixedNow.Add(time.Hour)))
				mock.ExpectQuery("SELECT id, email, name, phone, status, account_id, created_at FROM candidates").
					WithArgs(7).
					WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "phone", "status", "account_id", "created_at"}).
						AddRow(7, "jane@example.com", "", "", "INVITED", nil, fixedNow.Add(-time.Hour)))
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := installMockDB(t)
			defer cleanup()

			tt.mockSetup(mock)
			svc := newTestTokenService()

			candidate, token, err := svc.Validate(context.Background(), validTokenValue)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, candidate)
				assert.Nil(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, candidate)
				require.NotNil(t, token)
				assert.Equal(t, 7, candidate.ID)
				assert.Equal(t, candidate.ID, token.CandidateID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestTokenService_Validate_MalformedValue verifies a mangled link value
// reads as an unknown token without ever touching the database, where the
// UUID-typed column would reject it as an encoding error.
func TestTokenService_Validate_MalformedValue(t *testing.T) {
	tests := []string{
		"not-a-uuid",
		"",
		"1b4e28ba-2fa1-4d3b-8358",
		validTokenValue + "x",
	}

	for _, value := range tests {
		t.Run("value "+value, func(t *testing.T) {
			mock, cleanup := installMockDB(t)
			defer cleanup()

			svc := newTestTokenService()
			candidate, token, err := svc.Validate(context.Background(), value)

			assert.ErrorIs(t, err, ErrTokenNotFound)
			assert.Nil(t, candidate)
			assert.Nil(t, token)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestTokenService_Consume verifies consumption is reflected both in the
// database and on the in-memory record, so a follow-up validity check fails.
func TestTokenService_Consume(t *testing.T) {
	mock, cleanup := installMockDB(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE access_tokens SET is_used = TRUE WHERE id = $1`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := newTestTokenService()
	token := &models.AccessToken{ID: 1, ExpiresAt: fixedNow.Add(time.Hour)}

	require.True(t, token.IsValid(fixedNow))
	require.NoError(t, svc.Consume(context.Background(), token))

	assert.True(t, token.IsUsed)
	assert.False(t, token.IsValid(fixedNow))

	assert.NoError(t, mock.ExpectationsWereMet())
}
