// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements the single-use access token lifecycle that
// gates the unauthenticated candidate flows.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// TokenService issues, validates, and consumes single-use, time-limited
// access tokens. Two purposes exist: profile completion (3-day window,
// consumed on success) and document upload (7-day window, never consumed so
// the same link serves multiple uploads).
type TokenService struct {
	tokenRepo     *repository.TokenRepository
	candidateRepo *repository.CandidateRepository

	profileTTL  time.Duration
	documentTTL time.Duration

	// now is a clock hook for tests.
	now func() time.Time
}

// NewTokenService creates a TokenService with windows from configuration.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		tokenRepo:     repository.NewTokenRepository(),
		candidateRepo: repository.NewCandidateRepository(),
		profileTTL:    cfg.ProfileTokenTTL,
		documentTTL:   cfg.DocumentTokenTTL,
		now:           time.Now,
	}
}

// Issue replaces any existing token for (candidate, purpose) with a fresh
// one. The value is a random UUID; expiry is now plus the purpose's window.
// Issuing has no error conditions of its own: old tokens are removed and the
// candidate always ends up holding exactly one live token for the purpose.
func (s *TokenService) Issue(ctx context.Context, candidateID int, purpose string) (*models.AccessToken, error) {
	ttl := s.profileTTL
	if purpose == models.TokenPurposeDocument {
		ttl = s.documentTTL
	}

	return s.tokenRepo.Replace(ctx, candidateID, purpose, uuid.NewString(), s.now().Add(ttl))
}

// Validate looks up a token by value and checks it can still gate its
// action. Returns the owning candidate and the token record so the caller
// can consume it after the gated action succeeds. Validation never mutates
// the token.
func (s *TokenService) Validate(ctx context.Context, value string) (*models.Candidate, *models.AccessToken, error) {
	// The column is UUID-typed; a mangled link value must read as an
	// unknown token, not as an encoding error.
	if _, err := uuid.Parse(value); err != nil {
		return nil, nil, ErrTokenNotFound
	}

	token, err := s.tokenRepo.FindByValue(ctx, value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if !token.IsValid(s.now()) {
		return nil, nil, ErrTokenExpired
	}

	candidate, err := s.candidateRepo.FindByID(ctx, token.CandidateID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	return candidate, token, nil
}

// Consume marks a token used. Call exactly once, after the gated action has
// succeeded; consuming first would lock the candidate out on a failed
// submission. There is no un-consume.
func (s *TokenService) Consume(ctx context.Context, token *models.AccessToken) error {
	if err := s.tokenRepo.MarkUsed(ctx, token.ID); err != nil {
		return err
	}
	token.IsUsed = true
	return nil
}
