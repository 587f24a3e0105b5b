// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements login authentication and password hashing
// using bcrypt.
package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and password management.
//
// Security notes:
//   - bcrypt comparison is constant time, so timing does not leak password
//     information.
//   - Unknown username and wrong password return the same error, so
//     responses do not reveal which accounts exist.
type AuthService struct {
	accountRepo *repository.AccountRepository
}

// NewAuthService creates an AuthService.
func NewAuthService() *AuthService {
	return &AuthService{
		accountRepo: repository.NewAccountRepository(),
	}
}

// Authenticate verifies credentials and returns the account on success.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// HashPassword generates a bcrypt hash of the provided plaintext password.
// Used when issuing credentials or seeding accounts.
func (s *AuthService) HashPassword(password string) (string, error) {
	const bcryptCost = 12
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}
