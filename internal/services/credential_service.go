// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements credential issuance: deterministic
// username/password derivation and account creation or reset, gated by the
// document verification aggregate.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// CredentialService implements credential issuance for verified candidates.
//
// The derivation is deterministic (name plus calendar year) and therefore
// guessable. That is the documented contract of this system, kept observable
// because the credentials email depends on it; the stored password is still
// a bcrypt hash.
type CredentialService struct {
	candidateRepo *repository.CandidateRepository
	accountRepo   *repository.AccountRepository
	documents     *DocumentService
	auth          *AuthService
	mailer        Mailer
	baseURL       string

	// now is a clock hook for tests; the year feeds password derivation.
	now func() time.Time
}

// NewCredentialService creates a CredentialService.
func NewCredentialService(cfg *config.Config, documents *DocumentService, auth *AuthService, mailer Mailer) *CredentialService {
	return &CredentialService{
		candidateRepo: repository.NewCandidateRepository(),
		accountRepo:   repository.NewAccountRepository(),
		documents:     documents,
		auth:          auth,
		mailer:        mailer,
		baseURL:       cfg.BaseURL,
		now:           time.Now,
	}
}

// DeriveUsername returns the lowercase candidate name with all whitespace
// stripped, falling back to the local part of the email when the name is
// absent.
func DeriveUsername(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return strings.ToLower(strings.Join(strings.Fields(name), ""))
	}

	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// DerivePassword returns the capitalized first token of the candidate's name
// joined with "@" and the calendar year, falling back to the capitalized
// username when the name is absent. Same name and year always derive the
// same password.
func DerivePassword(name, username string, year int) string {
	word := username
	if fields := strings.Fields(name); len(fields) > 0 {
		word = fields[0]
	}

	return fmt.Sprintf("%s@%d", capitalize(word), year)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// IssueResult reports a credential issuance outcome. MailErr carries a
// failed email dispatch; the account mutation stands regardless, so the
// operator needs a fallback channel for the credentials.
type IssueResult struct {
	Credentials models.Credentials
	Account     *models.Account
	MailErr     error
}

// IssueOrReset derives credentials for a verified candidate and creates the
// employee account, or resets the password of the account already holding
// the candidate's email. Account mutation and the candidate -> account link
// persist as one transaction. Fails with ErrNotVerified while any document
// is pending or none are verified.
func (s *CredentialService) IssueOrReset(ctx context.Context, actor models.Identity, candidateID int) (*IssueResult, error) {
	if !models.IsHR(actor.Role) {
		return nil, ErrUnauthorized
	}

	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}

	ready, err := s.documents.ReadyForCredentials(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrNotVerified
	}

	username := DeriveUsername(candidate.Name, candidate.Email)
	password := DerivePassword(candidate.Name, username, s.now().Year())

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	first, last := splitName(candidate.Name)
	account := &models.Account{
		Username:     username,
		Email:        candidate.Email,
		FirstName:    first,
		LastName:     last,
		PasswordHash: hash,
	}

	if err := s.accountRepo.IssueOrReset(ctx, candidate.ID, account); err != nil {
		return nil, err
	}

	result := &IssueResult{
		Credentials: models.Credentials{Username: username, Password: password},
		Account:     account,
	}

	loginURL := s.baseURL + "/login"
	text, html := credentialBodies(candidate.Name, username, password, loginURL)
	if err := s.mailer.Send(candidate.Email, "Your HRMS Login Credentials", text, html); err != nil {
		logrus.WithError(err).WithField("email", candidate.Email).Error("Failed to send credentials email")
		result.MailErr = err
	}

	return result, nil
}

func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func credentialBodies(name, username, password, loginURL string) (text, html string) {
	text = fmt.Sprintf(`Hello %s,

Congratulations! All your documents have been verified.

Your HRMS account has been created. You can now login using the following credentials:

Username: %s
Password: %s

Login URL: %s

Please change your password after first login for security.

Regards,
HR Team
`, name, username, password, loginURL)

	html = fmt.Sprintf(`<p>Hello %s,</p>
<p>Congratulations! All your documents have been verified.</p>
<p>Your HRMS account has been created. You can now login using the following credentials:</p>
<p>Username: <strong>%s</strong><br>Password: <strong>%s</strong></p>
<p><a href="%s">Login here</a></p>
<p>Please change your password after first login for security.</p>
<p>Regards,<br>HR Team</p>
`, name, username, password, loginURL)

	return text, html
}
