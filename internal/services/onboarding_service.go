// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements the candidate profile workflow: HR
// invitation and token-gated profile completion.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// OnboardingService implements the candidate profile workflow.
type OnboardingService struct {
	candidateRepo *repository.CandidateRepository
	tokens        *TokenService
	mailer        Mailer
	baseURL       string
}

// NewOnboardingService creates an OnboardingService.
func NewOnboardingService(cfg *config.Config, tokens *TokenService, mailer Mailer) *OnboardingService {
	return &OnboardingService{
		candidateRepo: repository.NewCandidateRepository(),
		tokens:        tokens,
		mailer:        mailer,
		baseURL:       cfg.BaseURL,
	}
}

// InviteResult reports an invitation outcome. MailErr carries a failed email
// dispatch; the candidate and token stand regardless, so HR can retry by
// re-inviting (at-least-once semantics).
type InviteResult struct {
	Candidate *models.Candidate
	Token     *models.AccessToken
	MailErr   error
}

// Invite fetches or creates the candidate for the email, replaces any prior
// profile token with a fresh one, and dispatches the onboarding link.
// Re-inviting a candidate whose profile is already completed fails with
// ErrAlreadyOnboarded.
func (s *OnboardingService) Invite(ctx context.Context, actor models.Identity, email string) (*InviteResult, error) {
	if !models.IsHR(actor.Role) {
		return nil, ErrUnauthorized
	}

	candidate, err := s.candidateRepo.GetOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if candidate.Status == models.CandidateProfileCompleted {
		return nil, ErrAlreadyOnboarded
	}

	token, err := s.tokens.Issue(ctx, candidate.ID, models.TokenPurposeProfile)
	if err != nil {
		return nil, err
	}

	result := &InviteResult{Candidate: candidate, Token: token}

	link := fmt.Sprintf("%s/onboard/%s", s.baseURL, token.Token)
	expiry := linkExpiry(s.tokens.profileTTL)
	if err := s.mailer.Send(email, "Complete Your Onboarding", onboardingText(link, expiry), onboardingHTML(link, expiry)); err != nil {
		logrus.WithError(err).WithField("email", email).Error("Failed to send onboarding email")
		result.MailErr = err
	}

	return result, nil
}

// ValidateProfileToken checks an onboarding link without consuming it,
// returning the candidate it belongs to. Backs the profile form page, where
// a dead link must read as an error before anything is submitted.
func (s *OnboardingService) ValidateProfileToken(ctx context.Context, tokenValue string) (*models.Candidate, *models.AccessToken, error) {
	return s.tokens.Validate(ctx, tokenValue)
}

// CompleteProfile validates the profile token, records the candidate's name
// and phone, consumes the token, and immediately issues a document-upload
// token so the candidate proceeds without a second email round-trip.
func (s *OnboardingService) CompleteProfile(ctx context.Context, tokenValue, name, phone string) (*models.Candidate, *models.AccessToken, error) {
	candidate, token, err := s.tokens.Validate(ctx, tokenValue)
	if err != nil {
		return nil, nil, err
	}

	if err := s.candidateRepo.CompleteProfile(ctx, candidate.ID, name, phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrCandidateNotFound
		}
		return nil, nil, err
	}
	candidate.Name = name
	candidate.Phone = phone
	candidate.Status = models.CandidateProfileCompleted

	// Consume only after the profile is saved, so a failed submission does
	// not burn the link.
	if err := s.tokens.Consume(ctx, token); err != nil {
		return nil, nil, err
	}

	docToken, err := s.tokens.Issue(ctx, candidate.ID, models.TokenPurposeDocument)
	if err != nil {
		return nil, nil, err
	}

	return candidate, docToken, nil
}

// linkExpiry renders a token lifetime for the invitation email, tracking
// whatever duration the deployment configures.
func linkExpiry(ttl time.Duration) string {
	days := int(ttl.Hours() / 24)
	switch {
	case days > 1:
		return fmt.Sprintf("%d days", days)
	case days == 1:
		return "1 day"
	case ttl.Hours() >= 2:
		return fmt.Sprintf("%d hours", int(ttl.Hours()))
	default:
		return "1 hour"
	}
}

func onboardingText(link, expiry string) string {
	return fmt.Sprintf(`Hello,

You have been invited to complete your onboarding process.

Click the link below:
%s

Note: This link will expire in %s.

Regards,
HR Team
`, link, expiry)
}

func onboardingHTML(link, expiry string) string {
	return fmt.Sprintf(`<p>Hello,</p>
<p>You have been invited to complete your onboarding process.</p>
<p><a href="%s">Complete your onboarding</a></p>
<p>Note: This link will expire in %s.</p>
<p>Regards,<br>HR Team</p>
`, link, expiry)
}
