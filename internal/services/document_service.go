// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements the document verification workflow: token-
// gated uploads, HR review, and the credential-readiness aggregate.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// Review actions accepted by DocumentService.Review.
const (
	ReviewVerify          = "verify"
	ReviewRequestReupload = "reupload"
)

// DocumentService implements the document verification workflow.
type DocumentService struct {
	documentRepo  *repository.DocumentRepository
	candidateRepo *repository.CandidateRepository
	tokens        *TokenService
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(tokens *TokenService) *DocumentService {
	return &DocumentService{
		documentRepo:  repository.NewDocumentRepository(),
		candidateRepo: repository.NewCandidateRepository(),
		tokens:        tokens,
	}
}

// Upload validates the document token and records a PENDING document. The
// token is deliberately not consumed: a candidate uploads several documents
// across several requests with the same link, which only dies by expiry.
func (s *DocumentService) Upload(ctx context.Context, tokenValue, documentType, filePath string) (*models.Document, error) {
	candidate, _, err := s.tokens.Validate(ctx, tokenValue)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		CandidateID:  candidate.ID,
		DocumentType: documentType,
		FilePath:     filePath,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ListForToken validates the document token and returns the owning candidate
// with their uploads so far, newest first. Backs the upload page.
func (s *DocumentService) ListForToken(ctx context.Context, tokenValue string) (*models.Candidate, []models.Document, error) {
	candidate, _, err := s.tokens.Validate(ctx, tokenValue)
	if err != nil {
		return nil, nil, err
	}

	docs, err := s.documentRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, nil, err
	}

	return candidate, docs, nil
}

// Review applies an HR decision to a document: verify it or send it back for
// re-upload. The actor's role is checked here as well as at the route, since
// the mutation contract requires it.
func (s *DocumentService) Review(ctx context.Context, actor models.Identity, documentID int, action string) (*models.Document, error) {
	if !models.IsHR(actor.Role) {
		return nil, ErrUnauthorized
	}

	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}

	var status string
	switch action {
	case ReviewVerify:
		status = models.DocumentVerified
	case ReviewRequestReupload:
		status = models.DocumentReupload
	default:
		return nil, fmt.Errorf("unknown review action %q", action)
	}

	if err := s.documentRepo.UpdateStatus(ctx, doc.ID, status); err != nil {
		return nil, err
	}
	doc.Status = status

	return doc, nil
}

// ReadyForCredentials recomputes the credential-issuance aggregate from live
// document rows: at least one document, none pending, at least one verified.
// Never cached; HR reviews happen out of band from any single request.
func (s *DocumentService) ReadyForCredentials(ctx context.Context, candidateID int) (bool, error) {
	total, pending, verified, err := s.documentRepo.CountByStatus(ctx, candidateID)
	if err != nil {
		return false, err
	}

	return total > 0 && pending == 0 && verified > 0, nil
}

// Dashboard assembles the HR review screen: candidate overviews with live
// counts plus the pending-document queue.
func (s *DocumentService) Dashboard(ctx context.Context, actor models.Identity) ([]models.CandidateOverview, []models.Document, error) {
	if !models.IsHR(actor.Role) {
		return nil, nil, ErrUnauthorized
	}

	overview, err := s.candidateRepo.Overview(ctx)
	if err != nil {
		return nil, nil, err
	}

	pending, err := s.documentRepo.ListPending(ctx)
	if err != nil {
		return nil, nil, err
	}

	return overview, pending, nil
}
