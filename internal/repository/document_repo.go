// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles document rows: uploads, HR review
// status changes, and the verification aggregate.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const documentColumns = `id, candidate_id, document_type, file_path, status, uploaded_at`

// DocumentRepository handles document-related database operations.
type DocumentRepository struct{}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// Create inserts a new document row. Uploads always start PENDING.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (candidate_id, document_type, file_path, status)
		VALUES ($1, $2, $3, 'PENDING')
		RETURNING id, status, uploaded_at
	`

	return database.DB.QueryRow(ctx, query, doc.CandidateID, doc.DocumentType, doc.FilePath).
		Scan(&doc.ID, &doc.Status, &doc.UploadedAt)
}

// FindByID retrieves a document by primary key.
func (r *DocumentRepository) FindByID(ctx context.Context, id int) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	var d models.Document
	err := database.DB.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CandidateID, &d.DocumentType, &d.FilePath, &d.Status, &d.UploadedAt,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// UpdateStatus records an HR review outcome on a document.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := database.DB.Exec(ctx, `UPDATE documents SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByCandidate returns a candidate's documents, newest upload first.
// Shown on the upload page so the candidate sees what is already in.
func (r *DocumentRepository) ListByCandidate(ctx context.Context, candidateID int) ([]models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE candidate_id = $1 ORDER BY uploaded_at DESC`

	rows, err := database.DB.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(&d.ID, &d.CandidateID, &d.DocumentType, &d.FilePath, &d.Status, &d.UploadedAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// ListPending returns all documents awaiting review, newest first.
func (r *DocumentRepository) ListPending(ctx context.Context) ([]models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = 'PENDING' ORDER BY uploaded_at DESC`

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(&d.ID, &d.CandidateID, &d.DocumentType, &d.FilePath, &d.Status, &d.UploadedAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// CountByStatus returns the live verification aggregate for one candidate.
// Always queried fresh; HR reviews land out of band from any one request, so
// caching these counts would go stale immediately.
func (r *DocumentRepository) CountByStatus(ctx context.Context, candidateID int) (total, pending, verified int, err error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'VERIFIED')
		FROM documents
		WHERE candidate_id = $1
	`

	err = database.DB.QueryRow(ctx, query, candidateID).Scan(&total, &pending, &verified)
	return total, pending, verified, err
}
