// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles permission (partial-day absence)
// request rows.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const permissionColumns = `id, employee_id, date, from_time, to_time, reason, status, approved_by, created_at`

// PermissionRepository handles permission request database operations.
type PermissionRepository struct{}

// NewPermissionRepository creates a new instance of PermissionRepository.
func NewPermissionRepository() *PermissionRepository {
	return &PermissionRepository{}
}

// Create inserts a new permission request. Requests always start PENDING.
func (r *PermissionRepository) Create(ctx context.Context, p *models.Permission) error {
	query := `
		INSERT INTO permissions (employee_id, date, from_time, to_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, 'PENDING')
		RETURNING id, status, created_at
	`

	return database.DB.QueryRow(ctx, query,
		p.EmployeeID, p.Date, p.FromTime, p.ToTime, p.Reason,
	).Scan(&p.ID, &p.Status, &p.CreatedAt)
}

// FindByID retrieves a permission request by primary key.
func (r *PermissionRepository) FindByID(ctx context.Context, id int) (*models.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE id = $1`

	var p models.Permission
	err := database.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.FromTime, &p.ToTime,
		&p.Reason, &p.Status, &p.ApprovedBy, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Review records a reviewer's decision on a permission request.
func (r *PermissionRepository) Review(ctx context.Context, id int, status string, approverID int) error {
	query := `UPDATE permissions SET status = $2, approved_by = $3 WHERE id = $1`

	tag, err := database.DB.Exec(ctx, query, id, status, approverID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListPending returns all permission requests awaiting review, oldest first
// so the approval queue is worked in arrival order.
func (r *PermissionRepository) ListPending(ctx context.Context) ([]models.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE status = 'PENDING' ORDER BY created_at`

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.Permission
	for rows.Next() {
		var p models.Permission
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.FromTime, &p.ToTime,
			&p.Reason, &p.Status, &p.ApprovedBy, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, p)
	}

	return requests, rows.Err()
}
