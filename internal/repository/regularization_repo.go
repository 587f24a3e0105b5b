// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles regularization requests, including
// the transactional approval that amends the linked attendance row.
package repository

import (
	"context"

	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const regularizationColumns = `id, attendance_id, employee_id, requested_check_in, requested_check_out, reason, status, approved_by, created_at`

// RegularizationRepository handles regularization request database operations.
type RegularizationRepository struct{}

// NewRegularizationRepository creates a new instance of RegularizationRepository.
func NewRegularizationRepository() *RegularizationRepository {
	return &RegularizationRepository{}
}

// Create inserts a new regularization request. Requests always start PENDING.
func (r *RegularizationRepository) Create(ctx context.Context, reg *models.Regularization) error {
	query := `
		INSERT INTO regularizations (attendance_id, employee_id, requested_check_in, requested_check_out, reason, status)
		VALUES ($1, $2, $3, $4, $5, 'PENDING')
		RETURNING id, status, created_at
	`

	return database.DB.QueryRow(ctx, query,
		reg.AttendanceID, reg.EmployeeID, reg.RequestedCheckIn, reg.RequestedCheckOut, reg.Reason,
	).Scan(&reg.ID, &reg.Status, &reg.CreatedAt)
}

// FindByID retrieves a regularization request by primary key.
func (r *RegularizationRepository) FindByID(ctx context.Context, id int) (*models.Regularization, error) {
	query := `SELECT ` + regularizationColumns + ` FROM regularizations WHERE id = $1`

	var reg models.Regularization
	err := database.DB.QueryRow(ctx, query, id).Scan(
		&reg.ID, &reg.AttendanceID, &reg.EmployeeID, &reg.RequestedCheckIn,
		&reg.RequestedCheckOut, &reg.Reason, &reg.Status, &reg.ApprovedBy, &reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

// Approve overwrites the linked attendance row with the amended values and
// marks the regularization APPROVED, as a single transaction. Either both
// rows persist or neither does.
func (r *RegularizationRepository) Approve(ctx context.Context, reg *models.Regularization, amended *models.Attendance, approverID int) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE attendances
		SET check_in_time = $2, check_out_time = $3, working_hours = $4, status = $5, source = $6
		WHERE id = $1`,
		amended.ID, amended.CheckInTime, amended.CheckOutTime,
		amended.WorkingHours, amended.Status, amended.Source,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE regularizations SET status = 'APPROVED', approved_by = $2 WHERE id = $1`,
		reg.ID, approverID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListPending returns all regularization requests awaiting review, oldest
// first.
func (r *RegularizationRepository) ListPending(ctx context.Context) ([]models.Regularization, error) {
	query := `SELECT ` + regularizationColumns + ` FROM regularizations WHERE status = 'PENDING' ORDER BY created_at`

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.Regularization
	for rows.Next() {
		var reg models.Regularization
		err := rows.Scan(
			&reg.ID, &reg.AttendanceID, &reg.EmployeeID, &reg.RequestedCheckIn,
			&reg.RequestedCheckOut, &reg.Reason, &reg.Status, &reg.ApprovedBy, &reg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, reg)
	}

	return requests, rows.Err()
}
