// Package repository implements the database access layer for the HRMS
// onboarding service. This file handles attendance rows keyed by
// (employee, date).
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/models"
)

const attendanceColumns = `id, employee_id, date, check_in_time, check_out_time, working_hours, status, source, created_at`

// AttendanceRepository handles attendance database operations.
type AttendanceRepository struct{}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// GetOrCreateForDate returns the attendance row for (employee, date),
// inserting a fresh ABSENT/AUTO row if none exists. The unique constraint on
// (employee_id, date) serializes racing check-ins; the conflict loser gets
// the row the winner created.
func (r *AttendanceRepository) GetOrCreateForDate(ctx context.Context, employeeID int, date time.Time) (*models.Attendance, error) {
	query := `
		INSERT INTO attendances (employee_id, date, status, source)
		VALUES ($1, $2, 'ABSENT', 'AUTO')
		ON CONFLICT (employee_id, date) DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING ` + attendanceColumns

	return scanAttendance(database.DB.QueryRow(ctx, query, employeeID, date))
}

// FindForDate retrieves the attendance row for (employee, date).
func (r *AttendanceRepository) FindForDate(ctx context.Context, employeeID int, date time.Time) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`
	return scanAttendance(database.DB.QueryRow(ctx, query, employeeID, date))
}

// FindByIDForEmployee retrieves an attendance row only if it belongs to the
// given employee. Regularization requests must reference the requester's own
// attendance.
func (r *AttendanceRepository) FindByIDForEmployee(ctx context.Context, id, employeeID int) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1 AND employee_id = $2`
	return scanAttendance(database.DB.QueryRow(ctx, query, id, employeeID))
}

// Update persists the mutable attendance fields after a check-in/check-out
// transition.
func (r *AttendanceRepository) Update(ctx context.Context, a *models.Attendance) error {
	query := `
		UPDATE attendances
		SET check_in_time = $2, check_out_time = $3, working_hours = $4, status = $5, source = $6
		WHERE id = $1
	`

	tag, err := database.DB.Exec(ctx, query,
		a.ID, a.CheckInTime, a.CheckOutTime, a.WorkingHours, a.Status, a.Source,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByEmployee returns an employee's attendance history, newest date first.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int) ([]models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 ORDER BY date DESC`

	rows, err := database.DB.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Attendance
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
			&a.WorkingHours, &a.Status, &a.Source, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var a models.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
		&a.WorkingHours, &a.Status, &a.Source, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
