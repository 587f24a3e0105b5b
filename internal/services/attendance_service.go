// Package services provides the business logic layer for the HRMS onboarding
// service. This file implements the attendance workflow: the daily
// check-in/check-out state machine and the permission/regularization
// approval flows.
package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/repository"
)

// AttendanceService implements the attendance workflow.
type AttendanceService struct {
	attendanceRepo     *repository.AttendanceRepository
	permissionRepo     *repository.PermissionRepository
	regularizationRepo *repository.RegularizationRepository

	// now is a clock hook for tests.
	now func() time.Time
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService() *AttendanceService {
	return &AttendanceService{
		attendanceRepo:     repository.NewAttendanceRepository(),
		permissionRepo:     repository.NewPermissionRepository(),
		regularizationRepo: repository.NewRegularizationRepository(),
		now:                time.Now,
	}
}

// CheckIn records the day's first check-in for the employee. The row is
// created on demand; a second check-in on the same day is a silent no-op
// returning the existing state unchanged.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID int) (*models.Attendance, error) {
	now := s.now()

	attendance, err := s.attendanceRepo.GetOrCreateForDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		return nil, err
	}

	if attendance.CheckInTime != nil {
		return attendance, nil
	}

	checkIn := now
	attendance.CheckInTime = &checkIn
	attendance.Status = models.AttendanceHalfDay

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// CheckOut completes the day's attendance: sets the check-out timestamp,
// computes working hours, and moves the status to PRESENT. Without a prior
// check-in, or after a check-out already happened, the existing state is
// returned unchanged. Without any row for today it fails with
// ErrAttendanceNotFound.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID int) (*models.Attendance, error) {
	now := s.now()

	attendance, err := s.attendanceRepo.FindForDate(ctx, employeeID, dateOnly(now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}

	if attendance.CheckInTime == nil || attendance.CheckOutTime != nil {
		return attendance, nil
	}

	checkOut := now
	hours := workingHours(*attendance.CheckInTime, checkOut)
	attendance.CheckOutTime = &checkOut
	attendance.WorkingHours = &hours
	attendance.Status = models.AttendancePresent

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// MyAttendance returns the employee's attendance history, newest date first.
func (s *AttendanceService) MyAttendance(ctx context.Context, employeeID int) ([]models.Attendance, error) {
	return s.attendanceRepo.ListByEmployee(ctx, employeeID)
}

// ApplyPermission creates a PENDING partial-day absence request. Fails with
// ErrInvalidRange unless the requested range ends after it starts.
func (s *AttendanceService) ApplyPermission(ctx context.Context, employeeID int, date, from, to time.Time, reason string) (*models.Permission, error) {
	if !to.After(from) {
		return nil, ErrInvalidRange
	}

	permission := &models.Permission{
		EmployeeID: employeeID,
		Date:       dateOnly(date),
		FromTime:   from,
		ToTime:     to,
		Reason:     reason,
	}
	if err := s.permissionRepo.Create(ctx, permission); err != nil {
		return nil, err
	}

	return permission, nil
}

// ReviewPermission records an approval decision on a permission request.
func (s *AttendanceService) ReviewPermission(ctx context.Context, actor models.Identity, id int, approve bool) (*models.Permission, error) {
	if !models.CanApprove(actor.Role) {
		return nil, ErrUnauthorized
	}

	permission, err := s.permissionRepo.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPermissionNotFound
	}
	if err != nil {
		return nil, err
	}

	status := models.RequestRejected
	if approve {
		status = models.RequestApproved
	}

	if err := s.permissionRepo.Review(ctx, permission.ID, status, actor.UserID); err != nil {
		return nil, err
	}
	permission.Status = status
	permission.ApprovedBy = &actor.UserID

	return permission, nil
}

// ApplyRegularization creates a PENDING correction request against one of
// the requesting employee's own attendance rows. A row belonging to someone
// else reads as not found rather than forbidden.
func (s *AttendanceService) ApplyRegularization(ctx context.Context, employeeID, attendanceID int, requestedIn, requestedOut *time.Time, reason string) (*models.Regularization, error) {
	attendance, err := s.attendanceRepo.FindByIDForEmployee(ctx, attendanceID, employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}

	reg := &models.Regularization{
		AttendanceID:      attendance.ID,
		EmployeeID:        employeeID,
		RequestedCheckIn:  requestedIn,
		RequestedCheckOut: requestedOut,
		Reason:            reason,
	}
	if err := s.regularizationRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// ApproveRegularization overwrites the linked attendance with the requested
// times, recomputes working hours, marks the row REGULARIZED, and approves
// the request. The attendance amendment and the approval persist as one
// transaction.
func (s *AttendanceService) ApproveRegularization(ctx context.Context, actor models.Identity, id int) (*models.Regularization, error) {
	if !models.CanApprove(actor.Role) {
		return nil, ErrUnauthorized
	}

	reg, err := s.regularizationRepo.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRegularizationNotFound
	}
	if err != nil {
		return nil, err
	}

	amended := &models.Attendance{
		ID:           reg.AttendanceID,
		CheckInTime:  reg.RequestedCheckIn,
		CheckOutTime: reg.RequestedCheckOut,
		Status:       models.AttendancePresent,
		Source:       models.SourceRegularized,
	}
	if reg.RequestedCheckIn != nil && reg.RequestedCheckOut != nil {
		hours := workingHours(*reg.RequestedCheckIn, *reg.RequestedCheckOut)
		amended.WorkingHours = &hours
	}

	if err := s.regularizationRepo.Approve(ctx, reg, amended, actor.UserID); err != nil {
		return nil, err
	}
	reg.Status = models.RequestApproved
	reg.ApprovedBy = &actor.UserID

	return reg, nil
}

// PendingRequests returns the approval queues for the HR screen.
func (s *AttendanceService) PendingRequests(ctx context.Context, actor models.Identity) ([]models.Permission, []models.Regularization, error) {
	if !models.CanApprove(actor.Role) {
		return nil, nil, ErrUnauthorized
	}

	permissions, err := s.permissionRepo.ListPending(ctx)
	if err != nil {
		return nil, nil, err
	}

	regularizations, err := s.regularizationRepo.ListPending(ctx)
	if err != nil {
		return nil, nil, err
	}

	return permissions, regularizations, nil
}

// workingHours is the elapsed time between check-in and check-out in
// fractional hours, rounded to two decimals to match the stored precision.
func workingHours(in, out time.Time) float64 {
	return math.Round(out.Sub(in).Hours()*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
