// Package services provides the business logic layer for the HRMS onboarding
// service: token lifecycle, candidate onboarding, document verification,
// credential issuance and the attendance workflow.
package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses; repositories map pgx.ErrNoRows onto the NotFound variants.
var (
	// ErrTokenNotFound is returned when no token matches the presented value.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenExpired is returned for a token that is used up or past its
	// expiry. Both cases read the same to the candidate: the link is dead.
	ErrTokenExpired = errors.New("token expired or already used")

	// ErrCandidateNotFound is returned on a candidate lookup miss.
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrAlreadyOnboarded is returned when HR re-invites a candidate whose
	// profile is already completed.
	ErrAlreadyOnboarded = errors.New("candidate already completed onboarding")

	// ErrDocumentNotFound is returned on a document lookup miss.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNotVerified is returned when credential issuance is attempted
	// before the candidate's documents satisfy the verification aggregate.
	ErrNotVerified = errors.New("documents not fully verified")

	// ErrInvalidRange is returned when a requested time range ends at or
	// before its start.
	ErrInvalidRange = errors.New("end time must be after start time")

	// ErrUnauthorized is returned when the acting identity lacks the role a
	// mutation requires.
	ErrUnauthorized = errors.New("not allowed")

	// ErrAttendanceNotFound is returned on an attendance lookup miss.
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrPermissionNotFound is returned on a permission request lookup miss.
	ErrPermissionNotFound = errors.New("permission request not found")

	// ErrRegularizationNotFound is returned on a regularization lookup miss.
	ErrRegularizationNotFound = errors.New("regularization request not found")

	// ErrAccountNotFound is returned on an account lookup miss.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned for a failed login. The same error
	// covers unknown username and wrong password so responses do not reveal
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
