// Package models defines the domain entities and data transfer objects for
// the HRMS onboarding service. It includes database models mapped to
// PostgreSQL tables, form DTOs for user input, and view models for the HR
// dashboard.
package models

import "time"

// ============================================================================
// Domain Models (Database Entities)
// ============================================================================

// Candidate status values.
const (
	CandidateInvited          = "INVITED"
	CandidateProfileCompleted = "PROFILE_COMPLETED"
)

// Candidate represents a person invited for onboarding, prior to becoming an
// employee account holder. Email is the unique, immutable key; the row is
// created on first invitation and never deleted in the normal flow.
//
// Database Table: candidates
type Candidate struct {
	ID        int        `db:"id"`         // Primary key
	Email     string     `db:"email"`      // Unique, set at invitation
	Name      string     `db:"name"`       // Filled by the profile form
	Phone     string     `db:"phone"`      // Filled by the profile form
	Status    string     `db:"status"`     // INVITED or PROFILE_COMPLETED
	AccountID *int       `db:"account_id"` // Linked account, set at credential issuance
	CreatedAt time.Time  `db:"created_at"` // Invitation timestamp
}

// Token purposes. A candidate holds at most one live token per purpose.
const (
	TokenPurposeProfile  = "PROFILE"
	TokenPurposeDocument = "DOCUMENT"
)

// AccessToken is a single-use, time-boxed opaque credential granting an
// unauthenticated candidate access to one scoped action. Profile tokens gate
// the profile form and are consumed on successful submission; document tokens
// gate uploads and are never consumed, expiring naturally instead.
//
// Database Table: access_tokens
// Invariant: usable iff !IsUsed && now < ExpiresAt
type AccessToken struct {
	ID          int       `db:"id"`
	CandidateID int       `db:"candidate_id"`
	Purpose     string    `db:"purpose"` // PROFILE or DOCUMENT
	Token       string    `db:"token"`   // Opaque UUID value carried in links
	IsUsed      bool      `db:"is_used"`
	ExpiresAt   time.Time `db:"expires_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// IsValid reports whether the token can still gate its action.
// Validity is a pure function of state; reading it never mutates the token.
func (t *AccessToken) IsValid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}

// Document status values.
const (
	DocumentPending  = "PENDING"
	DocumentVerified = "VERIFIED"
	DocumentReupload = "REUPLOAD"
)

// Document is an identity/verification file uploaded by a candidate. The type
// is a free-form label, so several documents of the same type may coexist.
// Uploads always start PENDING; only an HR review moves them on.
//
// Database Table: documents
type Document struct {
	ID           int       `db:"id"`
	CandidateID  int       `db:"candidate_id"`
	DocumentType string    `db:"document_type"` // Free-form label, e.g. "ID_CARD"
	FilePath     string    `db:"file_path"`     // Stored file reference
	Status       string    `db:"status"`        // PENDING, VERIFIED or REUPLOAD
	UploadedAt   time.Time `db:"uploaded_at"`
}

// Account represents an employee login account created at credential
// issuance or seeded by an administrator.
//
// Database Table: accounts
// Security Note: PasswordHash must never appear in responses or logs.
type Account struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"` // Unique, derived from candidate name
	Email        string    `db:"email"`    // Unique
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         string    `db:"role"` // See roles.go
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Attendance status values.
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceHalfDay = "HALF_DAY"
	AttendanceLeave   = "LEAVE"
)

// Attendance source values.
const (
	SourceAuto        = "AUTO"
	SourceManual      = "MANUAL"
	SourceRegularized = "REGULARIZED"
)

// Attendance is a daily check-in/check-out record, keyed uniquely by
// (employee, date). Created on first check-in with status HALF_DAY,
// completed to PRESENT on check-out, and possibly overwritten later by an
// approved regularization.
//
// Database Table: attendances
type Attendance struct {
	ID           int        `db:"id"`
	EmployeeID   int        `db:"employee_id"` // accounts.id
	Date         time.Time  `db:"date"`        // Calendar date, time part zero
	CheckInTime  *time.Time `db:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time"`
	WorkingHours *float64   `db:"working_hours"` // Fractional hours, e.g. 8.5
	Status       string     `db:"status"`
	Source       string     `db:"source"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Request status values shared by Permission and Regularization.
const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// Permission is an employee-submitted request for approved absence during
// part of a workday. Created by the employee, mutated only by an HR/admin
// review.
//
// Database Table: permissions
type Permission struct {
	ID         int       `db:"id"`
	EmployeeID int       `db:"employee_id"`
	Date       time.Time `db:"date"`
	FromTime   time.Time `db:"from_time"`
	ToTime     time.Time `db:"to_time"`
	Reason     string    `db:"reason"`
	Status     string    `db:"status"`
	ApprovedBy *int      `db:"approved_by"` // Reviewer account id, nil while pending
	CreatedAt  time.Time `db:"created_at"`
}

// Regularization is an employee-submitted request to retroactively correct a
// day's check-in/check-out times. Approval overwrites the referenced
// attendance row as a side effect.
//
// Database Table: regularizations
type Regularization struct {
	ID                int        `db:"id"`
	AttendanceID      int        `db:"attendance_id"`
	EmployeeID        int        `db:"employee_id"`
	RequestedCheckIn  *time.Time `db:"requested_check_in"`
	RequestedCheckOut *time.Time `db:"requested_check_out"`
	Reason            string     `db:"reason"`
	Status            string     `db:"status"`
	ApprovedBy        *int       `db:"approved_by"`
	CreatedAt         time.Time  `db:"created_at"`
}

// Identity is the authenticated caller passed explicitly into every
// role-gated workflow call. Services never read ambient session state.
type Identity struct {
	UserID int
	Role   string
	Name   string
}

// ============================================================================
// Data Transfer Objects (DTOs) - Form Input
// ============================================================================

// LoginForm represents login credentials from the login form.
type LoginForm struct {
	Username string
	Password string
}

// ProfileForm represents the candidate profile-completion submission.
type ProfileForm struct {
	Name  string
	Phone string
}

// PermissionForm represents a permission (partial-day absence) request.
type PermissionForm struct {
	Date     string // "2006-01-02"
	FromTime string // "15:04"
	ToTime   string // "15:04"
	Reason   string
}

// RegularizationForm represents a retroactive attendance correction request.
type RegularizationForm struct {
	CheckIn  string // "2006-01-02T15:04"
	CheckOut string // "2006-01-02T15:04"
	Reason   string
}

// ============================================================================
// View Models - HR Dashboard
// ============================================================================

// CandidateOverview is a dashboard row: a candidate with document counts,
// the derived readiness flag, and the linked account username once issued.
type CandidateOverview struct {
	Candidate
	TotalDocs    int    // All documents uploaded by the candidate
	PendingDocs  int    // Documents awaiting review
	VerifiedDocs int    // Documents verified by HR
	Ready        bool   // TotalDocs > 0 && PendingDocs == 0 && VerifiedDocs > 0
	Username     string // Linked account username, empty if no account yet
}

// Credentials is the outcome of credential issuance. Password is the derived
// plaintext sent by email; only its bcrypt hash is stored.
type Credentials struct {
	Username string
	Password string
}
