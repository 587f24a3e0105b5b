package models

// Account roles. Five variants exist in the data, but routing collapses to
// two behaviors: the HR surface and the employee surface.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleHR         = "HR"
	RoleManager    = "MANAGER"
	RoleAdmin      = "ADMIN"
	RoleEmployee   = "EMPLOYEE"
)

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleHR, RoleManager, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// IsHR reports whether the role may use the HR surface (invites, document
// review, credential issuance).
func IsHR(role string) bool {
	return role == RoleHR || role == RoleSuperAdmin
}

// CanApprove reports whether the role may approve attendance requests.
func CanApprove(role string) bool {
	return IsHR(role) || role == RoleAdmin
}

// RedirectForRole maps a role onto its post-login landing path.
func RedirectForRole(role string) string {
	if IsHR(role) {
		return "/hr/dashboard"
	}
	return "/employee/dashboard"
}
