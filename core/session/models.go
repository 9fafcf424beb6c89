package session

import (
	"github.com/tnhappykids/appcore/core"
)

// Roles
const (
	RoleAdministration = "administration"
	RoleFranchisee     = "franchisee"
	RoleTeacher        = "teacher"
	RoleParent         = "parent"
	RoleTuitionTeacher = "tuition_teacher"
	RoleTuitionStudent = "tuition_student"
)

var AllRoles = []string{
	RoleAdministration,
	RoleFranchisee,
	RoleTeacher,
	RoleParent,
	RoleTuitionTeacher,
	RoleTuitionStudent,
}

func IsValidRole(role string) bool {
	role = core.CleanString(role, true /* lower */)
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the device-resident authentication identity. It is the only
// mutable state shared across screens; everything else is a transient mirror
// of server data.
type Session struct {
	UserID             string `json:"user_id"`
	Token              string `json:"token"`
	Role               string `json:"role"`
	Branch             string `json:"branch"`
	Authenticated      bool   `json:"authenticated"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// Unauthenticated is the zero session returned whenever no valid identity is
// available. Storage failures always degrade to it, never to a dashboard.
var Unauthenticated = Session{}

// Normalize lower-cases the role and trims identity fields; roles are always
// compared lower-cased.
func (s *Session) Normalize() {
	s.UserID = core.CleanString(s.UserID)
	s.Role = core.CleanString(s.Role, true /* lower */)
	s.Branch = core.CleanString(s.Branch)
}

// Valid reports whether the session represents an authenticated identity.
// Authenticated with an empty UserID is a torn write and counts as invalid.
func (s Session) Valid() bool {
	return s.Authenticated && s.UserID != ""
}

func (s Session) roleIs(role string) bool {
	return core.CleanString(s.Role, true) == role
}

func (s Session) IsAdmin() bool          { return s.roleIs(RoleAdministration) }
func (s Session) IsFranchisee() bool     { return s.roleIs(RoleFranchisee) }
func (s Session) IsTeacher() bool        { return s.roleIs(RoleTeacher) }
func (s Session) IsParent() bool         { return s.roleIs(RoleParent) }
func (s Session) IsTuitionTeacher() bool { return s.roleIs(RoleTuitionTeacher) }
func (s Session) IsTuitionStudent() bool { return s.roleIs(RoleTuitionStudent) }

// AnyTeacher covers both regular and tuition teachers, which share ownership
// rules over the records they create.
func (s Session) AnyTeacher() bool { return s.IsTeacher() || s.IsTuitionTeacher() }
