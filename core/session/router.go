package session

import "github.com/tnhappykids/appcore/core"

// Destination identifies a navigation target in the mobile shell.
type Destination string

const (
	DestLogin                   Destination = "Login"
	DestAdministrationDashboard Destination = "AdministrationDashboard"
	DestFranchiseeDashboard     Destination = "FranchiseeDashboard"
	DestTeacherDashboard        Destination = "TeacherDashboard"
	DestTeacherOnboarding       Destination = "TeacherOnboarding"
	DestParentDashboard         Destination = "ParentDashboard"
	DestParentOnboarding        Destination = "ParentOnboarding"
	DestTuitionTeacherDashboard Destination = "TuitionTeacherDashboard"
	DestTuitionStudentDashboard Destination = "TuitionStudentDashboard"
)

// Resolve maps a role to its dashboard. Teacher and parent roles detour to
// their onboarding screen until onboarding is complete. Unrecognized or
// missing roles map to Login, deliberately in the post-login path too:
// falling back to the administration dashboard on bad data would hand out
// the widest capability set, so the router fails closed instead.
func Resolve(role string, onboardingComplete bool) Destination {
	switch core.CleanString(role, true /* lower */) {
	case RoleAdministration:
		return DestAdministrationDashboard
	case RoleFranchisee:
		return DestFranchiseeDashboard
	case RoleTeacher:
		if !onboardingComplete {
			return DestTeacherOnboarding
		}
		return DestTeacherDashboard
	case RoleTuitionTeacher:
		if !onboardingComplete {
			return DestTeacherOnboarding
		}
		return DestTuitionTeacherDashboard
	case RoleParent:
		if !onboardingComplete {
			return DestParentOnboarding
		}
		return DestParentDashboard
	case RoleTuitionStudent:
		return DestTuitionStudentDashboard
	default:
		return DestLogin
	}
}

// ColdStart decides the initial route from the persisted session alone; no
// network round trip is involved.
func ColdStart(s Session) Destination {
	if !s.Valid() {
		return DestLogin
	}
	return Resolve(s.Role, s.OnboardingComplete)
}

// CompleteLogin resolves the post-login destination and persists the session
// so a subsequent cold start reaches the same dashboard without
// re-authenticating. A session whose role does not resolve is not persisted.
func (svc *Service) CompleteLogin(s Session) (Destination, error) {
	s.Normalize()
	s.Authenticated = true
	dest := Resolve(s.Role, s.OnboardingComplete)
	if dest == DestLogin {
		return DestLogin, ErrUnknownRole
	}
	if err := svc.Save(s); err != nil {
		return DestLogin, err
	}
	return dest, nil
}
