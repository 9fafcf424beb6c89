package staff

import (
	"context"
	"errors"

	"github.com/tnhappykids/appcore/core/access"
	"github.com/tnhappykids/appcore/core/session"
)

var (
	// errors
	ErrPermissionDenied = errors.New("not allowed to manage staff")
)

type (
	API interface {
		GetStaff(ctx context.Context, branch string) ([]Staff, error)
		CreateStaff(ctx context.Context, ns NewStaff) error
		UpdateStaff(ctx context.Context, us UpdateStaff) error
		DeleteStaff(ctx context.Context, id string) error
		GetStaffReports(ctx context.Context, branch, month string) ([]Report, error)
		TeacherOnboarding(ctx context.Context, ob Onboarding) error
	}

	Service struct {
		api      API
		sessions *session.Service
	}
)

func NewService(api API, sessions *session.Service) *Service {
	return &Service{api: api, sessions: sessions}
}

// canManage: staff records are managed by administration anywhere and by a
// franchisee within its own branch.
func canManage(s session.Session, branch string) bool {
	return s.IsAdmin() || (s.IsFranchisee() && s.Branch == branch)
}

func (svc *Service) List(ctx context.Context, s session.Session, branch string) ([]Staff, error) {
	staff, err := svc.api.GetStaff(ctx, branch)
	if err != nil {
		return nil, err
	}
	return access.FilterVisible(s, staff), nil
}

func (svc *Service) Create(ctx context.Context, s session.Session, ns NewStaff) error {
	if err := ns.Validate(); err != nil {
		return err
	}
	if !canManage(s, ns.Branch) {
		return ErrPermissionDenied
	}
	return svc.api.CreateStaff(ctx, ns)
}

func (svc *Service) Update(ctx context.Context, s session.Session, us UpdateStaff) error {
	if err := us.Validate(); err != nil {
		return err
	}
	if !canManage(s, us.Branch) {
		return ErrPermissionDenied
	}
	return svc.api.UpdateStaff(ctx, us)
}

func (svc *Service) Delete(ctx context.Context, s session.Session, st Staff) error {
	if !canManage(s, st.Branch) {
		return ErrPermissionDenied
	}
	return svc.api.DeleteStaff(ctx, st.ID)
}

// Reports loads per-staff monthly tallies; franchisees only see their own
// branch regardless of what the backend returns.
func (svc *Service) Reports(ctx context.Context, s session.Session, branch, month string) ([]Report, error) {
	reports, err := svc.api.GetStaffReports(ctx, branch, month)
	if err != nil {
		return nil, err
	}
	return access.FilterVisible(s, reports), nil
}

// CompleteOnboarding submits the teacher onboarding form (photo included)
// and, on success, flips the cached onboarding flag so the next cold start
// routes straight to the dashboard, consistent with what the backend now
// reports for this user.
func (svc *Service) CompleteOnboarding(ctx context.Context, ob Onboarding) error {
	if err := ob.Validate(); err != nil {
		return err
	}
	if err := svc.api.TeacherOnboarding(ctx, ob); err != nil {
		return err
	}
	return svc.sessions.MarkOnboardingComplete()
}
