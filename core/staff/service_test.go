package staff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/session"
	"github.com/tnhappykids/appcore/core/staff"
	sessionstore "github.com/tnhappykids/appcore/storage/session"
	testutil "github.com/tnhappykids/appcore/tests"
)

type apiMock struct {
	staff   []staff.Staff
	reports []staff.Report

	created    []staff.NewStaff
	deleted    []string
	onboarded  []staff.Onboarding
	onboardErr error
}

var _ staff.API = (*apiMock)(nil)

func (m *apiMock) GetStaff(context.Context, string) ([]staff.Staff, error) { return m.staff, nil }

func (m *apiMock) CreateStaff(_ context.Context, ns staff.NewStaff) error {
	m.created = append(m.created, ns)
	return nil
}

func (m *apiMock) UpdateStaff(context.Context, staff.UpdateStaff) error { return nil }

func (m *apiMock) DeleteStaff(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *apiMock) GetStaffReports(context.Context, string, string) ([]staff.Report, error) {
	return m.reports, nil
}

func (m *apiMock) TeacherOnboarding(_ context.Context, ob staff.Onboarding) error {
	if m.onboardErr != nil {
		return m.onboardErr
	}
	m.onboarded = append(m.onboarded, ob)
	return nil
}

func setup(t *testing.T, api staff.API) (*staff.Service, *session.Service) {
	sessions := session.NewService(sessionstore.NewMemStore(), testutil.NewLogger(t))
	return staff.NewService(api, sessions), sessions
}

func TestCreateChecksBranchScope(t *testing.T) {
	api := &apiMock{}
	svc, _ := setup(t, api)
	ns := staff.NewStaff{Name: "Ravi", Role: "teacher", Branch: "Velachery", Mobile: "9800000000"}

	franchisee := session.Session{UserID: "2", Role: session.RoleFranchisee, Branch: "Anna Nagar", Authenticated: true}
	assert.ErrorIs(t, svc.Create(context.Background(), franchisee, ns), staff.ErrPermissionDenied)
	assert.Empty(t, api.created)

	admin := session.Session{UserID: "1", Role: session.RoleAdministration, Authenticated: true}
	require.NoError(t, svc.Create(context.Background(), admin, ns))
	require.Len(t, api.created, 1)
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	api := &apiMock{}
	svc, _ := setup(t, api)
	admin := session.Session{UserID: "1", Role: session.RoleAdministration, Authenticated: true}

	err := svc.Create(context.Background(), admin, staff.NewStaff{
		Name: "Ravi", Role: "janitor", Branch: "Anna Nagar", Mobile: "9800000000",
	})

	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "role", vErr.Fields[0].Field)
	assert.Empty(t, api.created)
}

func TestReportsScopedToFranchiseeBranch(t *testing.T) {
	api := &apiMock{reports: []staff.Report{
		{StaffID: "1", Branch: "Anna Nagar", Month: "2026-08", Presents: 20},
		{StaffID: "2", Branch: "Velachery", Month: "2026-08", Presents: 18},
	}}
	svc, _ := setup(t, api)

	franchisee := session.Session{UserID: "2", Role: session.RoleFranchisee, Branch: "Anna Nagar", Authenticated: true}
	got, err := svc.Reports(context.Background(), franchisee, "", "2026-08")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].StaffID)
}

func TestCompleteOnboardingFlipsCachedFlag(t *testing.T) {
	api := &apiMock{}
	svc, sessions := setup(t, api)
	require.NoError(t, sessions.Save(session.Session{
		UserID: "3", Token: "tok", Role: session.RoleTeacher, Authenticated: true,
	}))

	err := svc.CompleteOnboarding(context.Background(), staff.Onboarding{
		TeacherID:     "3",
		Qualification: "B.Ed",
		Address:       "14 School St",
		PhotoPath:     "/tmp/photo.jpg",
	})
	require.NoError(t, err)
	require.Len(t, api.onboarded, 1)

	// next cold start routes straight to the dashboard
	assert.Equal(t, session.DestTeacherDashboard, session.ColdStart(sessions.Load()))
}

func TestCompleteOnboardingFailureKeepsFlag(t *testing.T) {
	api := &apiMock{onboardErr: &core.ServerError{Message: "Upload failed"}}
	svc, sessions := setup(t, api)
	require.NoError(t, sessions.Save(session.Session{
		UserID: "3", Token: "tok", Role: session.RoleTeacher, Authenticated: true,
	}))

	err := svc.CompleteOnboarding(context.Background(), staff.Onboarding{
		TeacherID:     "3",
		Qualification: "B.Ed",
		Address:       "14 School St",
		PhotoPath:     "/tmp/photo.jpg",
	})

	var srvErr *core.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, session.DestTeacherOnboarding, session.ColdStart(sessions.Load()))
}
