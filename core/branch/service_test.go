package branch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/branch"
	"github.com/tnhappykids/appcore/core/session"
)

type apiMock struct {
	created    []branch.NewBranch
	deleted    []string
	cameraURLs map[string]string
}

var _ branch.API = (*apiMock)(nil)

func (m *apiMock) GetBranches(context.Context) ([]branch.Branch, error) { return nil, nil }

func (m *apiMock) CreateBranch(_ context.Context, nb branch.NewBranch) error {
	m.created = append(m.created, nb)
	return nil
}

func (m *apiMock) EditBranch(context.Context, branch.UpdateBranch) error { return nil }

func (m *apiMock) DeleteBranch(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *apiMock) EditCameraURL(_ context.Context, branchName, url string) error {
	if m.cameraURLs == nil {
		m.cameraURLs = make(map[string]string)
	}
	m.cameraURLs[branchName] = url
	return nil
}

var (
	admin      = session.Session{UserID: "1", Role: session.RoleAdministration, Authenticated: true}
	franchisee = session.Session{UserID: "2", Role: session.RoleFranchisee, Branch: "Anna Nagar", Authenticated: true}
	teacher    = session.Session{UserID: "3", Role: session.RoleTeacher, Branch: "Anna Nagar", Authenticated: true}
)

func TestManagementIsAdministrationOnly(t *testing.T) {
	api := &apiMock{}
	svc := branch.NewService(api)
	nb := branch.NewBranch{Name: "Velachery", Address: "12 Main Rd"}

	assert.ErrorIs(t, svc.Create(context.Background(), franchisee, nb), branch.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), teacher, "5"), branch.ErrPermissionDenied)
	assert.Empty(t, api.created)
	assert.Empty(t, api.deleted)

	require.NoError(t, svc.Create(context.Background(), admin, nb))
	require.NoError(t, svc.Delete(context.Background(), admin, "5"))
	assert.Len(t, api.created, 1)
	assert.Equal(t, []string{"5"}, api.deleted)
}

func TestCreateValidates(t *testing.T) {
	api := &apiMock{}
	svc := branch.NewService(api)

	err := svc.Create(context.Background(), admin, branch.NewBranch{})

	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, api.created)
}

func TestEditCameraURL(t *testing.T) {
	api := &apiMock{}
	svc := branch.NewService(api)

	t.Run("administration touches any branch", func(t *testing.T) {
		require.NoError(t, svc.EditCameraURL(context.Background(), admin, "Velachery", "rtsp://cam/1"))
		assert.Equal(t, "rtsp://cam/1", api.cameraURLs["Velachery"])
	})

	t.Run("franchisee only its own", func(t *testing.T) {
		require.NoError(t, svc.EditCameraURL(context.Background(), franchisee, "Anna Nagar", "rtsp://cam/2"))
		err := svc.EditCameraURL(context.Background(), franchisee, "Velachery", "rtsp://cam/3")
		assert.ErrorIs(t, err, branch.ErrPermissionDenied)
	})

	t.Run("teacher never", func(t *testing.T) {
		err := svc.EditCameraURL(context.Background(), teacher, "Anna Nagar", "rtsp://cam/4")
		assert.ErrorIs(t, err, branch.ErrPermissionDenied)
	})

	t.Run("branch name required", func(t *testing.T) {
		err := svc.EditCameraURL(context.Background(), admin, "  ", "rtsp://cam/5")
		var vErr *core.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
