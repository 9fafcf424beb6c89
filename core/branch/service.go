package branch

import (
	"context"
	"errors"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/session"
)

var (
	// errors
	ErrPermissionDenied = errors.New("not allowed to manage this branch")
)

type (
	API interface {
		GetBranches(ctx context.Context) ([]Branch, error)
		CreateBranch(ctx context.Context, nb NewBranch) error
		EditBranch(ctx context.Context, ub UpdateBranch) error
		DeleteBranch(ctx context.Context, id string) error
		EditCameraURL(ctx context.Context, branchName, url string) error
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

func (svc *Service) List(ctx context.Context) ([]Branch, error) {
	return svc.api.GetBranches(ctx)
}

// Create/Edit/Delete are administration-only; the check runs before any
// network call so the actions are never even offered to other roles.

func (svc *Service) Create(ctx context.Context, s session.Session, nb NewBranch) error {
	if !s.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := nb.Validate(); err != nil {
		return err
	}
	return svc.api.CreateBranch(ctx, nb)
}

func (svc *Service) Edit(ctx context.Context, s session.Session, ub UpdateBranch) error {
	if !s.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := ub.Validate(); err != nil {
		return err
	}
	return svc.api.EditBranch(ctx, ub)
}

func (svc *Service) Delete(ctx context.Context, s session.Session, id string) error {
	if !s.IsAdmin() {
		return ErrPermissionDenied
	}
	return svc.api.DeleteBranch(ctx, id)
}

// EditCameraURL updates the camera feed URL of a branch. Administration may
// touch any branch; a franchisee only its own.
func (svc *Service) EditCameraURL(ctx context.Context, s session.Session, branchName, url string) error {
	branchName = core.CleanString(branchName)
	if branchName == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "branch", Error: "this field is required"})
	}
	if !s.IsAdmin() && !(s.IsFranchisee() && s.Branch == branchName) {
		return ErrPermissionDenied
	}
	return svc.api.EditCameraURL(ctx, branchName, core.CleanString(url))
}
