package activity

import (
	"context"
	"errors"

	"github.com/tnhappykids/appcore/core/access"
	"github.com/tnhappykids/appcore/core/session"
)

var (
	// errors
	ErrPermissionDenied = errors.New("not allowed to modify this activity")
)

type (
	API interface {
		GetActivities(ctx context.Context, filter QueryFilter) ([]Activity, error)
		DeleteActivity(ctx context.Context, id string) error
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

// List fetches activities, applies franchisee branch scoping and, for a
// parent with a selected child, floats that child's activities to the top
// without dropping the rest. Server order is preserved within each group.
func (svc *Service) List(ctx context.Context, s session.Session, filter QueryFilter) ([]Activity, error) {
	filter.Clean()
	acts, err := svc.api.GetActivities(ctx, filter)
	if err != nil {
		return nil, err
	}
	acts = access.FilterVisible(s, acts)
	if s.IsParent() {
		acts = access.ChildFirst(filter.ChildID, acts)
	}
	return acts, nil
}

// Can resolves edit/delete permission for an activity: the owning teacher,
// the branch franchisee or administration. Screens call this before
// rendering the actions.
func (svc *Service) Can(s session.Session, act Activity) access.Capabilities {
	return access.Can(s, act)
}

// Delete removes an activity. The permission check is repeated here so the
// call fails even if a screen forgot to gate the action.
func (svc *Service) Delete(ctx context.Context, s session.Session, act Activity) error {
	if !access.Can(s, act).CanDelete {
		return ErrPermissionDenied
	}
	return svc.api.DeleteActivity(ctx, act.ID)
}
