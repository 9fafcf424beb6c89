package user

import (
	"context"
	"errors"

	"github.com/tnhappykids/appcore/core/access"
	"github.com/tnhappykids/appcore/core/session"
)

var (
	// errors
	ErrNotFound = errors.New("user not found")
)

type (
	// API is the slice of the backend this package consumes.
	API interface {
		Login(ctx context.Context, creds Credentials) (User, string, error) // user, token
		ForgotPassword(ctx context.Context, email string) error
		GetUsers(ctx context.Context, filter QueryFilter) ([]User, error)
		EditUser(ctx context.Context, uu UpdateUser) error
		UpdateProfile(ctx context.Context, pu ProfileUpdate) error
	}

	Service struct {
		api      API
		sessions *session.Service
	}
)

func NewService(api API, sessions *session.Service) *Service {
	return &Service{api: api, sessions: sessions}
}

// Login authenticates against login.php, persists the resulting session and
// resolves the post-login destination. On an unresolvable role nothing is
// persisted and the destination is Login.
func (svc *Service) Login(ctx context.Context, creds Credentials) (session.Session, session.Destination, error) {
	if err := creds.Validate(); err != nil {
		return session.Unauthenticated, session.DestLogin, err
	}
	usr, token, err := svc.api.Login(ctx, creds)
	if err != nil {
		return session.Unauthenticated, session.DestLogin, err
	}

	s := session.Session{
		UserID:             usr.ID,
		Token:              token,
		Role:               usr.Role,
		Branch:             usr.Branch,
		OnboardingComplete: usr.OnboardingComplete,
	}
	dest, err := svc.sessions.CompleteLogin(s)
	if err != nil {
		return session.Unauthenticated, session.DestLogin, err
	}
	s.Normalize()
	s.Authenticated = true
	return s, dest, nil
}

// Logout clears the persisted session. The backend keeps no session state
// to invalidate.
func (svc *Service) Logout() error {
	return svc.sessions.Clear()
}

func (svc *Service) ForgotPassword(ctx context.Context, fp ForgotPassword) error {
	if err := fp.Validate(); err != nil {
		return err
	}
	return svc.api.ForgotPassword(ctx, fp.Email)
}

// List fetches users and applies the visibility rules the backend does not
// enforce server-side: a franchisee only ever sees its own branch.
func (svc *Service) List(ctx context.Context, s session.Session, filter QueryFilter) ([]User, error) {
	filter.Clean()
	users, err := svc.api.GetUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return access.FilterVisible(s, users), nil
}

func (svc *Service) GetByID(ctx context.Context, s session.Session, id string) (User, error) {
	users, err := svc.List(ctx, s, QueryFilter{ID: id})
	if err != nil {
		return User{}, err
	}
	if len(users) == 0 {
		return User{}, ErrNotFound
	}
	return users[0], nil
}

func (svc *Service) Update(ctx context.Context, uu UpdateUser) error {
	if err := uu.Validate(); err != nil {
		return err
	}
	return svc.api.EditUser(ctx, uu)
}

// UpdateProfile validates (including the password rules) and submits the
// profile change, photo included when present.
func (svc *Service) UpdateProfile(ctx context.Context, current User, pu ProfileUpdate) error {
	if err := pu.Validate(current); err != nil {
		return err
	}
	return svc.api.UpdateProfile(ctx, pu)
}
