package session

import (
	"errors"
	"strconv"

	"github.com/tnhappykids/appcore/core"
)

var (
	// errors
	ErrInvalidSession = errors.New("authenticated session requires a user id")
	ErrUnknownRole    = errors.New("unknown role")
)

// Service owns session persistence. Screens never touch the Store directly;
// they go through the Service so the write-ordering and fail-open-to-login
// guarantees hold everywhere.
type Service struct {
	store  Store
	logger core.Logger
}

func NewService(store Store, logger core.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Save persists the session. Identity fields are written before the auth
// flag so a crash mid-write cannot leave authenticated=true with an empty
// user id; Load treats that torn state as unauthenticated regardless.
func (svc *Service) Save(s Session) error {
	s.Normalize()
	if s.Authenticated && s.UserID == "" {
		return ErrInvalidSession
	}

	writes := []struct{ key, val string }{
		{KeyUserID, s.UserID},
		{KeyToken, s.Token},
		{KeyRole, s.Role},
		{KeyBranch, s.Branch},
		{KeyOnboarding, strconv.FormatBool(s.OnboardingComplete)},
		{KeyAuth, strconv.FormatBool(s.Authenticated)}, // last
	}
	for _, w := range writes {
		if err := svc.store.Set(w.key, w.val); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the previously saved session or Unauthenticated. It never
// fails: storage errors, torn writes and expired tokens all degrade to the
// login screen, never to a dashboard.
func (svc *Service) Load() Session {
	get := func(key string) (string, bool) {
		val, ok, err := svc.store.Get(key)
		if err != nil {
			svc.logger.Warn("session: reading "+key+", treating as unauthenticated", err)
			return "", false
		}
		return val, ok
	}

	authRaw, ok := get(KeyAuth)
	if !ok {
		return Unauthenticated
	}
	authenticated, err := strconv.ParseBool(authRaw)
	if err != nil || !authenticated {
		return Unauthenticated
	}

	s := Session{Authenticated: true}
	s.UserID, _ = get(KeyUserID)
	s.Token, _ = get(KeyToken)
	s.Role, _ = get(KeyRole)
	s.Branch, _ = get(KeyBranch)
	if raw, ok := get(KeyOnboarding); ok {
		s.OnboardingComplete, _ = strconv.ParseBool(raw)
	}
	s.Normalize()

	if !s.Valid() {
		return Unauthenticated
	}
	if TokenExpired(s.Token) {
		svc.logger.Info("session: token expired, forcing re-login", map[string]interface{}{"userId": s.UserID})
		return Unauthenticated
	}
	return s
}

// Clear removes every session key independently: a failure on one key never
// prevents the others from being attempted, so a partial logout cannot
// resurrect stale role data. The first error is reported after all deletes
// ran.
func (svc *Service) Clear() error {
	var firstErr error
	for _, key := range AllKeys {
		if err := svc.store.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MarkOnboardingComplete flips the cached onboarding flag once the backend
// has accepted the onboarding submission, so the next cold start routes to
// the dashboard instead of the onboarding screen.
func (svc *Service) MarkOnboardingComplete() error {
	return svc.store.Set(KeyOnboarding, strconv.FormatBool(true))
}
