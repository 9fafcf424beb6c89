package session

// Storage keys. These mirror the keys the mobile shell historically kept in
// its device key-value store, so an upgraded install finds its session.
const (
	KeyUserID     = "userId"
	KeyToken      = "userToken"
	KeyRole       = "userRole"
	KeyBranch     = "userBranch"
	KeyAuth       = "authenticated"
	KeyOnboarding = "onboardingComplete"
	KeyCameraCred = "cameraCredentials"
)

// AllKeys lists every key the session layer owns, in clearing order: the
// auth flag goes first so a partially failed logout can never leave an
// authenticated flag pointing at stale identity data.
var AllKeys = []string{
	KeyAuth,
	KeyToken,
	KeyRole,
	KeyBranch,
	KeyOnboarding,
	KeyCameraCred,
	KeyUserID,
}

// Store is durable device key-value storage.
type Store interface {
	// Set persists value under key. A Set must be durable on return.
	Set(key, value string) error
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
