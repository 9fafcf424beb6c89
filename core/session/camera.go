package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

var (
	cameraKeySalt = []byte("tnhappykids.appcore.session.camera")

	// errors
	ErrNoCredentials  = errors.New("no cached camera credentials")
	ErrNoSessionToken = errors.New("camera credentials require an authenticated session")
)

// CameraCredentials is the parent login for a branch camera feed. Cached so
// re-entering the camera screen does not prompt again; encrypted at rest
// because the device store is plain files.
type CameraCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// cameraKey derives the secretbox key from the session token. Logging out
// rotates the token, which orphans (and thus effectively wipes) the cache.
func cameraKey(s Session) ([32]byte, error) {
	if !s.Valid() || s.Token == "" {
		return [32]byte{}, ErrNoSessionToken
	}
	return sha256.Sum256(append([]byte(s.Token), cameraKeySalt...)), nil
}

// CacheCameraCredentials encrypts and persists the camera login for the
// current session.
func (svc *Service) CacheCameraCredentials(s Session, creds CameraCredentials) error {
	key, err := cameraKey(s)
	if err != nil {
		return err
	}
	plain, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return err
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &key)
	return svc.store.Set(KeyCameraCred, base64.StdEncoding.EncodeToString(sealed))
}

// CameraCredentials decrypts the cached camera login, or ErrNoCredentials
// when nothing usable is cached. A cache sealed under a previous token fails
// to open and counts as absent.
func (svc *Service) CameraCredentials(s Session) (CameraCredentials, error) {
	key, err := cameraKey(s)
	if err != nil {
		return CameraCredentials{}, err
	}

	raw, ok, err := svc.store.Get(KeyCameraCred)
	if err != nil || !ok {
		return CameraCredentials{}, ErrNoCredentials
	}
	sealed, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(sealed) < 24 {
		return CameraCredentials{}, ErrNoCredentials
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &key)
	if !ok {
		return CameraCredentials{}, ErrNoCredentials
	}
	var creds CameraCredentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return CameraCredentials{}, ErrNoCredentials
	}
	return creds, nil
}
