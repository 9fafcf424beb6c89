package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// NowFunc returns the current time; mockable in tests.
var NowFunc = time.Now

// TokenExpired peeks at the token's `exp` claim without verifying the
// signature. The client holds no signing key; the backend re-checks every
// request anyway. Opaque (non-JWT) tokens and tokens without an exp claim
// are treated as non-expiring; only a well-formed JWT whose exp has passed
// forces a re-login.
func TokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	raw, ok := claims["exp"]
	if !ok {
		return false
	}
	var exp int64
	switch v := raw.(type) {
	case float64:
		exp = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return false
		}
		exp = n
	default:
		return false
	}
	return NowFunc().UTC().Unix() >= exp
}
