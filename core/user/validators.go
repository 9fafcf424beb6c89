package user

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tnhappykids/appcore/core"
)

const (
	pwdMinLen = 8
	pwdMaxSim = 0.7 // max similarity ratio to a user attribute
)

const (
	pwdMinLenText    = "password must be at least 8 characters long"
	pwdNoSpaceText   = "password must not contain spaces"
	pwdNotAllNumText = "password cannot be entirely numeric"
	pwdAttrSimText   = "password is too similar to your name or email"
)

// validatePassword applies the client-side password rules for profile
// password changes. The backend applies its own on top; these exist so the
// round trip is not wasted on obviously bad input.
func validatePassword(pwd string, attrs ...string) error {
	fail := func(text string) error {
		return core.NewValidationError(nil, core.FieldError{Field: "password", Error: text})
	}

	if len(pwd) < pwdMinLen {
		return fail(pwdMinLenText)
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			return fail(pwdNoSpaceText)
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == len(pwd) {
		return fail(pwdNotAllNumText)
	}

	// no user-attribute similarity
	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	lpwd := strings.ToLower(pwd)
	for _, attr := range attrs {
		if getRatio(lpwd, strings.ToLower(attr)) >= pwdMaxSim {
			return fail(pwdAttrSimText)
		}
	}
	return nil
}
