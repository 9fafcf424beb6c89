package user

import (
	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/session"
)

// User mirrors a record from get_users.php. The client never owns canonical
// user state; any screen revisit re-fetches.
type User struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Role               string       `json:"role"`
	Branch             string       `json:"branch"`
	Email              string       `json:"email"`
	Mobile             string       `json:"mobile"`
	ChildName          null.String  `json:"child_name,omitempty"`
	FranchiseeShare    null.Float64 `json:"franchisee_share,omitempty"`
	OnboardingComplete bool         `json:"onboarding_complete"`
}

func (u User) RecordBranch() string { return u.Branch }
func (u User) RecordOwner() string  { return "" }

func (u User) IsParent() bool {
	return core.CleanString(u.Role, true) == session.RoleParent
}

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Username = core.CleanString(c.Username, true /* lower */)
	return core.TranslateError(core.Validate.Struct(c))
}

// ForgotPassword is the forgot_password.php payload.
type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

func (fp *ForgotPassword) Validate() error {
	fp.Email = core.CleanString(fp.Email, true /* lower */)
	return core.TranslateError(core.Validate.Struct(fp))
}

// UpdateUser defines what information may be provided to modify an existing
// user via edit_user.php.
type UpdateUser struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Mobile string `json:"mobile"`
	Branch string `json:"branch"`
}

func (uu *UpdateUser) Validate() error {
	uu.Name = core.CleanString(uu.Name)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	uu.Mobile = core.CleanString(uu.Mobile)
	return core.TranslateError(core.Validate.Struct(uu))
}

// ProfileUpdate is the update_profile.php payload; PhotoPath, when set,
// is uploaded as the multipart binary field.
type ProfileUpdate struct {
	UserID          string `json:"user_id" validate:"required"`
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password" validate:"omitempty"`
	PasswordConfirm string `json:"password_confirm" validate:"required_with=Password,eqfield=Password"`
	PhotoPath       string `json:"-"`
}

func (pu *ProfileUpdate) Validate(current User) error {
	pu.Name = core.CleanString(pu.Name)
	pu.Email = core.CleanString(pu.Email, true /* lower */)
	pu.Mobile = core.CleanString(pu.Mobile)

	if err := core.TranslateError(core.Validate.Struct(pu)); err != nil {
		return err
	}
	if pu.Password != "" {
		return validatePassword(pu.Password, current.Name, current.Email)
	}
	return nil
}

// QueryFilter narrows get_users.php; empty fields are omitted from the query.
type QueryFilter struct {
	Role   string `query:"role"`
	Branch string `query:"branch"`
	ID     string `query:"id"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Role == "" && qf.Branch == "" && qf.ID == ""
}

func (qf *QueryFilter) Clean() {
	qf.Role = core.CleanString(qf.Role, true /* lower */)
	qf.Branch = core.CleanString(qf.Branch)
	qf.ID = core.CleanString(qf.ID)
}
