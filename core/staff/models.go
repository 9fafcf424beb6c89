package staff

import (
	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/session"
)

// Staff mirrors a row from get_staff.php.
type Staff struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Role            string       `json:"role"`
	Branch          string       `json:"branch"`
	Email           string       `json:"email"`
	Mobile          string       `json:"mobile"`
	FranchiseeShare null.Float64 `json:"franchisee_share,omitempty"`
}

func (st Staff) RecordBranch() string { return st.Branch }
func (st Staff) RecordOwner() string  { return "" }

// Report is a row from get_staff_reports.php: per-staff monthly attendance
// tallies.
type Report struct {
	StaffID  string `json:"staff_id"`
	Name     string `json:"name"`
	Branch   string `json:"branch"`
	Month    string `json:"month"`
	Presents int    `json:"presents"`
	Absents  int    `json:"absents"`
}

func (r Report) RecordBranch() string { return r.Branch }
func (r Report) RecordOwner() string  { return "" }

type NewStaff struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Branch string `json:"branch" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Mobile string `json:"mobile" validate:"required"`
}

func (ns *NewStaff) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Role = core.CleanString(ns.Role, true /* lower */)
	ns.Branch = core.CleanString(ns.Branch)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Mobile = core.CleanString(ns.Mobile)
	if err := core.TranslateError(core.Validate.Struct(ns)); err != nil {
		return err
	}
	if !session.IsValidRole(ns.Role) {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "unknown role"})
	}
	return nil
}

type UpdateStaff struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Email  string `json:"email" validate:"omitempty,email"`
	Mobile string `json:"mobile"`
}

func (us *UpdateStaff) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Branch = core.CleanString(us.Branch)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Mobile = core.CleanString(us.Mobile)
	return core.TranslateError(core.Validate.Struct(us))
}

// Onboarding is the teacher_onboarding.php payload; PhotoPath is uploaded
// as the multipart binary field.
type Onboarding struct {
	TeacherID     string `json:"teacher_id" validate:"required"`
	Qualification string `json:"qualification" validate:"required"`
	Experience    string `json:"experience"`
	Address       string `json:"address" validate:"required"`
	PhotoPath     string `json:"-" validate:"required"`
}

func (ob *Onboarding) Validate() error {
	ob.Qualification = core.CleanString(ob.Qualification)
	ob.Experience = core.CleanString(ob.Experience)
	ob.Address = core.CleanString(ob.Address)
	return core.TranslateError(core.Validate.Struct(ob))
}
