package branch

import (
	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
)

// Branch is a physical franchise location. Other entities reference it by
// name, not id. Renaming a branch does not cascade, a known consistency
// risk inherited from the backend.
type Branch struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	CameraURL null.String `json:"camera_url,omitempty"`
}

func (b Branch) RecordBranch() string { return b.Name }
func (b Branch) RecordOwner() string  { return "" }

type NewBranch struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (nb *NewBranch) Validate() error {
	nb.Name = core.CleanString(nb.Name)
	nb.Address = core.CleanString(nb.Address)
	return core.TranslateError(core.Validate.Struct(nb))
}

type UpdateBranch struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (ub *UpdateBranch) Validate() error {
	ub.Name = core.CleanString(ub.Name)
	ub.Address = core.CleanString(ub.Address)
	return core.TranslateError(core.Validate.Struct(ub))
}
