package activity

import (
	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
)

// Activity is a classroom activity posted by a teacher, scoped to a branch.
type Activity struct {
	ID          string      `json:"id"`
	ChildID     string      `json:"kid_id"`
	Branch      string      `json:"branch"`
	Description string      `json:"description"`
	ImagePath   null.String `json:"image_path,omitempty"`
	TeacherID   string      `json:"teacher_id"`
	CreatedAt   string      `json:"created_at"`
}

func (a Activity) RecordBranch() string { return a.Branch }
func (a Activity) RecordOwner() string  { return a.TeacherID }
func (a Activity) RecordChild() string  { return a.ChildID }

// QueryFilter narrows get_activities.php. Date is the server-side filter;
// ChildID drives the parent-first ordering client-side.
type QueryFilter struct {
	Date    string `query:"date"`
	Branch  string `query:"branch"`
	ChildID string `query:"-"`
}

func (qf *QueryFilter) Clean() {
	qf.Date = core.CleanString(qf.Date)
	qf.Branch = core.CleanString(qf.Branch)
	qf.ChildID = core.CleanString(qf.ChildID)
}
