// Package access centralizes the permission and visibility rules that every
// list screen applies to user/activity/invoice data. The backend does not
// always scope queries server-side, so these checks are the only enforcement
// the client has: they run on loaded data, before any action is offered.
package access

import (
	"github.com/tnhappykids/appcore/core/session"
)

// Record is any server record that can be branch-scoped and owned.
type Record interface {
	// RecordBranch returns the branch name the record belongs to ("" if unscoped).
	RecordBranch() string
	// RecordOwner returns the id of the teacher that created the record ("" if unowned).
	RecordOwner() string
}

// ChildRecord is a record attributable to a specific child/student.
type ChildRecord interface {
	RecordChild() string
}

type Capabilities struct {
	CanEdit   bool
	CanDelete bool
}

// Can resolves what the session may do to a record. Administration bypasses
// everything; a franchisee may mutate records of its own branch; a teacher
// only records it owns. Everyone else is read-only. The check runs before
// the edit/delete action is rendered, not after it is tapped.
func Can(s session.Session, rec Record) Capabilities {
	switch {
	case s.IsAdmin():
		return Capabilities{CanEdit: true, CanDelete: true}
	case s.IsFranchisee():
		ok := rec.RecordBranch() != "" && rec.RecordBranch() == s.Branch
		return Capabilities{CanEdit: ok, CanDelete: ok}
	case s.AnyTeacher():
		ok := rec.RecordOwner() != "" && rec.RecordOwner() == s.UserID
		return Capabilities{CanEdit: ok, CanDelete: ok}
	default:
		return Capabilities{}
	}
}

// FilterVisible narrows a loaded list to what the session may see.
// Administration sees everything (identity). A franchisee sees only records
// of its own branch. Other roles get the list as the server returned it;
// their endpoints are already scoped by query parameters. Server order is
// preserved.
func FilterVisible[T Record](s session.Session, items []T) []T {
	if !s.IsFranchisee() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordBranch() == s.Branch {
			out = append(out, it)
		}
	}
	return out
}

// ChildFirst stably partitions items so those belonging to childID come
// first. Scoping for parents is an ordering preference, not a filter:
// nothing is dropped, and relative order within each partition is preserved.
// An empty childID is a no-op.
func ChildFirst[T ChildRecord](childID string, items []T) []T {
	if childID == "" {
		return items
	}
	out := make([]T, 0, len(items))
	rest := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordChild() == childID {
			out = append(out, it)
		} else {
			rest = append(rest, it)
		}
	}
	return append(out, rest...)
}
