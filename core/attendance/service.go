package attendance

import (
	"context"

	"github.com/tnhappykids/appcore/core"
)

type (
	QueryFilter struct {
		Branch    string `query:"branch"`
		StudentID string `query:"student_id"`
		Date      string `query:"date"`
	}

	API interface {
		GetAttendance(ctx context.Context, filter QueryFilter) ([]Record, error)
		MarkAttendance(ctx context.Context, rec Record) error
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

func (qf *QueryFilter) Clean() {
	qf.Branch = core.CleanString(qf.Branch)
	qf.StudentID = core.CleanString(qf.StudentID)
	qf.Date = core.CleanString(qf.Date)
}

func (svc *Service) List(ctx context.Context, filter QueryFilter) ([]Record, error) {
	filter.Clean()
	return svc.api.GetAttendance(ctx, filter)
}

// Mark validates and submits an attendance record. The backend upserts on
// (student_id, date); Upsert mirrors that into local state so the screen
// reflects the replacement without waiting for the reload.
func (svc *Service) Mark(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return svc.api.MarkAttendance(ctx, rec)
}
