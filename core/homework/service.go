package homework

import (
	"context"
	"errors"

	"github.com/tnhappykids/appcore/core"
)

var (
	// ErrMissingStudent indicates the screen was entered without a student
	// id, a navigation error reported inline without any network call.
	ErrMissingStudent = errors.New("no student selected")
)

type (
	API interface {
		GetStudentHomework(ctx context.Context, studentID string) ([]Homework, error)
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

func (svc *Service) List(ctx context.Context, studentID string) ([]Homework, error) {
	studentID = core.CleanString(studentID)
	if studentID == "" {
		return nil, ErrMissingStudent
	}
	return svc.api.GetStudentHomework(ctx, studentID)
}
