package invoice

import (
	"context"

	"github.com/tnhappykids/appcore/core/access"
	"github.com/tnhappykids/appcore/core/session"
)

type (
	API interface {
		GetInvoices(ctx context.Context, filter QueryFilter) ([]Invoice, error)
		// NextInvoiceNumber returns the next number for branch+particulars.
		NextInvoiceNumber(ctx context.Context, branch, particulars string) (string, error)
		CreateInvoice(ctx context.Context, ni NewInvoice) (Invoice, error)
		AssignFee(ctx context.Context, studentID string, amount float64) error
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

// List fetches invoices with franchisee branch scoping applied client-side;
// a parent viewing fees gets their own child's invoices first.
func (svc *Service) List(ctx context.Context, s session.Session, filter QueryFilter) ([]Invoice, error) {
	filter.Clean()
	invs, err := svc.api.GetInvoices(ctx, filter)
	if err != nil {
		return nil, err
	}
	invs = access.FilterVisible(s, invs)
	if s.IsParent() {
		invs = access.ChildFirst(filter.StudentID, invs)
	}
	return invs, nil
}

// NextNumber asks the backend for the next invoice number for
// branch+particulars. The number is advisory only: there is no server-side
// reservation, so two concurrent sessions on the same branch can be handed
// the same number. Known race; fixing it needs an atomic counter on the
// backend.
func (svc *Service) NextNumber(ctx context.Context, branch, particulars string) (string, error) {
	return svc.api.NextInvoiceNumber(ctx, branch, particulars)
}

// Create validates the invoice, fetches the advisory next number
// immediately before submission, and submits.
func (svc *Service) Create(ctx context.Context, ni NewInvoice) (Invoice, error) {
	if err := ni.Validate(); err != nil {
		return Invoice{}, err
	}
	num, err := svc.api.NextInvoiceNumber(ctx, ni.Branch, ni.Particulars)
	if err != nil {
		return Invoice{}, err
	}
	ni.InvoiceNumber = num
	return svc.api.CreateInvoice(ctx, ni)
}

// AssignFee validates the raw amount text client-side; invalid input is
// rejected with "Enter a valid fee amount" and no POST is issued. It then
// submits exactly one request.
func (svc *Service) AssignFee(ctx context.Context, fa FeeAssignment) error {
	if err := fa.Validate(); err != nil {
		return err
	}
	return svc.api.AssignFee(ctx, fa.StudentID, fa.AmountValue())
}
