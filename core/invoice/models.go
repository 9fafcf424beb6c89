package invoice

import (
	"strconv"

	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
)

// Payment modes accepted by create_invoice.php.
const (
	ModeCash   = "cash"
	ModeOnline = "online"
	ModeCheque = "cheque"
)

type Invoice struct {
	ID            string      `json:"id"`
	InvoiceNumber string      `json:"invoice_number"`
	Branch        string      `json:"branch"`
	StudentID     string      `json:"student_id"`
	Particulars   string      `json:"particulars"`
	Amount        float64     `json:"amount"`
	Mode          string      `json:"mode"`
	TransactionID null.String `json:"transaction_id,omitempty"`
	Date          string      `json:"date"`
}

func (inv Invoice) RecordBranch() string { return inv.Branch }
func (inv Invoice) RecordOwner() string  { return "" }
func (inv Invoice) RecordChild() string  { return inv.StudentID }

// NewInvoice is the create_invoice.php payload. InvoiceNumber is filled in
// by the service immediately before submission.
type NewInvoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	Branch        string  `json:"branch" validate:"required"`
	StudentID     string  `json:"student_id" validate:"required"`
	Particulars   string  `json:"particulars" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Mode          string  `json:"mode" validate:"required,oneof=cash online cheque"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Date          string  `json:"date" validate:"required"`
}

func (ni *NewInvoice) Validate() error {
	ni.Branch = core.CleanString(ni.Branch)
	ni.StudentID = core.CleanString(ni.StudentID)
	ni.Particulars = core.CleanString(ni.Particulars)
	ni.Mode = core.CleanString(ni.Mode, true /* lower */)
	return core.TranslateError(core.Validate.Struct(ni))
}

// FeeAssignment is the assign_fee.php form. Amount arrives as raw text from
// the fee input; it is validated before any POST is issued.
type FeeAssignment struct {
	StudentID string `json:"student_id" validate:"required"`
	Amount    string `json:"amount" validate:"required,amount"`
}

func (fa *FeeAssignment) Validate() error {
	fa.StudentID = core.CleanString(fa.StudentID)
	fa.Amount = core.CleanString(fa.Amount)
	return core.TranslateError(core.Validate.Struct(fa))
}

// AmountValue parses the validated amount text.
func (fa FeeAssignment) AmountValue() float64 {
	v, _ := strconv.ParseFloat(fa.Amount, 64)
	return v
}

type QueryFilter struct {
	Branch    string `query:"branch"`
	StudentID string `query:"student_id"`
}

func (qf *QueryFilter) Clean() {
	qf.Branch = core.CleanString(qf.Branch)
	qf.StudentID = core.CleanString(qf.StudentID)
}
