package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tnhappykids/appcore/core/invoice"
)

var _ invoice.API = (*Client)(nil)

func (c *Client) GetInvoices(ctx context.Context, filter invoice.QueryFilter) ([]invoice.Invoice, error) {
	query := url.Values{}
	if filter.Branch != "" {
		query.Set("branch", filter.Branch)
	}
	if filter.StudentID != "" {
		query.Set("student_id", filter.StudentID)
	}
	var invs []invoice.Invoice
	if err := c.get(ctx, "get_invoices.php", query, "invoices", &invs); err != nil {
		return nil, err
	}
	return invs, nil
}

func (c *Client) NextInvoiceNumber(ctx context.Context, branchName, particulars string) (string, error) {
	query := url.Values{
		"branch":      {branchName},
		"particulars": {particulars},
	}
	var number string
	if err := c.get(ctx, "get_next_invoice_number.php", query, "invoice_number", &number); err != nil {
		return "", err
	}
	return number, nil
}

func (c *Client) CreateInvoice(ctx context.Context, ni invoice.NewInvoice) (invoice.Invoice, error) {
	raw, err := c.postJSON(ctx, "create_invoice.php", ni)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv := invoice.Invoice{
		InvoiceNumber: ni.InvoiceNumber,
		Branch:        ni.Branch,
		StudentID:     ni.StudentID,
		Particulars:   ni.Particulars,
		Amount:        ni.Amount,
		Mode:          ni.Mode,
		Date:          ni.Date,
	}
	if rawID, ok := raw["id"]; ok {
		inv.ID = rawString(rawID)
	}
	return inv, nil
}

func (c *Client) AssignFee(ctx context.Context, studentID string, amount float64) error {
	_, err := c.postForm(ctx, "assign_fee.php", url.Values{
		"student_id": {studentID},
		"amount":     {strconv.FormatFloat(amount, 'f', -1, 64)},
	})
	return err
}
