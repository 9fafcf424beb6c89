package invoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/invoice"
	"github.com/tnhappykids/appcore/core/session"
)

type apiMock struct {
	invoices []invoice.Invoice

	nextNumber    string
	nextNumCalls  int
	created       []invoice.NewInvoice
	feeStudentIDs []string
	feeAmounts    []float64
}

var _ invoice.API = (*apiMock)(nil)

func (m *apiMock) GetInvoices(context.Context, invoice.QueryFilter) ([]invoice.Invoice, error) {
	return m.invoices, nil
}

func (m *apiMock) NextInvoiceNumber(context.Context, string, string) (string, error) {
	m.nextNumCalls++
	return m.nextNumber, nil
}

func (m *apiMock) CreateInvoice(_ context.Context, ni invoice.NewInvoice) (invoice.Invoice, error) {
	m.created = append(m.created, ni)
	return invoice.Invoice{ID: "900", InvoiceNumber: ni.InvoiceNumber}, nil
}

func (m *apiMock) AssignFee(_ context.Context, studentID string, amount float64) error {
	m.feeStudentIDs = append(m.feeStudentIDs, studentID)
	m.feeAmounts = append(m.feeAmounts, amount)
	return nil
}

func TestAssignFeeRejectsInvalidAmountClientSide(t *testing.T) {
	api := &apiMock{}
	svc := invoice.NewService(api)

	err := svc.AssignFee(context.Background(), invoice.FeeAssignment{StudentID: "7", Amount: "abc"})

	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotEmpty(t, vErr.Fields)
	assert.Equal(t, "Enter a valid fee amount", vErr.Fields[0].Error)
	assert.Empty(t, api.feeAmounts) // no POST issued
}

func TestAssignFeeSubmitsExactlyOnce(t *testing.T) {
	api := &apiMock{}
	svc := invoice.NewService(api)

	require.NoError(t, svc.AssignFee(context.Background(), invoice.FeeAssignment{StudentID: "7", Amount: "250"}))

	require.Len(t, api.feeAmounts, 1)
	assert.Equal(t, 250.0, api.feeAmounts[0])
	assert.Equal(t, "7", api.feeStudentIDs[0])
}

func TestCreateFetchesAdvisoryNumberBeforeSubmission(t *testing.T) {
	api := &apiMock{nextNumber: "INV-0042"}
	svc := invoice.NewService(api)

	inv, err := svc.Create(context.Background(), invoice.NewInvoice{
		Branch:      "Anna Nagar",
		StudentID:   "7",
		Particulars: "Term Fee",
		Amount:      2500,
		Mode:        invoice.ModeCash,
		Date:        "2026-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, api.nextNumCalls)
	require.Len(t, api.created, 1)
	assert.Equal(t, "INV-0042", api.created[0].InvoiceNumber)
	assert.Equal(t, "INV-0042", inv.InvoiceNumber)
}

func TestCreateValidates(t *testing.T) {
	api := &apiMock{nextNumber: "INV-0001"}
	svc := invoice.NewService(api)

	_, err := svc.Create(context.Background(), invoice.NewInvoice{Branch: "Anna Nagar"})

	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, api.nextNumCalls) // nothing fetched for invalid input
	assert.Empty(t, api.created)
}

func TestListScopesAndOrders(t *testing.T) {
	api := &apiMock{invoices: []invoice.Invoice{
		{ID: "1", Branch: "Anna Nagar", StudentID: "a"},
		{ID: "2", Branch: "Velachery", StudentID: "b"},
		{ID: "3", Branch: "Anna Nagar", StudentID: "mine"},
	}}
	svc := invoice.NewService(api)

	t.Run("franchisee", func(t *testing.T) {
		franchisee := session.Session{UserID: "9", Role: session.RoleFranchisee, Branch: "Anna Nagar", Authenticated: true}
		got, err := svc.List(context.Background(), franchisee, invoice.QueryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, inv := range got {
			assert.Equal(t, "Anna Nagar", inv.Branch)
		}
	})

	t.Run("administration sees everything", func(t *testing.T) {
		admin := session.Session{UserID: "1", Role: session.RoleAdministration, Authenticated: true}
		got, err := svc.List(context.Background(), admin, invoice.QueryFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("parent sees own child first", func(t *testing.T) {
		parent := session.Session{UserID: "4", Role: session.RoleParent, Branch: "Anna Nagar", Authenticated: true}
		got, err := svc.List(context.Background(), parent, invoice.QueryFilter{StudentID: "mine"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "3", got[0].ID) // child's invoice floats up, rest keep order
		assert.Equal(t, "1", got[1].ID)
		assert.Equal(t, "2", got[2].ID)
	})
}
