package invoiceservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
	"partshub/internal/service/invoiceservice"
	"partshub/internal/store"
)

type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) Invoices() []domain.Invoice {
	return m.Called().Get(0).([]domain.Invoice)
}
func (m *MockInvoiceStore) PayInvoice(id string) (domain.Invoice, domain.InvoiceStatus, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Invoice), args.Get(1).(domain.InvoiceStatus), args.Bool(2)
}

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) ArchiveInvoicePayment(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObserveInvoicePaid() { m.Called() }

func TestPayInvoice_Success(t *testing.T) {
	mockStore, arch, met := new(MockInvoiceStore), new(MockArchiver), new(MockMetrics)
	svc := invoiceservice.NewService(mockStore, arch, met, logger.NewNop())

	paid := domain.Invoice{ID: "INV-1", Amount: 175, Status: domain.InvoicePaid}
	mockStore.On("PayInvoice", "INV-1").Return(paid, domain.InvoicePending, true)
	met.On("ObserveInvoicePaid").Return()
	arch.On("ArchiveInvoicePayment", mock.Anything, paid).Return(errors.New("db fora"))

	inv, err := svc.PayInvoice(context.Background(), "INV-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	mockStore.AssertExpectations(t)
	arch.AssertExpectations(t)
	met.AssertExpectations(t)
}

func TestPayInvoice_NotFound(t *testing.T) {
	mockStore, arch, met := new(MockInvoiceStore), new(MockArchiver), new(MockMetrics)
	svc := invoiceservice.NewService(mockStore, arch, met, logger.NewNop())
	mockStore.On("PayInvoice", "INV-x").Return(domain.Invoice{}, domain.InvoiceStatus(""), false)

	_, err := svc.PayInvoice(context.Background(), "INV-x")

	assert.IsType(t, &apperror.NotFoundError{}, err)
	met.AssertNotCalled(t, "ObserveInvoicePaid")
	arch.AssertNotCalled(t, "ArchiveInvoicePayment", mock.Anything, mock.Anything)
}

func TestPayInvoice_TwiceStaysPaid(t *testing.T) {
	st := store.NewSeeded()
	arch, met := new(MockArchiver), new(MockMetrics)
	arch.On("ArchiveInvoicePayment", mock.Anything, mock.Anything).Return(nil).Once()
	met.On("ObserveInvoicePaid").Return().Once()
	svc := invoiceservice.NewService(st, arch, met, logger.NewNop())

	for i := 0; i < 2; i++ {
		inv, err := svc.PayInvoice(context.Background(), "INV-2023-001")
		require.NoError(t, err)
		assert.Equal(t, domain.InvoicePaid, inv.Status)
	}

	// só o primeiro pagamento muda estado, conta e arquiva
	met.AssertNumberOfCalls(t, "ObserveInvoicePaid", 1)
	arch.AssertNumberOfCalls(t, "ArchiveInvoicePayment", 1)

	pending, err := svc.ListInvoices(context.Background(), domain.InvoicePending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestListInvoices_Filter(t *testing.T) {
	svc := invoiceservice.NewService(store.NewSeeded(), new(MockArchiver), new(MockMetrics), logger.NewNop())

	all, err := svc.ListInvoices(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	paid, err := svc.ListInvoices(context.Background(), domain.InvoicePaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "INV-2023-002", paid[0].ID)

	_, err = svc.ListInvoices(context.Background(), "void")
	assert.IsType(t, &apperror.ValidationError{}, err)
}
