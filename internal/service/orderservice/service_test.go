package orderservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
	"partshub/internal/service/orderservice"
	"partshub/internal/store"
)

// MockArchiver é uma implementação mock da interface Archiver.
type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) ArchiveWarehouseOrder(ctx context.Context, order domain.WarehouseOrder, invoice domain.Invoice) error {
	return m.Called(ctx, order, invoice).Error(0)
}

// MockMetrics registra as chamadas de contagem.
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObserveOrder(kind string) { m.Called(kind) }

var noDelay = orderservice.Config{ActiveRetailerID: "r1"}

func newService(t *testing.T, cfg orderservice.Config) (*orderservice.Service, *store.Store, *MockArchiver, *MockMetrics) {
	t.Helper()
	st := store.NewSeeded()
	arch := new(MockArchiver)
	met := new(MockMetrics)
	return orderservice.NewService(st, arch, met, cfg, logger.NewNop()), st, arch, met
}

func TestPlaceOrder_ClearsCart(t *testing.T) {
	svc, st, _, met := newService(t, noDelay)
	met.On("ObserveOrder", "customer").Return()

	p, _ := st.Part("p1")
	st.AddToCart(p, 2)

	order, err := svc.PlaceOrder(context.Background(), domain.OrderDetails{RetailerName: "SpeedFix Motors"})

	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Total)
	assert.Equal(t, "SpeedFix Motors", order.RetailerName)
	assert.Equal(t, domain.OrderProcessing, order.Status)
	assert.Empty(t, st.Cart())
	met.AssertExpectations(t)
}

func TestPlaceOrder_CancelledBeforeDelay_NoStateChange(t *testing.T) {
	svc, st, _, met := newService(t, orderservice.Config{OrderDelay: time.Hour})
	p, _ := st.Part("p1")
	st.AddToCart(p, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.PlaceOrder(ctx, domain.OrderDetails{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, st.Orders())
	assert.Len(t, st.Cart(), 1)
	met.AssertNotCalled(t, "ObserveOrder", mock.Anything)
}

func TestPlaceOrder_WaitsForDelay(t *testing.T) {
	svc, _, _, met := newService(t, orderservice.Config{OrderDelay: 30 * time.Millisecond})
	met.On("ObserveOrder", "customer").Return()

	start := time.Now()
	_, err := svc.PlaceOrder(context.Background(), domain.OrderDetails{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPlaceWarehouseOrder_InvoiceAt70Percent(t *testing.T) {
	svc, st, arch, met := newService(t, noDelay)
	met.On("ObserveOrder", "warehouse").Return()
	arch.On("ArchiveWarehouseOrder", mock.Anything, mock.AnythingOfType("domain.WarehouseOrder"), mock.AnythingOfType("domain.Invoice")).Return(nil)
	invoicesBefore := len(st.Invoices())

	receipt, err := svc.PlaceWarehouseOrder(context.Background(), domain.WarehouseOrderRequest{
		Items: []domain.ItemRequest{{PartID: "p1", Quantity: 10}, {PartID: "p8", Quantity: 1}},
	})

	require.NoError(t, err)
	want := (250.0*10 + 8500.0) * 0.7
	assert.InDelta(t, want, receipt.Order.Total, 1e-9)
	assert.InDelta(t, want, receipt.Invoice.Amount, 1e-9)
	assert.Equal(t, receipt.Order.ID, receipt.Invoice.OrderID)
	assert.Equal(t, receipt.Order.Date.AddDate(0, 0, 30), receipt.Invoice.DueDate)
	assert.Len(t, st.Invoices(), invoicesBefore+1)
	arch.AssertExpectations(t)
	met.AssertExpectations(t)
}

func TestPlaceWarehouseOrder_ArchiveFailureIsIgnored(t *testing.T) {
	svc, st, arch, met := newService(t, noDelay)
	met.On("ObserveOrder", "warehouse").Return()
	arch.On("ArchiveWarehouseOrder", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db fora"))

	receipt, err := svc.PlaceWarehouseOrder(context.Background(), domain.WarehouseOrderRequest{
		Items: []domain.ItemRequest{{PartID: "p2", Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, receipt.Order.ID, st.WarehouseOrders()[0].ID)
}

func TestPlaceWarehouseOrder_Validation(t *testing.T) {
	svc, st, arch, _ := newService(t, noDelay)
	ordersBefore := len(st.WarehouseOrders())

	_, err := svc.PlaceWarehouseOrder(context.Background(), domain.WarehouseOrderRequest{})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.PlaceWarehouseOrder(context.Background(), domain.WarehouseOrderRequest{
		Items: []domain.ItemRequest{{PartID: "p404", Quantity: 1}},
	})
	assert.IsType(t, &apperror.NotFoundError{}, err)

	assert.Len(t, st.WarehouseOrders(), ordersBefore)
	arch.AssertNotCalled(t, "ArchiveWarehouseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceDarkstoreOrder_StoreDeliveryDefaultsAddress(t *testing.T) {
	svc, _, _, met := newService(t, noDelay)
	met.On("ObserveOrder", "darkstore").Return()

	order, err := svc.PlaceDarkstoreOrder(context.Background(), domain.DarkstoreOrderRequest{
		Items:        []domain.ItemRequest{{PartID: "p4", Quantity: 2}},
		DeliveryType: domain.DeliverToStore,
	})

	require.NoError(t, err)
	assert.Equal(t, "Connaught Place, Delhi", order.DeliveryAddress)
	assert.Equal(t, domain.DarkstoreConfirmed, order.Status)
	assert.Equal(t, "45 mins", order.ETA)
	assert.Equal(t, 2400.0, order.Total)
}

func TestPlaceDarkstoreOrder_Validation(t *testing.T) {
	svc, st, _, _ := newService(t, noDelay)
	items := []domain.ItemRequest{{PartID: "p4", Quantity: 1}}

	_, err := svc.PlaceDarkstoreOrder(context.Background(), domain.DarkstoreOrderRequest{Items: items, DeliveryType: "drone"})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.PlaceDarkstoreOrder(context.Background(), domain.DarkstoreOrderRequest{Items: items, DeliveryType: domain.DeliverToGarage})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.PlaceDarkstoreOrder(context.Background(), domain.DarkstoreOrderRequest{DeliveryType: domain.DeliverToGarage, Address: "x"})
	assert.IsType(t, &apperror.ValidationError{}, err)

	assert.Empty(t, st.DarkstoreOrders())
}

func TestListOrders_EmptyNotNil(t *testing.T) {
	svc, _, _, _ := newService(t, noDelay)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)

	ds, err := svc.ListDarkstoreOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ds)

	wo, err := svc.ListWarehouseOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, wo, 1)
}
