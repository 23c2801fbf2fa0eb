package catalogservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
	"partshub/internal/service/catalogservice"
	"partshub/internal/store"
)

func newService() (*catalogservice.Service, *store.Store) {
	st := store.NewSeeded()
	return catalogservice.NewService(st, logger.NewNop()), st
}

func ids(parts []domain.Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.ID
	}
	return out
}

func TestListParts_Filters(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.PartFilter
		want   []string
	}{
		{"sem filtro", domain.PartFilter{}, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11"}},
		{"nome sem caixa", domain.PartFilter{Query: "brake"}, []string{"p5", "p6"}},
		{"sku", domain.PartFilter{Query: "eo-5w"}, []string{"p4"}},
		{"categoria parcial", domain.PartFilter{Category: "cool"}, []string{"p9", "p10"}},
		{"veículo inclui universal", domain.PartFilter{VehicleID: "v3"}, []string{"p2", "p4", "p7"}},
		{"combinado", domain.PartFilter{Category: "engine", VehicleID: "v6"}, []string{"p3", "p4"}},
		{"nada", domain.PartFilter{Query: "turbo"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := svc.ListParts(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(parts))
		})
	}
}

func TestGetPart(t *testing.T) {
	svc, _ := newService()

	p, err := svc.GetPart(context.Background(), "p7")
	require.NoError(t, err)
	assert.Equal(t, "BAT-35Ah", p.SKU)

	_, err = svc.GetPart(context.Background(), "p0")
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestCompatibleParts(t *testing.T) {
	svc, _ := newService()

	parts, err := svc.CompatibleParts(context.Background(), "hyundai", "CRETA")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p4", "p6", "p8", "p10"}, ids(parts))

	_, err = svc.CompatibleParts(context.Background(), "Ford", "Ikon")
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, err = svc.CompatibleParts(context.Background(), "", "City")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestListRetailers_SortedByDistance(t *testing.T) {
	svc, _ := newService()

	retailers, err := svc.ListRetailers(context.Background())

	require.NoError(t, err)
	require.Len(t, retailers, 6)
	for i := 1; i < len(retailers); i++ {
		assert.LessOrEqual(t, retailers[i-1].Distance, retailers[i].Distance)
	}
}

// MockCatalogStore permite montar um estoque com peça inexistente.
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) Parts() []domain.Part { return m.Called().Get(0).([]domain.Part) }
func (m *MockCatalogStore) Part(id string) (domain.Part, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Part), args.Bool(1)
}
func (m *MockCatalogStore) UpdatePartStock(id string, n int) (domain.Part, bool) {
	args := m.Called(id, n)
	return args.Get(0).(domain.Part), args.Bool(1)
}
func (m *MockCatalogStore) Vehicles() []domain.Vehicle { return m.Called().Get(0).([]domain.Vehicle) }
func (m *MockCatalogStore) Retailers() []domain.Retailer {
	return m.Called().Get(0).([]domain.Retailer)
}
func (m *MockCatalogStore) Retailer(id string) (domain.Retailer, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Retailer), args.Bool(1)
}

func TestRetailerInventory_DropsUnknownParts(t *testing.T) {
	mockStore := new(MockCatalogStore)
	svc := catalogservice.NewService(mockStore, logger.NewNop())

	mockStore.On("Retailer", "r9").Return(domain.Retailer{ID: "r9", Inventory: []domain.InventoryLine{
		{PartID: "p1", Quantity: 4}, {PartID: "ghost", Quantity: 2},
	}}, true)
	mockStore.On("Part", "p1").Return(domain.Part{ID: "p1", Name: "Oil Filter"}, true)
	mockStore.On("Part", "ghost").Return(domain.Part{}, false)

	stocked, err := svc.RetailerInventory(context.Background(), "r9")

	require.NoError(t, err)
	require.Len(t, stocked, 1)
	assert.Equal(t, "Oil Filter", stocked[0].Part.Name)
	assert.Equal(t, 4, stocked[0].Quantity)
	mockStore.AssertExpectations(t)
}

func TestRetailerInventory_UnknownRetailer(t *testing.T) {
	svc, _ := newService()

	_, err := svc.RetailerInventory(context.Background(), "r404")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestUpdatePartStock(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()
	n := 120

	p, err := svc.UpdatePartStock(ctx, "p5", domain.StockUpdateRequest{WarehouseStock: &n})
	require.NoError(t, err)
	assert.Equal(t, 120, p.WarehouseStock)
	stored, _ := st.Part("p5")
	assert.Equal(t, 120, stored.WarehouseStock)

	_, err = svc.UpdatePartStock(ctx, "p5", domain.StockUpdateRequest{})
	assert.IsType(t, &apperror.ValidationError{}, err)

	neg := -1
	_, err = svc.UpdatePartStock(ctx, "p5", domain.StockUpdateRequest{WarehouseStock: &neg})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.UpdatePartStock(ctx, "p404", domain.StockUpdateRequest{WarehouseStock: &n})
	assert.IsType(t, &apperror.NotFoundError{}, err)
}
