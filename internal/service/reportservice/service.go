package reportservice

import (
	"context"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// ReportStore define as leituras que os painéis fazem no store.
type ReportStore interface {
	Sales() []domain.SalesRecord
	Invoices() []domain.Invoice
	Orders() []domain.Order
	DarkstoreOrders() []domain.DarkstoreOrder
	WarehouseOrders() []domain.WarehouseOrder
	Parts() []domain.Part
	Retailers() []domain.Retailer
	Retailer(id string) (domain.Retailer, bool)
}

// Service calcula os indicadores dos painéis.
type Service struct {
	store            ReportStore
	activeRetailerID string
	logger           logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Relatórios.
func NewService(store ReportStore, activeRetailerID string, logger logger.Logger) *Service {
	return &Service{store: store, activeRetailerID: activeRetailerID, logger: logger}
}

// RetailerSummary calcula o painel da loja ativa.
func (s *Service) RetailerSummary(ctx context.Context) (domain.RetailerSummary, error) {
	sum := domain.RetailerSummary{RetailerID: s.activeRetailerID}

	for _, rec := range s.store.Sales() {
		sum.TotalSales += rec.Amount
		sum.SalesCount++
	}
	if sum.SalesCount > 0 {
		sum.AverageSale = sum.TotalSales / float64(sum.SalesCount)
	}

	for _, inv := range s.store.Invoices() {
		if inv.Status == domain.InvoicePending {
			sum.PendingPayments += inv.Amount
			sum.PendingInvoices++
		}
	}

	for _, o := range s.store.Orders() {
		if o.Status != domain.OrderDelivered {
			sum.OpenOrders++
		}
	}
	for _, o := range s.store.DarkstoreOrders() {
		if o.Status != domain.DarkstoreDelivered {
			sum.DarkstoreOrders++
		}
	}

	retailer, ok := s.store.Retailer(s.activeRetailerID)
	if !ok {
		return domain.RetailerSummary{}, apperror.NewNotFoundError("Loja ativa " + s.activeRetailerID + " não encontrada.")
	}
	for _, line := range retailer.Inventory {
		if line.Quantity < domain.LowRetailerStock {
			sum.LowStockItems++
		}
	}

	return sum, nil
}

// WholesalerSummary calcula o painel do atacadista.
func (s *Service) WholesalerSummary(ctx context.Context) (domain.WholesalerSummary, error) {
	var sum domain.WholesalerSummary

	parts := s.store.Parts()
	sum.CatalogSize = len(parts)
	for _, p := range parts {
		sum.TotalWarehouseUnits += p.WarehouseStock
		if p.WarehouseStock <= domain.LowWarehouseStock {
			sum.LowStockParts++
		}
	}

	sum.RetailerCount = len(s.store.Retailers())

	for _, o := range s.store.WarehouseOrders() {
		sum.WarehouseOrders++
		sum.WarehouseRevenue += o.Total
	}

	return sum, nil
}

// LogDailySummary registra os dois painéis no log; usado pelo agendador.
func (s *Service) LogDailySummary(ctx context.Context) error {
	retailer, err := s.RetailerSummary(ctx)
	if err != nil {
		s.logger.Error("Falha ao calcular resumo do lojista.", err)
		return err
	}
	wholesaler, err := s.WholesalerSummary(ctx)
	if err != nil {
		s.logger.Error("Falha ao calcular resumo do atacadista.", err)
		return err
	}

	s.logger.Info("Resumo diário.", map[string]interface{}{
		"retailer_id":           retailer.RetailerID,
		"total_sales":           retailer.TotalSales,
		"sales_count":           retailer.SalesCount,
		"pending_payments":      retailer.PendingPayments,
		"open_orders":           retailer.OpenOrders,
		"darkstore_orders":      retailer.DarkstoreOrders,
		"total_warehouse_units": wholesaler.TotalWarehouseUnits,
		"low_stock_parts":       wholesaler.LowStockParts,
		"warehouse_orders":      wholesaler.WarehouseOrders,
		"warehouse_revenue":     wholesaler.WarehouseRevenue,
	})
	return nil
}
