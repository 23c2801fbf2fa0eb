package orderservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/latency"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/metrics"
	"partshub/internal/service/lineitems"
)

// OrderStore define o que o Serviço de Pedidos espera do store.
type OrderStore interface {
	PlaceOrder(details domain.OrderDetails) domain.Order
	PlaceDarkstoreOrder(items []domain.CartItem, deliveryType domain.DeliveryType, address string) domain.DarkstoreOrder
	PlaceWarehouseOrder(items []domain.CartItem) (domain.WarehouseOrder, domain.Invoice)
	Orders() []domain.Order
	DarkstoreOrders() []domain.DarkstoreOrder
	WarehouseOrders() []domain.WarehouseOrder
	Part(id string) (domain.Part, bool)
	Retailer(id string) (domain.Retailer, bool)
}

// Archiver grava pedidos de reposição e faturas fora do processo.
type Archiver interface {
	ArchiveWarehouseOrder(ctx context.Context, order domain.WarehouseOrder, invoice domain.Invoice) error
}

// Metrics conta os pedidos por tipo.
type Metrics interface {
	ObserveOrder(kind string)
}

// Config reúne os atrasos simulados e a loja ativa.
type Config struct {
	OrderDelay       time.Duration
	DarkstoreDelay   time.Duration
	WarehouseDelay   time.Duration
	ActiveRetailerID string
}

// Service implementa a criação e listagem dos três tipos de pedido.
type Service struct {
	store    OrderStore
	archiver Archiver
	metrics  Metrics
	cfg      Config
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Pedidos.
func NewService(store OrderStore, archiver Archiver, m Metrics, cfg Config, logger logger.Logger) *Service {
	return &Service{store: store, archiver: archiver, metrics: m, cfg: cfg, logger: logger}
}

// PlaceOrder fecha o carrinho atual como pedido de cliente. Sempre tem sucesso
// depois do atraso, a menos que a requisição seja cancelada antes.
func (s *Service) PlaceOrder(ctx context.Context, details domain.OrderDetails) (domain.Order, error) {
	s.logger.Debug("Iniciando PlaceOrder no serviço.", map[string]interface{}{"retailer_name": details.RetailerName})

	if err := latency.Wait(ctx, s.cfg.OrderDelay); err != nil {
		s.logger.Warn("PlaceOrder cancelado antes de aplicar.", map[string]interface{}{"error": err.Error()})
		return domain.Order{}, apperror.NewInternalError("Pedido cancelado", err)
	}

	order := s.store.PlaceOrder(details)
	s.metrics.ObserveOrder(metrics.KindCustomer)

	s.logger.Info("Pedido criado com sucesso.", map[string]interface{}{"id": order.ID, "total": order.Total, "items": len(order.Items)})
	return order, nil
}

// PlaceDarkstoreOrder cria um pedido de entrega expressa. Entrega na loja sem
// endereço usa o endereço da loja ativa.
func (s *Service) PlaceDarkstoreOrder(ctx context.Context, req domain.DarkstoreOrderRequest) (domain.DarkstoreOrder, error) {
	s.logger.Debug("Iniciando PlaceDarkstoreOrder no serviço.", map[string]interface{}{"delivery_type": req.DeliveryType, "items": len(req.Items)})

	if !req.DeliveryType.Valid() {
		return domain.DarkstoreOrder{}, apperror.NewValidationError(fmt.Sprintf("delivery_type deve ser %q ou %q.", domain.DeliverToStore, domain.DeliverToGarage))
	}
	if len(req.Items) == 0 {
		return domain.DarkstoreOrder{}, apperror.NewValidationError("O pedido precisa de ao menos um item.")
	}

	items, err := lineitems.Resolve(s.store, req.Items)
	if err != nil {
		return domain.DarkstoreOrder{}, err
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		if req.DeliveryType == domain.DeliverToGarage {
			return domain.DarkstoreOrder{}, apperror.NewValidationError("Entrega na oficina exige endereço.")
		}
		retailer, ok := s.store.Retailer(s.cfg.ActiveRetailerID)
		if !ok {
			return domain.DarkstoreOrder{}, apperror.NewNotFoundError(fmt.Sprintf("Loja ativa %s não encontrada.", s.cfg.ActiveRetailerID))
		}
		address = retailer.Address
	}

	if err := latency.Wait(ctx, s.cfg.DarkstoreDelay); err != nil {
		s.logger.Warn("PlaceDarkstoreOrder cancelado antes de aplicar.", map[string]interface{}{"error": err.Error()})
		return domain.DarkstoreOrder{}, apperror.NewInternalError("Pedido darkstore cancelado", err)
	}

	order := s.store.PlaceDarkstoreOrder(items, req.DeliveryType, address)
	s.metrics.ObserveOrder(metrics.KindDarkstore)

	s.logger.Info("Pedido darkstore confirmado.", map[string]interface{}{"id": order.ID, "total": order.Total, "address": order.DeliveryAddress})
	return order, nil
}

// PlaceWarehouseOrder cria o pedido de reposição e a fatura. Falha no arquivo
// é logada e não afeta a resposta.
func (s *Service) PlaceWarehouseOrder(ctx context.Context, req domain.WarehouseOrderRequest) (domain.WarehouseOrderReceipt, error) {
	s.logger.Debug("Iniciando PlaceWarehouseOrder no serviço.", map[string]interface{}{"items": len(req.Items)})

	if len(req.Items) == 0 {
		return domain.WarehouseOrderReceipt{}, apperror.NewValidationError("O pedido precisa de ao menos um item.")
	}
	items, err := lineitems.Resolve(s.store, req.Items)
	if err != nil {
		return domain.WarehouseOrderReceipt{}, err
	}

	if err := latency.Wait(ctx, s.cfg.WarehouseDelay); err != nil {
		s.logger.Warn("PlaceWarehouseOrder cancelado antes de aplicar.", map[string]interface{}{"error": err.Error()})
		return domain.WarehouseOrderReceipt{}, apperror.NewInternalError("Pedido de reposição cancelado", err)
	}

	order, invoice := s.store.PlaceWarehouseOrder(items)
	s.metrics.ObserveOrder(metrics.KindWarehouse)

	if err := s.archiver.ArchiveWarehouseOrder(context.WithoutCancel(ctx), order, invoice); err != nil {
		s.logger.Error("Falha ao arquivar pedido de reposição; seguindo.", err)
	}

	s.logger.Info("Pedido de reposição criado.", map[string]interface{}{
		"id":         order.ID,
		"total":      order.Total,
		"invoice_id": invoice.ID,
		"due_date":   invoice.DueDate.Format(time.DateOnly),
	})
	return domain.WarehouseOrderReceipt{Order: order, Invoice: invoice}, nil
}

// ListOrders devolve os pedidos de cliente.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return nonNil(s.store.Orders()), nil
}

// ListDarkstoreOrders devolve os pedidos darkstore.
func (s *Service) ListDarkstoreOrders(ctx context.Context) ([]domain.DarkstoreOrder, error) {
	return nonNil(s.store.DarkstoreOrders()), nil
}

// ListWarehouseOrders devolve os pedidos de reposição.
func (s *Service) ListWarehouseOrders(ctx context.Context) ([]domain.WarehouseOrder, error) {
	return nonNil(s.store.WarehouseOrders()), nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
