package saleservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/latency"
	"partshub/internal/pkg/logger"
	"partshub/internal/service/lineitems"
)

// SaleStore define o que o Serviço de Vendas espera do store.
type SaleStore interface {
	Cart() []domain.CartItem
	ProcessSale(retailerID string, items []domain.CartItem, customer string) []domain.SalesRecord
	AddSale(record domain.SalesRecord) domain.SalesRecord
	Sales() []domain.SalesRecord
	Part(id string) (domain.Part, bool)
}

// Archiver grava as vendas fora do processo.
type Archiver interface {
	ArchiveSales(ctx context.Context, records []domain.SalesRecord) error
}

// Metrics conta linhas e valor vendidos.
type Metrics interface {
	ObserveSale(lines int, amount float64)
}

// Service implementa o balcão de vendas da loja ativa.
type Service struct {
	store            SaleStore
	archiver         Archiver
	metrics          Metrics
	activeRetailerID string
	delay            time.Duration
	logger           logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Vendas.
func NewService(store SaleStore, archiver Archiver, m Metrics, activeRetailerID string, delay time.Duration, logger logger.Logger) *Service {
	return &Service{
		store:            store,
		archiver:         archiver,
		metrics:          m,
		activeRetailerID: activeRetailerID,
		delay:            delay,
		logger:           logger,
	}
}

// ProcessSale vende os itens informados, ou o carrinho quando a lista vem vazia.
// O estoque da loja ativa nunca fica negativo.
func (s *Service) ProcessSale(ctx context.Context, req domain.SaleRequest) ([]domain.SalesRecord, error) {
	s.logger.Debug("Iniciando ProcessSale no serviço.", map[string]interface{}{"items": len(req.Items), "customer": req.Customer})

	var items []domain.CartItem
	if len(req.Items) > 0 {
		resolved, err := lineitems.Resolve(s.store, req.Items)
		if err != nil {
			return nil, err
		}
		items = resolved
	} else {
		items = s.store.Cart()
	}
	if len(items) == 0 {
		return nil, apperror.NewValidationError("Nada para vender: informe itens ou adicione peças ao carrinho.")
	}

	customer := strings.TrimSpace(req.Customer)

	if err := latency.Wait(ctx, s.delay); err != nil {
		s.logger.Warn("ProcessSale cancelado antes de aplicar.", map[string]interface{}{"error": err.Error()})
		return nil, apperror.NewInternalError("Venda cancelada", err)
	}

	records := s.store.ProcessSale(s.activeRetailerID, items, customer)

	var amount float64
	for _, rec := range records {
		amount += rec.Amount
	}
	s.metrics.ObserveSale(len(records), amount)

	if err := s.archiver.ArchiveSales(context.WithoutCancel(ctx), records); err != nil {
		s.logger.Error("Falha ao arquivar vendas; seguindo.", err)
	}

	s.logger.Info("Venda processada.", map[string]interface{}{
		"retailer_id": s.activeRetailerID,
		"lines":       len(records),
		"amount":      amount,
	})
	return records, nil
}

// RecordSale lança manualmente uma venda no ledger, sem baixar estoque.
func (s *Service) RecordSale(ctx context.Context, req domain.SalesRecordRequest) (domain.SalesRecord, error) {
	s.logger.Debug("Iniciando RecordSale no serviço.", map[string]interface{}{"part_id": req.PartID, "status": req.Status})

	if req.PartID == "" {
		return domain.SalesRecord{}, apperror.NewValidationError("part_id é obrigatório.")
	}
	status := req.Status
	if status == "" {
		status = domain.SalePending
	}
	if status != domain.SalePaid && status != domain.SalePending {
		return domain.SalesRecord{}, apperror.NewValidationError("status deve ser paid ou pending.")
	}

	part, ok := s.store.Part(req.PartID)
	if !ok {
		return domain.SalesRecord{}, apperror.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada.", req.PartID))
	}

	amount := part.Price
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 || amount > part.Price*domain.MaxQuantity {
		return domain.SalesRecord{}, apperror.NewValidationError(fmt.Sprintf(
			"amount deve ser positivo e no máximo %.2f.", part.Price*domain.MaxQuantity))
	}

	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		customer = domain.WalkInCustomer
	}

	record := s.store.AddSale(domain.SalesRecord{
		PartName: part.Name,
		SKU:      part.SKU,
		Amount:   amount,
		Status:   status,
		Customer: customer,
	})
	s.metrics.ObserveSale(1, amount)

	if err := s.archiver.ArchiveSales(context.WithoutCancel(ctx), []domain.SalesRecord{record}); err != nil {
		s.logger.Error("Falha ao arquivar lançamento; seguindo.", err)
	}

	s.logger.Info("Venda lançada no ledger.", map[string]interface{}{"id": record.ID, "amount": amount, "status": status})
	return record, nil
}

// ListSales devolve o ledger, opcionalmente filtrado por status.
func (s *Service) ListSales(ctx context.Context, status domain.SaleStatus) ([]domain.SalesRecord, error) {
	if status != "" && status != domain.SalePaid && status != domain.SalePending {
		return nil, apperror.NewValidationError("status deve ser paid ou pending.")
	}
	out := []domain.SalesRecord{}
	for _, rec := range s.store.Sales() {
		if status == "" || rec.Status == status {
			out = append(out, rec)
		}
	}
	return out, nil
}
