package invoiceservice

import (
	"context"
	"fmt"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// InvoiceStore define o que o Serviço de Faturas espera do store.
type InvoiceStore interface {
	Invoices() []domain.Invoice
	PayInvoice(id string) (domain.Invoice, domain.InvoiceStatus, bool)
}

// Archiver registra pagamentos fora do processo.
type Archiver interface {
	ArchiveInvoicePayment(ctx context.Context, invoice domain.Invoice) error
}

// Metrics conta pagamentos.
type Metrics interface {
	ObserveInvoicePaid()
}

// Service implementa consulta e pagamento de faturas.
type Service struct {
	store    InvoiceStore
	archiver Archiver
	metrics  Metrics
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Faturas.
func NewService(store InvoiceStore, archiver Archiver, m Metrics, logger logger.Logger) *Service {
	return &Service{store: store, archiver: archiver, metrics: m, logger: logger}
}

// ListInvoices devolve as faturas, opcionalmente filtradas por status.
func (s *Service) ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	switch status {
	case "", domain.InvoicePending, domain.InvoicePaid, domain.InvoiceOverdue:
	default:
		return nil, apperror.NewValidationError("status deve ser pending, paid ou overdue.")
	}

	out := []domain.Invoice{}
	for _, inv := range s.store.Invoices() {
		if status == "" || inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

// PayInvoice marca a fatura como paga. Pagar de novo é aceito e mantém "paid".
func (s *Service) PayInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	s.logger.Debug("Iniciando PayInvoice no serviço.", map[string]interface{}{"id": id})

	invoice, prev, ok := s.store.PayInvoice(id)
	if !ok {
		s.logger.Info("Fatura não encontrada para pagamento.", map[string]interface{}{"id": id})
		return domain.Invoice{}, apperror.NewNotFoundError(fmt.Sprintf("Fatura com ID %s não encontrada.", id))
	}
	if prev == domain.InvoicePaid {
		s.logger.Debug("Fatura já estava paga; nada a registrar.", map[string]interface{}{"id": id})
		return invoice, nil
	}

	s.metrics.ObserveInvoicePaid()
	if err := s.archiver.ArchiveInvoicePayment(context.WithoutCancel(ctx), invoice); err != nil {
		s.logger.Error("Falha ao arquivar pagamento; seguindo.", err)
	}

	s.logger.Info("Fatura paga.", map[string]interface{}{"id": invoice.ID, "amount": invoice.Amount})
	return invoice, nil
}
