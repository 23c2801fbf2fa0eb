package invoice

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// InvoiceService define o contrato que o Handler espera da camada de Serviço.
type InvoiceService interface {
	ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error)
	PayInvoice(ctx context.Context, id string) (domain.Invoice, error)
}

// Handler agrupa os handlers de faturas.
type Handler struct {
	Service InvoiceService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc InvoiceService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListInvoicesHandler lida com GET /v1/invoices?status=.
// @Summary Lista faturas
// @Tags invoices
// @Produce json
// @Param status query string false "pending, paid ou overdue"
// @Success 200 {array} domain.Invoice
// @Security ApiKeyAuth
// @Router /invoices [get]
func (h *Handler) ListInvoicesHandler(w http.ResponseWriter, r *http.Request) {
	status := domain.InvoiceStatus(r.URL.Query().Get("status"))
	invoices, err := h.Service.ListInvoices(r.Context(), status)
	response.Handle(w, r, h.Logger, invoices, err, http.StatusOK)
}

// PayInvoiceHandler lida com POST /v1/invoices/{id}/pay.
// @Summary Paga uma fatura
// @Description Idempotente: pagar de novo mantém status paid.
// @Tags invoices
// @Produce json
// @Param id path string true "ID da fatura"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /invoices/{id}/pay [post]
func (h *Handler) PayInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Service.PayInvoice(r.Context(), r.PathValue("id"))
	response.Handle(w, r, h.Logger, inv, err, http.StatusOK)
}
