package report

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// ReportService define o contrato que o Handler espera da camada de Serviço.
type ReportService interface {
	RetailerSummary(ctx context.Context) (domain.RetailerSummary, error)
	WholesalerSummary(ctx context.Context) (domain.WholesalerSummary, error)
}

// Handler agrupa os handlers dos painéis.
type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// RetailerSummaryHandler lida com GET /v1/reports/retailer.
// @Summary Painel do lojista
// @Tags reports
// @Produce json
// @Success 200 {object} domain.RetailerSummary
// @Security ApiKeyAuth
// @Router /reports/retailer [get]
func (h *Handler) RetailerSummaryHandler(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Service.RetailerSummary(r.Context())
	response.Handle(w, r, h.Logger, sum, err, http.StatusOK)
}

// WholesalerSummaryHandler lida com GET /v1/reports/wholesaler.
// @Summary Painel do atacadista
// @Tags reports
// @Produce json
// @Success 200 {object} domain.WholesalerSummary
// @Security ApiKeyAuth
// @Router /reports/wholesaler [get]
func (h *Handler) WholesalerSummaryHandler(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Service.WholesalerSummary(r.Context())
	response.Handle(w, r, h.Logger, sum, err, http.StatusOK)
}
