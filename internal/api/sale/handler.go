package sale

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// SaleService define o contrato que o Handler espera da camada de Serviço.
type SaleService interface {
	ProcessSale(ctx context.Context, req domain.SaleRequest) ([]domain.SalesRecord, error)
	ListSales(ctx context.Context, status domain.SaleStatus) ([]domain.SalesRecord, error)
	RecordSale(ctx context.Context, req domain.SalesRecordRequest) (domain.SalesRecord, error)
}

// Handler agrupa os handlers de vendas.
type Handler struct {
	Service SaleService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc SaleService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ProcessSaleHandler lida com POST /v1/sales.
// @Summary Processa uma venda de balcão
// @Description Baixa o estoque da loja ativa (mínimo zero) e grava uma venda paga por item. Sem itens, vende o carrinho.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body domain.SaleRequest false "Itens e cliente"
// @Success 201 {array} domain.SalesRecord
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /sales [post]
func (h *Handler) ProcessSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.SaleRequest
	if err := response.DecodeJSON(r, &req, true); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	records, err := h.Service.ProcessSale(r.Context(), req)
	response.Handle(w, r, h.Logger, records, err, http.StatusCreated)
}

// ListSalesHandler lida com GET /v1/sales?status=.
// @Summary Lista o ledger de vendas
// @Tags sales
// @Produce json
// @Param status query string false "paid ou pending"
// @Success 200 {array} domain.SalesRecord
// @Security ApiKeyAuth
// @Router /sales [get]
func (h *Handler) ListSalesHandler(w http.ResponseWriter, r *http.Request) {
	status := domain.SaleStatus(r.URL.Query().Get("status"))
	records, err := h.Service.ListSales(r.Context(), status)
	response.Handle(w, r, h.Logger, records, err, http.StatusOK)
}

// RecordSaleHandler lida com POST /v1/sales/records.
// @Summary Lança uma venda manual no ledger
// @Description Não baixa estoque. Amount omitido usa o preço de tabela; status omitido vale pending.
// @Tags sales
// @Accept json
// @Produce json
// @Param record body domain.SalesRecordRequest true "Lançamento"
// @Success 201 {object} domain.SalesRecord
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /sales/records [post]
func (h *Handler) RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.SalesRecordRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	record, err := h.Service.RecordSale(r.Context(), req)
	response.Handle(w, r, h.Logger, record, err, http.StatusCreated)
}
