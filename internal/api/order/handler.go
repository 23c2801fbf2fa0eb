package order

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/middleware"
)

// OrderService define o contrato que o Handler espera da camada de Serviço.
type OrderService interface {
	PlaceOrder(ctx context.Context, details domain.OrderDetails) (domain.Order, error)
	PlaceDarkstoreOrder(ctx context.Context, req domain.DarkstoreOrderRequest) (domain.DarkstoreOrder, error)
	PlaceWarehouseOrder(ctx context.Context, req domain.WarehouseOrderRequest) (domain.WarehouseOrderReceipt, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListDarkstoreOrders(ctx context.Context) ([]domain.DarkstoreOrder, error)
	ListWarehouseOrders(ctx context.Context) ([]domain.WarehouseOrder, error)
}

// Handler agrupa os handlers de pedidos.
type Handler struct {
	Service OrderService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OrderService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) logCaller(r *http.Request, action string) {
	if claims, ok := middleware.GetSessionClaimsFromContext(r.Context()); ok {
		h.Logger.Debug(action, map[string]interface{}{"session_id": claims.SessionID, "role": claims.Role})
	}
}

// PlaceOrderHandler lida com POST /v1/orders.
// @Summary Fecha o carrinho como pedido
// @Description Converte o carrinho atual em pedido (status processing, ETA 5-6 horas) e esvazia o carrinho.
// @Tags orders
// @Accept json
// @Produce json
// @Param details body domain.OrderDetails false "Dados do pedido"
// @Success 201 {object} domain.Order
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *Handler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	h.logCaller(r, "Pedido de cliente solicitado.")

	var details domain.OrderDetails
	if err := response.DecodeJSON(r, &details, true); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	order, err := h.Service.PlaceOrder(r.Context(), details)
	response.Handle(w, r, h.Logger, order, err, http.StatusCreated)
}

// ListOrdersHandler lida com GET /v1/orders.
// @Summary Lista pedidos de cliente
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListOrders(r.Context())
	response.Handle(w, r, h.Logger, orders, err, http.StatusOK)
}

// PlaceDarkstoreOrderHandler lida com POST /v1/darkstore-orders.
// @Summary Cria pedido de entrega expressa
// @Tags orders
// @Accept json
// @Produce json
// @Param order body domain.DarkstoreOrderRequest true "Itens e destino"
// @Success 201 {object} domain.DarkstoreOrder
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /darkstore-orders [post]
func (h *Handler) PlaceDarkstoreOrderHandler(w http.ResponseWriter, r *http.Request) {
	h.logCaller(r, "Pedido darkstore solicitado.")

	var req domain.DarkstoreOrderRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	order, err := h.Service.PlaceDarkstoreOrder(r.Context(), req)
	response.Handle(w, r, h.Logger, order, err, http.StatusCreated)
}

// ListDarkstoreOrdersHandler lida com GET /v1/darkstore-orders.
// @Summary Lista pedidos darkstore
// @Tags orders
// @Produce json
// @Success 200 {array} domain.DarkstoreOrder
// @Security ApiKeyAuth
// @Router /darkstore-orders [get]
func (h *Handler) ListDarkstoreOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListDarkstoreOrders(r.Context())
	response.Handle(w, r, h.Logger, orders, err, http.StatusOK)
}

// PlaceWarehouseOrderHandler lida com POST /v1/warehouse-orders.
// @Summary Cria pedido de reposição e fatura
// @Description Total = soma(preço * 0,7 * quantidade). Gera uma fatura pendente com vencimento em 30 dias.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body domain.WarehouseOrderRequest true "Itens"
// @Success 201 {object} domain.WarehouseOrderReceipt
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /warehouse-orders [post]
func (h *Handler) PlaceWarehouseOrderHandler(w http.ResponseWriter, r *http.Request) {
	h.logCaller(r, "Pedido de reposição solicitado.")

	var req domain.WarehouseOrderRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	receipt, err := h.Service.PlaceWarehouseOrder(r.Context(), req)
	response.Handle(w, r, h.Logger, receipt, err, http.StatusCreated)
}

// ListWarehouseOrdersHandler lida com GET /v1/warehouse-orders.
// @Summary Lista pedidos de reposição
// @Tags orders
// @Produce json
// @Success 200 {array} domain.WarehouseOrder
// @Security ApiKeyAuth
// @Router /warehouse-orders [get]
func (h *Handler) ListWarehouseOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListWarehouseOrders(r.Context())
	response.Handle(w, r, h.Logger, orders, err, http.StatusOK)
}
