package cart

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// CartService define o contrato que o Handler espera da camada de Serviço.
type CartService interface {
	GetCart(ctx context.Context) (domain.CartView, error)
	AddItem(ctx context.Context, req domain.ItemRequest) (domain.CartView, error)
	RemoveItem(ctx context.Context, partID string) (domain.CartView, error)
	Clear(ctx context.Context) error
}

// Handler agrupa os handlers do carrinho.
type Handler struct {
	Service CartService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CartService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetCartHandler lida com GET /v1/cart.
// @Summary Mostra o carrinho
// @Tags cart
// @Produce json
// @Success 200 {object} domain.CartView
// @Router /cart [get]
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetCart(r.Context())
	response.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// AddItemHandler lida com POST /v1/cart/items.
// @Summary Adiciona uma peça ao carrinho
// @Description Soma a quantidade se a peça já estiver no carrinho. Quantidade omitida vale 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body domain.ItemRequest true "Peça e quantidade"
// @Success 200 {object} domain.CartView
// @Failure 400 {object} domain.ErrorResponse "Quantidade negativa ou payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Peça não encontrada"
// @Router /cart/items [post]
func (h *Handler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ItemRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.AddItem(r.Context(), req)
	response.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// RemoveItemHandler lida com DELETE /v1/cart/items/{partID}.
// @Summary Remove uma peça do carrinho
// @Tags cart
// @Produce json
// @Param partID path string true "ID da peça"
// @Success 200 {object} domain.CartView
// @Router /cart/items/{partID} [delete]
func (h *Handler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.RemoveItem(r.Context(), r.PathValue("partID"))
	response.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// ClearHandler lida com DELETE /v1/cart.
// @Summary Esvazia o carrinho
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (h *Handler) ClearHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Clear(r.Context())
	response.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
