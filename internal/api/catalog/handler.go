package catalog

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	ListParts(ctx context.Context, filter domain.PartFilter) ([]domain.Part, error)
	GetPart(ctx context.Context, id string) (domain.Part, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	CompatibleParts(ctx context.Context, vehicleMake, vehicleModel string) ([]domain.Part, error)
	ListRetailers(ctx context.Context) ([]domain.Retailer, error)
	GetRetailer(ctx context.Context, id string) (domain.Retailer, error)
	RetailerInventory(ctx context.Context, retailerID string) ([]domain.StockedPart, error)
	UpdatePartStock(ctx context.Context, partID string, req domain.StockUpdateRequest) (domain.Part, error)
}

// Handler agrupa os handlers de catálogo e lojas.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListPartsHandler lida com GET /v1/parts?q=&category=&vehicle=.
// @Summary Busca peças no catálogo
// @Tags catalog
// @Produce json
// @Param q query string false "Nome ou SKU"
// @Param category query string false "Categoria"
// @Param vehicle query string false "ID do veículo"
// @Success 200 {array} domain.Part
// @Router /parts [get]
func (h *Handler) ListPartsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	parts, err := h.Service.ListParts(r.Context(), domain.PartFilter{
		Query:     q.Get("q"),
		Category:  q.Get("category"),
		VehicleID: q.Get("vehicle"),
	})
	response.Handle(w, r, h.Logger, parts, err, http.StatusOK)
}

// GetPartHandler lida com GET /v1/parts/{id}.
// @Summary Obtém uma peça
// @Tags catalog
// @Produce json
// @Param id path string true "ID da peça"
// @Success 200 {object} domain.Part
// @Failure 404 {object} domain.ErrorResponse
// @Router /parts/{id} [get]
func (h *Handler) GetPartHandler(w http.ResponseWriter, r *http.Request) {
	part, err := h.Service.GetPart(r.Context(), r.PathValue("id"))
	response.Handle(w, r, h.Logger, part, err, http.StatusOK)
}

// UpdatePartStockHandler lida com PUT /v1/parts/{id}/stock.
// @Summary Ajusta o estoque de armazém
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "ID da peça"
// @Param stock body domain.StockUpdateRequest true "Novo estoque"
// @Success 200 {object} domain.Part
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /parts/{id}/stock [put]
func (h *Handler) UpdatePartStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockUpdateRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	part, err := h.Service.UpdatePartStock(r.Context(), r.PathValue("id"), req)
	response.Handle(w, r, h.Logger, part, err, http.StatusOK)
}

// ListVehiclesHandler lida com GET /v1/vehicles.
// @Summary Lista veículos
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Vehicle
// @Router /vehicles [get]
func (h *Handler) ListVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.ListVehicles(r.Context())
	response.Handle(w, r, h.Logger, vehicles, err, http.StatusOK)
}

// CompatiblePartsHandler lida com GET /v1/vehicles/compatible-parts?make=&model=.
// @Summary Peças compatíveis com um veículo
// @Tags catalog
// @Produce json
// @Param make query string true "Marca"
// @Param model query string true "Modelo"
// @Success 200 {array} domain.Part
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /vehicles/compatible-parts [get]
func (h *Handler) CompatiblePartsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	parts, err := h.Service.CompatibleParts(r.Context(), q.Get("make"), q.Get("model"))
	response.Handle(w, r, h.Logger, parts, err, http.StatusOK)
}

// ListRetailersHandler lida com GET /v1/retailers.
// @Summary Lista lojas por distância
// @Tags retailers
// @Produce json
// @Success 200 {array} domain.Retailer
// @Router /retailers [get]
func (h *Handler) ListRetailersHandler(w http.ResponseWriter, r *http.Request) {
	retailers, err := h.Service.ListRetailers(r.Context())
	response.Handle(w, r, h.Logger, retailers, err, http.StatusOK)
}

// GetRetailerHandler lida com GET /v1/retailers/{id}.
// @Summary Obtém uma loja
// @Tags retailers
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} domain.Retailer
// @Failure 404 {object} domain.ErrorResponse
// @Router /retailers/{id} [get]
func (h *Handler) GetRetailerHandler(w http.ResponseWriter, r *http.Request) {
	retailer, err := h.Service.GetRetailer(r.Context(), r.PathValue("id"))
	response.Handle(w, r, h.Logger, retailer, err, http.StatusOK)
}

// RetailerInventoryHandler lida com GET /v1/retailers/{id}/inventory.
// @Summary Estoque da loja com dados do catálogo
// @Tags retailers
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {array} domain.StockedPart
// @Failure 404 {object} domain.ErrorResponse
// @Router /retailers/{id}/inventory [get]
func (h *Handler) RetailerInventoryHandler(w http.ResponseWriter, r *http.Request) {
	stocked, err := h.Service.RetailerInventory(r.Context(), r.PathValue("id"))
	response.Handle(w, r, h.Logger, stocked, err, http.StatusOK)
}
