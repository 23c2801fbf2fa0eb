package catalogservice

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// CatalogStore define o que o Serviço de Catálogo espera do store.
type CatalogStore interface {
	Parts() []domain.Part
	Part(id string) (domain.Part, bool)
	UpdatePartStock(partID string, newStock int) (domain.Part, bool)
	Vehicles() []domain.Vehicle
	Retailers() []domain.Retailer
	Retailer(id string) (domain.Retailer, bool)
}

// Service implementa busca de peças, veículos, lojas e o ajuste de estoque do atacadista.
type Service struct {
	store  CatalogStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Catálogo.
func NewService(store CatalogStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListParts filtra o catálogo por texto (nome ou SKU), categoria e veículo.
// Filtros vazios não restringem.
func (s *Service) ListParts(ctx context.Context, filter domain.PartFilter) ([]domain.Part, error) {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	vehicleID := strings.TrimSpace(filter.VehicleID)

	out := []domain.Part{}
	for _, p := range s.store.Parts() {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.SKU), query) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if vehicleID != "" && !p.Fits(vehicleID) {
			continue
		}
		out = append(out, p)
	}

	s.logger.Debug("ListParts concluído.", map[string]interface{}{"query": query, "category": category, "vehicle_id": vehicleID, "total": len(out)})
	return out, nil
}

// GetPart busca uma peça pelo ID.
func (s *Service) GetPart(ctx context.Context, id string) (domain.Part, error) {
	p, ok := s.store.Part(id)
	if !ok {
		return domain.Part{}, apperror.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada.", id))
	}
	return p, nil
}

// ListVehicles devolve os veículos conhecidos.
func (s *Service) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles(), nil
}

// CompatibleParts devolve as peças que servem no veículo de marca e modelo
// informados (sem diferenciar maiúsculas), incluindo as universais.
func (s *Service) CompatibleParts(ctx context.Context, vehicleMake, vehicleModel string) ([]domain.Part, error) {
	vehicleMake, vehicleModel = strings.TrimSpace(vehicleMake), strings.TrimSpace(vehicleModel)
	if vehicleMake == "" || vehicleModel == "" {
		return nil, apperror.NewValidationError("make e model são obrigatórios.")
	}

	for _, v := range s.store.Vehicles() {
		if strings.EqualFold(v.Make, vehicleMake) && strings.EqualFold(v.Model, vehicleModel) {
			return s.ListParts(ctx, domain.PartFilter{VehicleID: v.ID})
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("Veículo %s %s não encontrado.", vehicleMake, vehicleModel))
}

// ListRetailers devolve as lojas da mais próxima para a mais distante.
func (s *Service) ListRetailers(ctx context.Context) ([]domain.Retailer, error) {
	retailers := s.store.Retailers()
	sort.SliceStable(retailers, func(i, j int) bool {
		return retailers[i].Distance < retailers[j].Distance
	})
	return retailers, nil
}

// GetRetailer busca uma loja pelo ID.
func (s *Service) GetRetailer(ctx context.Context, id string) (domain.Retailer, error) {
	r, ok := s.store.Retailer(id)
	if !ok {
		return domain.Retailer{}, apperror.NewNotFoundError(fmt.Sprintf("Loja com ID %s não encontrada.", id))
	}
	return r, nil
}

// RetailerInventory junta o estoque da loja com o catálogo. Linhas cuja peça
// não existe no catálogo são descartadas.
func (s *Service) RetailerInventory(ctx context.Context, retailerID string) ([]domain.StockedPart, error) {
	r, err := s.GetRetailer(ctx, retailerID)
	if err != nil {
		return nil, err
	}

	out := []domain.StockedPart{}
	for _, line := range r.Inventory {
		p, ok := s.store.Part(line.PartID)
		if !ok {
			s.logger.Warn("Linha de estoque com peça desconhecida descartada.", map[string]interface{}{"retailer_id": retailerID, "part_id": line.PartID})
			continue
		}
		out = append(out, domain.StockedPart{Part: p, Quantity: line.Quantity})
	}
	return out, nil
}

// UpdatePartStock sobrescreve o estoque de armazém de uma peça.
func (s *Service) UpdatePartStock(ctx context.Context, partID string, req domain.StockUpdateRequest) (domain.Part, error) {
	s.logger.Debug("Iniciando UpdatePartStock no serviço.", map[string]interface{}{"part_id": partID})

	if req.WarehouseStock == nil {
		return domain.Part{}, apperror.NewValidationError("warehouse_stock é obrigatório.")
	}
	if *req.WarehouseStock < 0 {
		return domain.Part{}, apperror.NewValidationError(fmt.Sprintf("O estoque não pode ser negativo (recebido %d).", *req.WarehouseStock))
	}

	p, ok := s.store.UpdatePartStock(partID, *req.WarehouseStock)
	if !ok {
		s.logger.Info("Peça não encontrada para ajuste de estoque.", map[string]interface{}{"part_id": partID})
		return domain.Part{}, apperror.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada.", partID))
	}

	s.logger.Info("Estoque de armazém atualizado.", map[string]interface{}{"part_id": p.ID, "warehouse_stock": p.WarehouseStock})
	return p, nil
}
