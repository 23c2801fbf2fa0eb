package cartservice

import (
	"context"
	"fmt"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
	"partshub/internal/service/lineitems"
)

// CartStore define o que o Serviço de Carrinho espera do store.
type CartStore interface {
	Cart() []domain.CartItem
	AddToCart(part domain.Part, quantity int)
	RemoveFromCart(partID string)
	ClearCart()
	Part(id string) (domain.Part, bool)
}

// Service implementa as operações de carrinho.
type Service struct {
	store  CartStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Carrinho.
func NewService(store CartStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) view() domain.CartView {
	items := s.store.Cart()
	if items == nil {
		items = []domain.CartItem{}
	}
	return domain.CartView{Items: items, Total: domain.SumItems(items)}
}

// GetCart devolve o carrinho atual com o total.
func (s *Service) GetCart(ctx context.Context) (domain.CartView, error) {
	return s.view(), nil
}

// AddItem adiciona a peça ao carrinho, somando à linha existente.
func (s *Service) AddItem(ctx context.Context, req domain.ItemRequest) (domain.CartView, error) {
	s.logger.Debug("Adicionando item ao carrinho.", map[string]interface{}{"part_id": req.PartID, "quantity": req.Quantity})

	qty, err := lineitems.NormalizeQuantity(req.Quantity)
	if err != nil {
		return domain.CartView{}, err
	}
	if req.PartID == "" {
		return domain.CartView{}, apperror.NewValidationError("part_id é obrigatório.")
	}

	part, ok := s.store.Part(req.PartID)
	if !ok {
		return domain.CartView{}, apperror.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada.", req.PartID))
	}

	for _, line := range s.store.Cart() {
		if line.Part.ID == part.ID && line.Quantity > domain.MaxQuantity-qty {
			return domain.CartView{}, apperror.NewValidationError(fmt.Sprintf(
				"A linha de %s já tem %d unidades; o máximo é %d.", part.SKU, line.Quantity, domain.MaxQuantity))
		}
	}

	s.store.AddToCart(part, qty)
	return s.view(), nil
}

// RemoveItem remove a linha da peça. Peça ausente do carrinho não é erro.
func (s *Service) RemoveItem(ctx context.Context, partID string) (domain.CartView, error) {
	s.logger.Debug("Removendo item do carrinho.", map[string]interface{}{"part_id": partID})
	s.store.RemoveFromCart(partID)
	return s.view(), nil
}

// Clear esvazia o carrinho.
func (s *Service) Clear(ctx context.Context) error {
	s.store.ClearCart()
	s.logger.Debug("Carrinho esvaziado.", nil)
	return nil
}
