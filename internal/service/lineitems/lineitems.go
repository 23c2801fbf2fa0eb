// Package lineitems converte os itens recebidos pela API (ID da peça e
// quantidade) em linhas de carrinho com a peça resolvida no catálogo.
package lineitems

import (
	"fmt"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
)

// PartLookup é o pedaço do store necessário para resolver peças.
type PartLookup interface {
	Part(id string) (domain.Part, bool)
}

// NormalizeQuantity aplica a regra de quantidade: 0 (omitida) vira 1; negativa
// ou acima de domain.MaxQuantity é rejeitada.
func NormalizeQuantity(q int) (int, error) {
	switch {
	case q < 0:
		return 0, apperror.NewValidationError(fmt.Sprintf("A quantidade não pode ser negativa (recebido %d).", q))
	case q > domain.MaxQuantity:
		return 0, apperror.NewValidationError(fmt.Sprintf("A quantidade máxima por item é %d (recebido %d).", domain.MaxQuantity, q))
	case q == 0:
		return 1, nil
	}
	return q, nil
}

// Resolve valida e resolve cada item. Um ID desconhecido gera NotFoundError.
func Resolve(parts PartLookup, reqs []domain.ItemRequest) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0, len(reqs))
	for _, req := range reqs {
		if req.PartID == "" {
			return nil, apperror.NewValidationError("Todo item precisa de part_id.")
		}
		qty, err := NormalizeQuantity(req.Quantity)
		if err != nil {
			return nil, err
		}
		part, ok := parts.Part(req.PartID)
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Peça com ID %s não encontrada.", req.PartID))
		}
		items = append(items, domain.CartItem{Part: part, Quantity: qty})
	}
	return items, nil
}
