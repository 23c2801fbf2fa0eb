package store

import "partshub/internal/domain"

// Cart devolve uma cópia do carrinho.
func (s *Store) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneItems(s.state.Cart)
}

// CartTotal soma preço * quantidade do carrinho.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SumItems(s.state.Cart)
}

// AddToCart soma a quantidade na linha da mesma peça ou cria uma linha nova.
// Quantidades menores que 1 são ignoradas para nunca gerar linha inválida, e a
// linha satura em domain.MaxQuantity.
func (s *Store) AddToCart(part domain.Part, quantity int) {
	if quantity < 1 {
		return
	}
	quantity = min(quantity, domain.MaxQuantity)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].Part.ID == part.ID {
			s.state.Cart[i].Quantity = min(s.state.Cart[i].Quantity, domain.MaxQuantity-quantity) + quantity
			return
		}
	}
	s.state.Cart = append(s.state.Cart, domain.CartItem{Part: part.Clone(), Quantity: quantity})
}

// RemoveFromCart remove a linha da peça; no-op se ela não estiver no carrinho.
func (s *Store) RemoveFromCart(partID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Cart[:0]
	for _, item := range s.state.Cart {
		if item.Part.ID != partID {
			kept = append(kept, item)
		}
	}
	s.state.Cart = kept
}

// ClearCart esvazia o carrinho.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Cart = nil
}
