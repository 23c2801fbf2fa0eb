package store

import "partshub/internal/domain"

// Parts devolve o catálogo.
func (s *Store) Parts() []domain.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneParts(s.state.Parts)
}

// Part busca uma peça pelo ID.
func (s *Store) Part(id string) (domain.Part, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Parts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Part{}, false
}

// UpdatePartStock sobrescreve o estoque de armazém da peça. Devolve false
// (sem mudar nada) se a peça não existir.
func (s *Store) UpdatePartStock(partID string, newStock int) (domain.Part, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Parts {
		if s.state.Parts[i].ID == partID {
			s.state.Parts[i].WarehouseStock = newStock
			return s.state.Parts[i].Clone(), true
		}
	}
	return domain.Part{}, false
}

// Vehicles devolve a lista de veículos.
func (s *Store) Vehicles() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVehicles(s.state.Vehicles)
}

// Retailers devolve as lojas com seus estoques.
func (s *Store) Retailers() []domain.Retailer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRetailers(s.state.Retailers)
}

// Retailer busca uma loja pelo ID.
func (s *Store) Retailer(id string) (domain.Retailer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.Retailers {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return domain.Retailer{}, false
}
