package store

import "partshub/internal/domain"

// ProcessSale baixa o estoque do lojista (nunca abaixo de zero), grava uma
// venda "paid" por item e esvazia o carrinho. Peças ausentes do estoque do
// lojista ainda geram venda; só a baixa é pulada.
func (s *Store) ProcessSale(retailerID string, items []domain.CartItem, customer string) []domain.SalesRecord {
	if customer == "" {
		customer = domain.WalkInCustomer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for r := range s.state.Retailers {
		if s.state.Retailers[r].ID != retailerID {
			continue
		}
		inv := s.state.Retailers[r].Inventory
		for _, item := range items {
			for i := range inv {
				if inv[i].PartID == item.Part.ID {
					inv[i].Quantity = max(0, inv[i].Quantity-item.Quantity)
					break
				}
			}
		}
	}

	date := s.today()
	records := make([]domain.SalesRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.SalesRecord{
			ID:       s.newID("SALE", 100000),
			Date:     date,
			PartName: item.Part.Name,
			SKU:      item.Part.SKU,
			Amount:   item.LineTotal(),
			Status:   domain.SalePaid,
			Customer: customer,
		})
	}

	s.state.Sales = append(append([]domain.SalesRecord(nil), records...), s.state.Sales...)
	s.state.Cart = nil

	return append([]domain.SalesRecord(nil), records...)
}

// AddSale grava um registro avulso no topo do ledger. ID e data vazios são
// preenchidos como numa venda de balcão.
func (s *Store) AddSale(record domain.SalesRecord) domain.SalesRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = s.newID("SALE", 100000)
	}
	if record.Date.IsZero() {
		record.Date = s.today()
	}
	s.state.Sales = append([]domain.SalesRecord{record}, s.state.Sales...)
	return record
}

// Sales devolve o ledger, mais recente primeiro.
func (s *Store) Sales() []domain.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SalesRecord(nil), s.state.Sales...)
}
