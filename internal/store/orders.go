package store

import (
	"partshub/internal/domain"
)

// PlaceOrder transforma o carrinho atual em um pedido de cliente, grava-o no
// topo da lista e esvazia o carrinho. Sempre tem sucesso, mesmo com carrinho vazio.
func (s *Store) PlaceOrder(details domain.OrderDetails) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := domain.CloneItems(s.state.Cart)
	order := domain.Order{
		ID:           s.newID("ORD", 10000),
		Date:         s.today(),
		Items:        items,
		Total:        domain.SumItems(items),
		Status:       domain.OrderProcessing,
		RetailerName: details.RetailerName,
		ETA:          domain.DefaultOrderETA,
	}
	s.state.Orders = append([]domain.Order{order}, s.state.Orders...)
	s.state.Cart = nil

	return cloneOrders([]domain.Order{order})[0]
}

// Orders devolve os pedidos de cliente, mais recente primeiro.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.state.Orders)
}

// PlaceDarkstoreOrder registra um pedido de entrega expressa com status
// "confirmed". O status não é alterado depois.
func (s *Store) PlaceDarkstoreOrder(items []domain.CartItem, deliveryType domain.DeliveryType, address string) domain.DarkstoreOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := domain.CloneItems(items)
	order := domain.DarkstoreOrder{
		ID:              s.newID("DS", 10000),
		Date:            s.today(),
		Items:           lines,
		Total:           domain.SumItems(lines),
		Status:          domain.DarkstoreConfirmed,
		DeliveryType:    deliveryType,
		DeliveryAddress: address,
		ETA:             domain.DefaultDarkstoreETA,
	}
	s.state.DarkstoreOrders = append([]domain.DarkstoreOrder{order}, s.state.DarkstoreOrders...)

	return cloneDarkstoreOrders([]domain.DarkstoreOrder{order})[0]
}

// DarkstoreOrders devolve os pedidos darkstore, mais recente primeiro.
func (s *Store) DarkstoreOrders() []domain.DarkstoreOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDarkstoreOrders(s.state.DarkstoreOrders)
}

// PlaceWarehouseOrder cria o pedido de reposição (preço de atacado = 70% do
// preço de tabela) e a fatura correspondente, com vencimento em 30 dias.
func (s *Store) PlaceWarehouseOrder(items []domain.CartItem) (domain.WarehouseOrder, domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := domain.CloneItems(items)
	var total float64
	for _, it := range lines {
		total += it.Part.Price * domain.WholesaleRate * float64(it.Quantity)
	}

	date := s.today()
	order := domain.WarehouseOrder{
		ID:     s.newID("WO", 10000),
		Date:   date,
		Items:  lines,
		Total:  total,
		Status: domain.WarehousePending,
	}
	invoice := domain.Invoice{
		ID:      s.newID("INV", 10000),
		Date:    date,
		Amount:  total,
		DueDate: date.AddDate(0, 0, domain.InvoiceTermDays),
		Status:  domain.InvoicePending,
		OrderID: order.ID,
	}

	s.state.WarehouseOrders = append([]domain.WarehouseOrder{order}, s.state.WarehouseOrders...)
	s.state.Invoices = append([]domain.Invoice{invoice}, s.state.Invoices...)

	return cloneWarehouseOrders([]domain.WarehouseOrder{order})[0], invoice
}

// WarehouseOrders devolve os pedidos de reposição, mais recente primeiro.
func (s *Store) WarehouseOrders() []domain.WarehouseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWarehouseOrders(s.state.WarehouseOrders)
}

// Invoices devolve as faturas, mais recente primeiro.
func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.state.Invoices...)
}

// PayInvoice marca a fatura como paga e devolve também o status anterior.
// Devolve false (sem mudar nada) se o ID não existir. Pagar de novo mantém "paid".
func (s *Store) PayInvoice(id string) (domain.Invoice, domain.InvoiceStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Invoices {
		if s.state.Invoices[i].ID == id {
			prev := s.state.Invoices[i].Status
			s.state.Invoices[i].Status = domain.InvoicePaid
			return s.state.Invoices[i], prev, true
		}
	}
	return domain.Invoice{}, "", false
}
