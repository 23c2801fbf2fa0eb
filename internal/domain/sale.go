package domain

import "time"

// SaleStatus é o estado de pagamento de uma venda.
type SaleStatus string

const (
	SalePaid    SaleStatus = "paid"
	SalePending SaleStatus = "pending"
)

// WalkInCustomer é o cliente padrão de uma venda de balcão.
const WalkInCustomer = "Walk-in"

// SalesRecord é uma entrada imutável do ledger de vendas (uma por item vendido).
type SalesRecord struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	PartName string     `json:"part_name"`
	SKU      string     `json:"sku"`
	Amount   float64    `json:"amount"`
	Status   SaleStatus `json:"status"`
	Customer string     `json:"customer,omitempty"`
}

// SalesRecordRequest é o lançamento manual de uma venda no ledger (ex.: venda a
// prazo). Amount omitido usa o preço de tabela; Status omitido vale "pending".
type SalesRecordRequest struct {
	PartID   string     `json:"part_id"`
	Amount   *float64   `json:"amount"`
	Status   SaleStatus `json:"status"`
	Customer string     `json:"customer"`
}

// SaleRequest é o payload de uma venda. Sem itens, o carrinho atual é vendido.
type SaleRequest struct {
	Items    []ItemRequest `json:"items"`
	Customer string        `json:"customer"`
}
