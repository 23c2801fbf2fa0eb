package domain

import "time"

// InvoiceStatus é o estado de uma fatura. Só pending -> paid é alcançável.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceTermDays é o prazo de vencimento a partir da data do pedido.
const InvoiceTermDays = 30

// Invoice é gerada 1:1 com um pedido de reposição.
type Invoice struct {
	ID      string        `json:"id"`
	Date    time.Time     `json:"date"`
	Amount  float64       `json:"amount"`
	DueDate time.Time     `json:"due_date"`
	Status  InvoiceStatus `json:"status"`
	OrderID string        `json:"order_id"`
}
