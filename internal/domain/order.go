package domain

import "time"

// OrderStatus é o estado de um pedido de cliente. Fixado na criação.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderInTransit  OrderStatus = "in-transit"
	OrderDelivered  OrderStatus = "delivered"
)

// DefaultOrderETA é o prazo fixo informado em todo pedido de cliente.
const DefaultOrderETA = "5-6 hours"

// Order é um pedido de cliente (garagem ou balcão) gerado a partir do carrinho.
type Order struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	Items        []CartItem  `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	RetailerName string      `json:"retailer_name,omitempty"`
	ETA          string      `json:"eta,omitempty"`
}

// OrderDetails são os dados extras informados ao fechar um pedido.
type OrderDetails struct {
	RetailerName string `json:"retailer_name"`
}

// DarkstoreStatus é o estado de um pedido darkstore. Fixado em "confirmed".
type DarkstoreStatus string

const (
	DarkstoreConfirmed      DarkstoreStatus = "confirmed"
	DarkstorePreparing      DarkstoreStatus = "preparing"
	DarkstoreOutForDelivery DarkstoreStatus = "out-for-delivery"
	DarkstoreDelivered      DarkstoreStatus = "delivered"
)

// DefaultDarkstoreETA é o prazo fixo de entrega expressa.
const DefaultDarkstoreETA = "45 mins"

// DeliveryType define o destino de um pedido darkstore.
type DeliveryType string

const (
	DeliverToStore  DeliveryType = "store"
	DeliverToGarage DeliveryType = "garage"
)

// Valid informa se o tipo de entrega é conhecido.
func (d DeliveryType) Valid() bool {
	return d == DeliverToStore || d == DeliverToGarage
}

// Rider é o entregador atribuído a um pedido darkstore.
type Rider struct {
	Name          string      `json:"name"`
	VehicleNumber string      `json:"vehicle_number"`
	Phone         string      `json:"phone"`
	Coordinates   Coordinates `json:"coordinates"`
}

// DarkstoreOrder é um pedido de entrega expressa do armazém central.
type DarkstoreOrder struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Status          DarkstoreStatus `json:"status"`
	DeliveryType    DeliveryType    `json:"delivery_type"`
	DeliveryAddress string          `json:"delivery_address"`
	ETA             string          `json:"eta"`
	Rider           *Rider          `json:"rider,omitempty"`
}

// DarkstoreOrderRequest é o payload de criação de pedido darkstore.
type DarkstoreOrderRequest struct {
	Items        []ItemRequest `json:"items"`
	DeliveryType DeliveryType  `json:"delivery_type"`
	Address      string        `json:"address"`
}

// WarehouseOrderStatus é o estado de um pedido de reposição. Fixado em "pending".
type WarehouseOrderStatus string

const (
	WarehousePending  WarehouseOrderStatus = "pending"
	WarehouseApproved WarehouseOrderStatus = "approved"
	WarehouseShipped  WarehouseOrderStatus = "shipped"
)

// WholesaleRate é o fator aplicado ao preço de tabela nos pedidos de reposição.
const WholesaleRate = 0.7

// WarehouseOrder é um pedido de reposição do lojista ao atacadista.
type WarehouseOrder struct {
	ID     string               `json:"id"`
	Date   time.Time            `json:"date"`
	Items  []CartItem           `json:"items"`
	Total  float64              `json:"total"`
	Status WarehouseOrderStatus `json:"status"`
}

// WarehouseOrderRequest é o payload de criação de pedido de reposição.
type WarehouseOrderRequest struct {
	Items []ItemRequest `json:"items"`
}

// WarehouseOrderReceipt devolve o pedido e a fatura gerada junto.
type WarehouseOrderReceipt struct {
	Order   WarehouseOrder `json:"order"`
	Invoice Invoice        `json:"invoice"`
}
