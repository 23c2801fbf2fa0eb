package domain

// Limiares de estoque baixo usados nos painéis.
const (
	LowRetailerStock  = 3  // quantidade < 3 na loja
	LowWarehouseStock = 10 // warehouse_stock <= 10 no armazém
)

// RetailerSummary alimenta o painel do lojista.
type RetailerSummary struct {
	RetailerID      string  `json:"retailer_id"`
	TotalSales      float64 `json:"total_sales"`
	SalesCount      int     `json:"sales_count"`
	AverageSale     float64 `json:"average_sale"`
	PendingPayments float64 `json:"pending_payments"`
	PendingInvoices int     `json:"pending_invoices"`
	OpenOrders      int     `json:"open_orders"`
	DarkstoreOrders int     `json:"darkstore_orders"`
	LowStockItems   int     `json:"low_stock_items"`
}

// WholesalerSummary alimenta o painel do atacadista.
type WholesalerSummary struct {
	TotalWarehouseUnits int     `json:"total_warehouse_units"`
	CatalogSize         int     `json:"catalog_size"`
	LowStockParts       int     `json:"low_stock_parts"`
	RetailerCount       int     `json:"retailer_count"`
	WarehouseOrders     int     `json:"warehouse_orders"`
	WarehouseRevenue    float64 `json:"warehouse_revenue"`
}
