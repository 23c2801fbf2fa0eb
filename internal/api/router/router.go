package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "partshub/docs" // registra o documento OpenAPI em swag

	"partshub/internal/api/cart"
	"partshub/internal/api/catalog"
	"partshub/internal/api/invoice"
	"partshub/internal/api/order"
	"partshub/internal/api/report"
	"partshub/internal/api/sale"
	"partshub/internal/api/session"
	"partshub/internal/domain"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/metrics"
	"partshub/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Cart    *cart.Handler
	Catalog *catalog.Handler
	Order   *order.Handler
	Sale    *sale.Handler
	Invoice *invoice.Handler
	Session *session.Handler
	Report  *report.Handler
}

// Options agrupa a infraestrutura usada pelos middlewares globais.
type Options struct {
	TokenService    middleware.TokenService
	Cache           cache.Client
	Metrics         *metrics.ServerMetrics
	RateLimit       int
	RateLimitWindow time.Duration
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	log := opts.Logger

	// Atalhos de autorização por papel
	retailer := middleware.RequireRoles(opts.TokenService, log, domain.RoleRetailer)
	wholesaler := middleware.RequireRoles(opts.TokenService, log, domain.RoleWholesaler)
	buyer := middleware.RequireRoles(opts.TokenService, log, domain.RoleRetailer, domain.RoleGarage)

	// --- 1. Health check, métricas e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /metrics", opts.Metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Sessão e tema (públicas) ---
	mux.HandleFunc("POST /v1/session", h.Session.SelectRoleHandler)
	mux.HandleFunc("GET /v1/session", h.Session.CurrentRoleHandler)
	mux.HandleFunc("DELETE /v1/session", h.Session.ClearRoleHandler)
	mux.HandleFunc("GET /v1/theme", h.Session.GetThemeHandler)
	mux.HandleFunc("PUT /v1/theme", h.Session.SetThemeHandler)
	mux.HandleFunc("POST /v1/theme/toggle", h.Session.ToggleThemeHandler)

	// --- 3. Catálogo e lojas (leitura pública) ---
	mux.HandleFunc("GET /v1/parts", h.Catalog.ListPartsHandler)
	mux.HandleFunc("GET /v1/parts/{id}", h.Catalog.GetPartHandler)
	mux.HandleFunc("PUT /v1/parts/{id}/stock", wholesaler(h.Catalog.UpdatePartStockHandler))
	mux.HandleFunc("GET /v1/vehicles", h.Catalog.ListVehiclesHandler)
	mux.HandleFunc("GET /v1/vehicles/compatible-parts", h.Catalog.CompatiblePartsHandler)
	mux.HandleFunc("GET /v1/retailers", h.Catalog.ListRetailersHandler)
	mux.HandleFunc("GET /v1/retailers/{id}", h.Catalog.GetRetailerHandler)
	mux.HandleFunc("GET /v1/retailers/{id}/inventory", h.Catalog.RetailerInventoryHandler)

	// --- 4. Carrinho e pedidos de clientes (lojista ou oficina) ---
	mux.HandleFunc("GET /v1/cart", buyer(h.Cart.GetCartHandler))
	mux.HandleFunc("POST /v1/cart/items", buyer(h.Cart.AddItemHandler))
	mux.HandleFunc("DELETE /v1/cart/items/{partID}", buyer(h.Cart.RemoveItemHandler))
	mux.HandleFunc("DELETE /v1/cart", buyer(h.Cart.ClearHandler))
	mux.HandleFunc("POST /v1/orders", buyer(h.Order.PlaceOrderHandler))
	mux.HandleFunc("GET /v1/orders", buyer(h.Order.ListOrdersHandler))
	mux.HandleFunc("POST /v1/darkstore-orders", buyer(h.Order.PlaceDarkstoreOrderHandler))
	mux.HandleFunc("GET /v1/darkstore-orders", buyer(h.Order.ListDarkstoreOrdersHandler))

	// --- 5. Operação da loja (lojista) ---
	mux.HandleFunc("POST /v1/sales", retailer(h.Sale.ProcessSaleHandler))
	mux.HandleFunc("GET /v1/sales", retailer(h.Sale.ListSalesHandler))
	mux.HandleFunc("POST /v1/sales/records", retailer(h.Sale.RecordSaleHandler))
	mux.HandleFunc("POST /v1/warehouse-orders", retailer(h.Order.PlaceWarehouseOrderHandler))
	mux.HandleFunc("GET /v1/warehouse-orders", retailer(h.Order.ListWarehouseOrdersHandler))
	mux.HandleFunc("GET /v1/invoices", retailer(h.Invoice.ListInvoicesHandler))
	mux.HandleFunc("POST /v1/invoices/{id}/pay", retailer(h.Invoice.PayInvoiceHandler))
	mux.HandleFunc("GET /v1/reports/retailer", retailer(h.Report.RetailerSummaryHandler))

	// --- 6. Atacadista ---
	mux.HandleFunc("GET /v1/reports/wholesaler", wholesaler(h.Report.WholesalerSummaryHandler))

	// --- 7. Middlewares globais ---
	// Instrument fica por fora para contar também as respostas 429.
	var handler http.Handler = mux
	handler = middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateLimitWindow, log)(handler)
	handler = middleware.Instrument(opts.Metrics, log)(handler)
	return handler
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
