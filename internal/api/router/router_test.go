package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partshub/internal/api/cart"
	"partshub/internal/api/catalog"
	"partshub/internal/api/invoice"
	"partshub/internal/api/order"
	"partshub/internal/api/report"
	"partshub/internal/api/router"
	"partshub/internal/api/sale"
	"partshub/internal/api/session"
	"partshub/internal/domain"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/metrics"
	"partshub/internal/pkg/token"
	"partshub/internal/repository/ledgerrepo"
	"partshub/internal/repository/prefrepo"
	"partshub/internal/service/cartservice"
	"partshub/internal/service/catalogservice"
	"partshub/internal/service/invoiceservice"
	"partshub/internal/service/orderservice"
	"partshub/internal/service/reportservice"
	"partshub/internal/service/saleservice"
	"partshub/internal/service/sessionservice"
	"partshub/internal/store"
)

// newTestServer monta a aplicação completa sobre o estado semente, sem atrasos.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	st := store.NewSeeded()
	m := metrics.NewServerMetrics()
	mem := cache.NewMemoryClient()
	tokens := token.NewService("router-test-secret", time.Hour)
	archive := ledgerrepo.NopRepository{}

	h := router.Handlers{
		Cart:    cart.NewHandler(cartservice.NewService(st, log), log),
		Catalog: catalog.NewHandler(catalogservice.NewService(st, log), log),
		Order:   order.NewHandler(orderservice.NewService(st, archive, m, orderservice.Config{ActiveRetailerID: "r1"}, log), log),
		Sale:    sale.NewHandler(saleservice.NewService(st, archive, m, "r1", 0, log), log),
		Invoice: invoice.NewHandler(invoiceservice.NewService(st, archive, m, log), log),
		Session: session.NewHandler(sessionservice.NewService(st, prefrepo.NewPreferenceRepository(mem, time.Second, log), tokens, log), log),
		Report:  report.NewHandler(reportservice.NewService(st, "r1", log), log),
	}
	srv := httptest.NewServer(router.NewRouter(h, router.Options{
		TokenService:    tokens,
		Cache:           mem,
		Metrics:         m,
		RateLimit:       1000,
		RateLimitWindow: time.Minute,
		Logger:          log,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, tok, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func login(t *testing.T, srv *httptest.Server, role domain.Role) string {
	t.Helper()
	resp := do(t, http.MethodPost, srv.URL+"/v1/session", "", `{"role":"`+string(role)+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var s domain.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	require.NotEmpty(t, s.Token)
	return s.Token
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/ping", "", "")
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestPublicCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/v1/parts?vehicle=v1", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parts []domain.Part
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parts))
	assert.NotEmpty(t, parts)
	for _, p := range parts {
		assert.True(t, p.Fits("v1"))
	}
}

func TestRoleScopedRoutes(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, http.MethodGet, srv.URL+"/v1/cart", "", "").StatusCode)

	garage := login(t, srv, domain.RoleGarage)
	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, srv.URL+"/v1/cart", garage, "").StatusCode)
	assert.Equal(t, http.StatusForbidden, do(t, http.MethodGet, srv.URL+"/v1/invoices", garage, "").StatusCode)
	assert.Equal(t, http.StatusForbidden, do(t, http.MethodPut, srv.URL+"/v1/parts/p1/stock", garage, `{"warehouse_stock":5}`).StatusCode)
}

func TestCartToOrderFlow(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, domain.RoleGarage)

	do(t, http.MethodPost, srv.URL+"/v1/cart/items", tok, `{"part_id":"p1","quantity":1}`)
	resp := do(t, http.MethodPost, srv.URL+"/v1/cart/items", tok, `{"part_id":"p1","quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view domain.CartView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)

	resp = do(t, http.MethodPost, srv.URL+"/v1/orders", tok, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var o domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.True(t, strings.HasPrefix(o.ID, "ORD-"))
	assert.Equal(t, 750.0, o.Total)

	resp = do(t, http.MethodGet, srv.URL+"/v1/cart", tok, "")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Empty(t, view.Items)
}

func TestCartQuantityCapKeepsSaleConsistent(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, domain.RoleRetailer)

	resp := do(t, http.MethodPost, srv.URL+"/v1/cart/items", tok, `{"part_id":"p1","quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/v1/cart/items", tok, `{"part_id":"p1","quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/v1/sales", tok, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var records []domain.SalesRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, 500.0, records[0].Amount)
}

func TestManualSaleRecordIsRetailerOnly(t *testing.T) {
	srv := newTestServer(t)
	body := `{"part_id":"p1","customer":"Sharma Motors"}`

	garage := login(t, srv, domain.RoleGarage)
	assert.Equal(t, http.StatusForbidden, do(t, http.MethodPost, srv.URL+"/v1/sales/records", garage, body).StatusCode)

	tok := login(t, srv, domain.RoleRetailer)
	resp := do(t, http.MethodPost, srv.URL+"/v1/sales/records", tok, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var rec domain.SalesRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))

	resp = do(t, http.MethodGet, srv.URL+"/v1/sales?status=pending", tok, "")
	var pending []domain.SalesRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	require.NotEmpty(t, pending)
	assert.Equal(t, rec.ID, pending[0].ID)
}

func TestWarehouseOrderAndInvoice(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, domain.RoleRetailer)

	resp := do(t, http.MethodPost, srv.URL+"/v1/warehouse-orders", tok, `{"items":[{"part_id":"p1","quantity":4}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var receipt domain.WarehouseOrderReceipt
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	assert.InDelta(t, 700.0, receipt.Invoice.Amount, 0.001)

	resp = do(t, http.MethodPost, srv.URL+"/v1/invoices/"+receipt.Invoice.ID+"/pay", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodPost, srv.URL+"/v1/invoices/"+receipt.Invoice.ID+"/pay", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inv domain.Invoice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	assert.Equal(t, domain.InvoicePaid, inv.Status)

	metricsBody, _ := io.ReadAll(do(t, http.MethodGet, srv.URL+"/metrics", "", "").Body)
	assert.Contains(t, string(metricsBody), "partshub_invoices_paid_total 1")

	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, srv.URL+"/v1/invoices/INV-nope/pay", tok, "").StatusCode)
}

func TestWholesalerStockUpdate(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, domain.RoleWholesaler)

	resp := do(t, http.MethodPut, srv.URL+"/v1/parts/p1/stock", tok, `{"warehouse_stock":7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/v1/parts/p1", "", "")
	var p domain.Part
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 7, p.WarehouseStock)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	do(t, http.MethodGet, srv.URL+"/ping", "", "")

	resp := do(t, http.MethodGet, srv.URL+"/metrics", "", "")
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `partshub_http_requests_total{handler="GET /ping",status="200"} 1`)
}
