package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "partshub"

// Tipos de pedido usados no rótulo "kind".
const (
	KindCustomer  = "customer"
	KindDarkstore = "darkstore"
	KindWarehouse = "warehouse"
)

// ServerMetrics reúne as métricas HTTP e de domínio em um registry próprio,
// para que cada instância (e cada teste) tenha contadores isolados.
type ServerMetrics struct {
	Registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersPlaced *prometheus.CounterVec
	SaleLines    prometheus.Counter
	SalesAmount  prometheus.Counter
	InvoicesPaid prometheus.Counter
}

// NewServerMetrics cria e registra as métricas.
func NewServerMetrics() *ServerMetrics {
	reg := prometheus.NewRegistry()

	m := &ServerMetrics{
		Registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 1500, 2500, 5000},
		}, []string{"handler"}),
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders placed, by kind (customer, darkstore, warehouse).",
		}, []string{"kind"}),
		SaleLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_lines_total",
			Help:      "Sales records written to the ledger.",
		}),
		SalesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_amount_rupees_total",
			Help:      "Sum of processed sale amounts.",
		}),
		InvoicesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_paid_total",
			Help:      "Invoice payments.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests, m.LatencyMS, m.OrdersPlaced, m.SaleLines, m.SalesAmount, m.InvoicesPaid,
	)
	return m
}

// Handler expõe o registry em /metrics.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveOrder conta um pedido do tipo informado.
func (m *ServerMetrics) ObserveOrder(kind string) {
	m.OrdersPlaced.WithLabelValues(kind).Inc()
}

// ObserveSale conta as linhas e o valor de uma venda. Counter só cresce, então
// valores negativos são ignorados.
func (m *ServerMetrics) ObserveSale(lines int, amount float64) {
	if lines > 0 {
		m.SaleLines.Add(float64(lines))
	}
	if amount > 0 {
		m.SalesAmount.Add(amount)
	}
}

// ObserveInvoicePaid conta um pagamento de fatura.
func (m *ServerMetrics) ObserveInvoicePaid() {
	m.InvoicesPaid.Inc()
}
