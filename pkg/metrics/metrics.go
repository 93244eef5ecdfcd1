package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry with HTTP and rental-domain collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   prometheus.Gauge

	contractEvents *prometheus.CounterVec
	invoiceEvents  *prometheus.CounterVec
	paymentAmount  prometheus.Counter
	occupancyConf  prometheus.Counter
	notifyFailures prometheus.Counter
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry:   r,
		httpReqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"}),
		httpDur:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route"}),
		httpInfl:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}),

		contractEvents: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "contract_events_total", Help: "Contract lifecycle transitions"}, []string{"event"}),
		invoiceEvents:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "invoice_events_total", Help: "Invoice lifecycle transitions"}, []string{"event"}),
		paymentAmount:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "payments_amount_vnd_total", Help: "Sum of confirmed payment amounts"}),
		occupancyConf:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "occupancy_conflicts_total", Help: "Unit claims rejected because the unit was taken"}),
		notifyFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "notification_failures_total"}),
	}
	r.MustRegister(m.httpReqCnt, m.httpDur, m.httpInfl,
		m.contractEvents, m.invoiceEvents, m.paymentAmount, m.occupancyConf, m.notifyFailures)
	return m
}

func (m *Metrics) ContractEvent(event string) {
	if m == nil {
		return
	}
	m.contractEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) InvoiceEvent(event string) {
	if m == nil {
		return
	}
	m.invoiceEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) PaymentConfirmed(amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.paymentAmount.Add(float64(amount))
}

func (m *Metrics) OccupancyConflict() {
	if m == nil {
		return
	}
	m.occupancyConf.Inc()
}

func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifyFailures.Inc()
}

// Middleware records request counts and latencies keyed by the matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.Inc()
		start := time.Now()
		c.Next()
		m.httpInfl.Dec()
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
