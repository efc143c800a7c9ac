package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vinixport"

// Metrics - набор счетчиков сервиса на отдельном реестре
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// transition: submit, approve_payment, reject_payment, complete; outcome: ok, noop, precondition, not_found, error
	ReviewTransitions *prometheus.CounterVec
	// result: ok, locked, not_found
	PortfolioViews *prometheus.CounterVec
	// kind: email, kafka
	SideEffectFailures *prometheus.CounterVec
	// заявки, ожидающие проверки оплаты; обновляет workers.PaymentBacklogWorker
	PaymentsAwaitingVerification prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ReviewTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_request_transitions_total",
			Help:      "Review request ledger transitions by outcome",
		}, []string{"transition", "outcome"}),
		PortfolioViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "portfolio_views_total",
			Help:      "Portfolio page reads by access decision",
		}, []string{"result"}),
		SideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Failed notifications and event publications",
		}, []string{"kind"}),
		PaymentsAwaitingVerification: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "payments_awaiting_verification",
			Help:      "Review requests whose payment is waiting for verification",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReviewTransitions,
		m.PortfolioViews,
		m.SideEffectFailures,
		m.PaymentsAwaitingVerification,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveTransition(transition, outcome string) {
	if m == nil {
		return
	}
	m.ReviewTransitions.WithLabelValues(transition, outcome).Inc()
}

func (m *Metrics) ObservePortfolioView(result string) {
	if m == nil {
		return
	}
	m.PortfolioViews.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSideEffectFailure(kind string) {
	if m == nil {
		return
	}
	m.SideEffectFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) SetPaymentBacklog(n int64) {
	if m == nil {
		return
	}
	m.PaymentsAwaitingVerification.Set(float64(n))
}
