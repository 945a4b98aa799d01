// Package metrics exposes Prometheus collectors for the HTTP layer, logins and ledger writes.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LoginAttempts       *prometheus.CounterVec
	LedgerWrites        *prometheus.CounterVec
}

// New registers every collector plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_attempts_total",
				Help: "Login attempts by outcome (success, invalid, throttled, error)",
			},
			[]string{"outcome"},
		),
		LedgerWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_writes_total",
				Help: "Stock ledger writes by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LoginAttempts,
		m.LedgerWrites,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer is used by tests to inspect collected values.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// Outcome labels err by its domain kind.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return "invalid"
	case domain.KindConflict:
		return "conflict"
	case domain.KindNotFound:
		return "not_found"
	case domain.KindAuth, domain.KindAuthz:
		return "denied"
	default:
		return "error"
	}
}

// InstrumentStock counts the writes going through repo.
func (m *Metrics) InstrumentStock(repo repository.StockRepository) repository.StockRepository {
	return &instrumentedStock{StockRepository: repo, writes: m.LedgerWrites}
}

type instrumentedStock struct {
	repository.StockRepository
	writes *prometheus.CounterVec
}

func (s *instrumentedStock) Upsert(ctx context.Context, e *entity.StockEntry) (*entity.StockEntry, error) {
	out, err := s.StockRepository.Upsert(ctx, e)
	s.writes.WithLabelValues("set_quantity", Outcome(err)).Inc()
	return out, err
}

func (s *instrumentedStock) Insert(ctx context.Context, e *entity.StockEntry) (*entity.StockEntry, error) {
	out, err := s.StockRepository.Insert(ctx, e)
	s.writes.WithLabelValues("add_product", Outcome(err)).Inc()
	return out, err
}
