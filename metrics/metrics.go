// Package metrics counts what the quadrant form does and serves the counts in
// the Prometheus text format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters of one application instance.
type Metrics struct {
	reg *prometheus.Registry

	renders  *prometheus.CounterVec
	rejected prometheus.Counter
	scale    prometheus.Gauge
}

// New registers a fresh set of counters on a private registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quadgrid",
			Name:      "renders_total",
			Help:      "Points classified and plotted, by region.",
		}, []string{"region"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quadgrid",
			Name:      "rejected_inputs_total",
			Help:      "Calculate requests rejected because a field was not numeric.",
		}),
		scale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadgrid",
			Name:      "scale_factor",
			Help:      "Half-width in data units of the grid currently shown.",
		}),
	}
	m.reg.MustRegister(m.renders, m.rejected, m.scale)
	return m
}

// Rendered records a plotted point.
func (m *Metrics) Rendered(region string, scale float64) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(region).Inc()
	m.scale.Set(scale)
}

// Rejected records a calculate request with invalid input.
func (m *Metrics) Rejected() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}

// Handler serves the counters.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics: %w", err)
	}
}
