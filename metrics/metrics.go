package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the counters the console updates as sessions run.
// Each Collector owns its registry so tests do not share state.
type Collector struct {
	registry *prometheus.Registry

	orderLines  *prometheus.CounterVec
	orderEdits  *prometheus.CounterVec
	menuChanges *prometheus.CounterVec
	logins      *prometheus.CounterVec
	menuItems   prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		orderLines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_order_lines_total",
				Help: "Order lines requested, by outcome",
			},
			[]string{"outcome"},
		),
		orderEdits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_order_changes_total",
				Help: "Order edits and deletions, by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		menuChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_menu_changes_total",
				Help: "Admin menu changes, by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_logins_total",
				Help: "Login attempts, by role and outcome",
			},
			[]string{"role", "outcome"},
		),
		menuItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "restaurant_menu_items",
			Help: "Items currently on the menu",
		}),
	}

	registry.MustRegister(c.orderLines, c.orderEdits, c.menuChanges, c.logins, c.menuItems)
	return c
}

func outcome(err error) string {
	if err != nil {
		return "rejected"
	}
	return "ok"
}

func (c *Collector) RecordOrderLines(added, rejected int) {
	c.orderLines.WithLabelValues("ok").Add(float64(added))
	c.orderLines.WithLabelValues("rejected").Add(float64(rejected))
}

func (c *Collector) RecordOrderChange(op string, err error) {
	c.orderEdits.WithLabelValues(op, outcome(err)).Inc()
}

func (c *Collector) RecordMenuChange(op string, err error) {
	c.menuChanges.WithLabelValues(op, outcome(err)).Inc()
}

func (c *Collector) RecordLogin(role string, err error) {
	c.logins.WithLabelValues(role, outcome(err)).Inc()
}

func (c *Collector) SetMenuSize(n int) {
	c.menuItems.Set(float64(n))
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
