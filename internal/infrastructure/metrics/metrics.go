// Package metrics exposes the state of a pool as Prometheus metrics.
package metrics

import (
	"bufio"
	"net/http"
	"os"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "amm"

// Metrics collects gauges and counters about a single pool on a dedicated
// registry.
type Metrics struct {
	registry *prometheus.Registry

	reserveA          prometheus.Gauge
	reserveB          prometheus.Gauge
	priceAInB         prometheus.Gauge
	priceBInA         prometheus.Gauge
	priceAInBAdjusted prometheus.Gauge
	ratio             prometheus.Gauge
	trades            *prometheus.CounterVec
	ratioRefreshes    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reserveA: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reserve_a",
			Help:      "Amount of token A held by the pool.",
		}),
		reserveB: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reserve_b",
			Help:      "Amount of token B held by the pool.",
		}),
		priceAInB: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_a_in_b",
			Help:      "Spot price of token A in units of token B.",
		}),
		priceBInA: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_b_in_a",
			Help:      "Spot price of token B in units of token A.",
		}),
		priceAInBAdjusted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_a_in_b_adjusted",
			Help:      "Spot price of token A in units of token B scaled by the ratio.",
		}),
		ratio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ratio",
			Help:      "Committed ratio derived from the external signal.",
		}),
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Number of trades applied to the pool by supplied side.",
		}, []string{"side"}),
		ratioRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratio_refreshes_total",
			Help:      "Number of times the ratio has been refreshed.",
		}),
	}

	m.registry.MustRegister(
		m.reserveA, m.reserveB, m.priceAInB, m.priceBInA,
		m.priceAInBAdjusted, m.ratio, m.trades, m.ratioRefreshes,
	)
	return m
}

// ObserveSnapshot sets the gauges to the values of the given snapshot.
func (m *Metrics) ObserveSnapshot(s domain.Snapshot) {
	m.reserveA.Set(toFloat(s.ReserveA))
	m.reserveB.Set(toFloat(s.ReserveB))
	m.priceAInB.Set(toFloat(s.PriceAInB))
	m.priceBInA.Set(toFloat(s.PriceBInA))
	m.priceAInBAdjusted.Set(toFloat(s.PriceAInBAdjusted))
	m.ratio.Set(toFloat(s.Ratio))
}

func (m *Metrics) ObserveTrade(side domain.Side, s domain.Snapshot) {
	m.trades.WithLabelValues(side.String()).Inc()
	m.ObserveSnapshot(s)
}

func (m *Metrics) ObserveRatioRefresh(s domain.Snapshot) {
	m.ratioRefreshes.Inc()
	m.ObserveSnapshot(s)
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// DumpToFile appends the gathered metric families to the file at path.
func (m *Metrics) DumpToFile(path string) error {
	file, err := os.OpenFile(
		path,
		os.O_APPEND|os.O_CREATE|os.O_RDWR,
		0644,
	)
	if err != nil {
		return err
	}
	defer file.Close()

	metricFamily, err := m.registry.Gather()
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	for _, v := range metricFamily {
		if _, err := writer.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
