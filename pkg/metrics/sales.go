package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// SalesMetrics records counters for committed sales.
type SalesMetrics struct {
	committed *prometheus.CounterVec
	units     *prometheus.CounterVec
	revenue   *prometheus.CounterVec
}

// NewSalesMetrics registers the sales metrics on the provided registerer.
func NewSalesMetrics(reg prometheus.Registerer) *SalesMetrics {
	if reg == nil {
		return &SalesMetrics{}
	}
	committed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_committed_total",
		Help: "Sales committed to the ledger.",
	}, []string{"payment_method"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_units_sold_total",
		Help: "Units sold across committed sales.",
	}, []string{"payment_method"})
	revenue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_revenue_total",
		Help: "Revenue from committed sales in major currency units.",
	}, []string{"payment_method"})
	reg.MustRegister(committed, units, revenue)
	return &SalesMetrics{
		committed: committed,
		units:     units,
		revenue:   revenue,
	}
}

// ObserveSale records one committed sale.
func (s *SalesMetrics) ObserveSale(paymentMethod string, units int, total decimal.Decimal) {
	if s == nil || s.committed == nil {
		return
	}
	label := normalizeLabel(paymentMethod)
	s.committed.WithLabelValues(label).Inc()
	s.units.WithLabelValues(label).Add(float64(units))
	amount, _ := total.Float64()
	s.revenue.WithLabelValues(label).Add(amount)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
