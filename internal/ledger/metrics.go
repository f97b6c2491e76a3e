package ledger

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes ledger size and rejection counts to Prometheus.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	users      prometheus.Gauge
	groups     prometheus.Gauge
	expenses   prometheus.Gauge
	rejections *prometheus.CounterVec
}

// NewMetrics creates the ledger collectors and registers them with reg.
// It panics if the collectors are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "splitledger",
			Name:      "users",
			Help:      "Number of registered users.",
		}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "splitledger",
			Name:      "groups",
			Help:      "Number of groups.",
		}),
		expenses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "splitledger",
			Name:      "expenses",
			Help:      "Number of recorded expenses.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "rejections_total",
			Help:      "Ledger operations rejected by validation.",
		}, []string{"op", "kind"}),
	}
	reg.MustRegister(m.users, m.groups, m.expenses, m.rejections)
	return m
}

func (m *Metrics) observe(s Stats) {
	if m == nil {
		return
	}
	m.users.Set(float64(s.Users))
	m.groups.Set(float64(s.Groups))
	m.expenses.Set(float64(s.Expenses))
}

func (m *Metrics) reject(op string, err error) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(op, kindName(err)).Inc()
}
