package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pathPassthrough = "passthrough"
	pathString      = "string"
	pathDecimal     = "decimal"
)

// Metrics are shared by every decoder created with WithMetrics. A nil
// *Metrics records nothing.
type Metrics struct {
	dictionaries  prometheus.Counter
	corruptPages  prometheus.Counter
	decodedValues *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		dictionaries: f.NewCounter(prometheus.CounterOpts{
			Namespace: "bytedict",
			Name:      "dictionaries_built_total",
			Help:      "Number of dictionary pages decoded into a table.",
		}),
		corruptPages: f.NewCounter(prometheus.CounterOpts{
			Namespace: "bytedict",
			Name:      "corrupt_pages_total",
			Help:      "Number of dictionary or index pages rejected as corrupt.",
		}),
		decodedValues: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bytedict",
			Name:      "decoded_values_total",
			Help:      "Number of non-null values written to output columns, by decode path.",
		}, []string{"path"}),
	}
}

func (m *Metrics) dictionaryBuilt() {
	if m == nil {
		return
	}

	m.dictionaries.Inc()
}

func (m *Metrics) corruptPage() {
	if m == nil {
		return
	}

	m.corruptPages.Inc()
}

func (m *Metrics) valuesDecoded(path string, n int) {
	if m == nil || n == 0 {
		return
	}

	m.decodedValues.WithLabelValues(path).Add(float64(n))
}
