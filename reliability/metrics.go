package reliability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/netrel/sdp"
)

// Query outcome label values for netrel_queries_total.
const (
	outcomeOK          = "ok"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

// Metrics holds the Prometheus collectors updated by finished queries.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries   *prometheus.CounterVec
	paths     prometheus.Counter
	terms     prometheus.Histogram
	relations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when reg is nil):
//
//	netrel_queries_total{outcome}    queries by outcome (ok, unreachable, error)
//	netrel_paths_total               s→t paths absorbed
//	netrel_terms                     disjoint terms per query
//	netrel_relations_total{relation} Classify outcomes while reducing
//
// Registering twice on the same registry returns an error.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netrel_queries_total",
			Help: "Two-terminal reliability queries by outcome.",
		}, []string{"outcome"}),
		paths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netrel_paths_total",
			Help: "Simple source-to-target paths absorbed into disjoint state.",
		}),
		terms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "netrel_terms",
			Help:    "Disjoint product terms per query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		relations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netrel_relations_total",
			Help: "Cube classifications observed while reducing.",
		}, []string{"relation"}),
	}
	for _, c := range []prometheus.Collector{m.queries, m.paths, m.terms, m.relations} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("reliability: NewMetrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(st Stats, outcome string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
	m.paths.Add(float64(st.Paths))
	if outcome != outcomeError {
		m.terms.Observe(float64(st.Terms))
	}
	m.relations.WithLabelValues(sdp.Subset.String()).Add(float64(st.Subset))
	m.relations.WithLabelValues(sdp.Disjoint.String()).Add(float64(st.Disjoint))
	m.relations.WithLabelValues(sdp.X1.String()).Add(float64(st.X1))
	m.relations.WithLabelValues(sdp.SplitRecursive.String()).Add(float64(st.SplitRecursive))
}
