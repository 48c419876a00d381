package reliability

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netrel/paths"
	"github.com/katalvlaran/netrel/sdp"
)

// Sentinel errors returned by the orchestrator.
var (
	// ErrTopologyNil is returned when a nil core.Topology is supplied.
	ErrTopologyNil = errors.New("reliability: topology is nil")

	// ErrVertexNotFound indicates that the source or target is missing.
	ErrVertexNotFound = errors.New("reliability: vertex not found")

	// ErrSameEndpoints is returned when source == target.
	ErrSameEndpoints = errors.New("reliability: source equals target")

	// ErrPathLimit is returned when more s→t paths than WithMaxPaths allows are found.
	ErrPathLimit = errors.New("reliability: path limit exceeded")

	// ErrTermLimit is returned when the disjoint state outgrows WithMaxTerms.
	ErrTermLimit = errors.New("reliability: term limit exceeded")

	// ErrTooManyLinks is returned by Exhaustive above MaxExhaustiveLinks.
	ErrTooManyLinks = errors.New("reliability: too many links for exhaustive enumeration")

	// ErrOverlappingTerms is returned by VerifyDisjoint.
	ErrOverlappingTerms = errors.New("reliability: terms are not pairwise disjoint")

	// ErrBadConfig is returned by LoadConfig for out-of-range values.
	ErrBadConfig = errors.New("reliability: invalid config")
)

// Option configures a query.
type Option func(*Options)

// Options holds the parameters of a query. Zero limits mean unlimited.
type Options struct {
	// Ctx is checked once per s→t path; defaults to context.Background().
	Ctx context.Context

	// MaxPaths bounds the number of s→t paths processed (0 = unlimited).
	MaxPaths int

	// MaxTerms bounds the size of the disjoint state (0 = unlimited).
	MaxTerms int

	// Trace, if non-nil, receives per-path and final statistics.
	Trace TraceSink

	// Metrics, if non-nil, is updated once per finished query.
	Metrics *Metrics

	// KeepTerms retains the disjoint state in Result.Terms.
	KeepTerms bool

	// Workers bounds AllPairs/Queries parallelism (0 = GOMAXPROCS).
	Workers int
}

// DefaultOptions returns Options with a background context, no limits,
// no tracing, no metrics, and terms discarded.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths limits the number of s→t paths. Panics if n < 0.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("reliability: WithMaxPaths(%d): negative limit", n))
	}
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithMaxTerms limits the number of disjoint terms. Panics if n < 0.
func WithMaxTerms(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("reliability: WithMaxTerms(%d): negative limit", n))
	}
	return func(o *Options) {
		o.MaxTerms = n
	}
}

// WithTrace installs a TraceSink. nil disables tracing.
func WithTrace(sink TraceSink) Option {
	return func(o *Options) {
		o.Trace = sink
	}
}

// WithMetrics installs Prometheus collectors. nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithKeepTerms controls whether Result.Terms is populated.
func WithKeepTerms(keep bool) Option {
	return func(o *Options) {
		o.KeepTerms = keep
	}
}

// WithWorkers bounds the number of concurrent queries in AllPairs and Queries.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("reliability: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Stats aggregates one query: s→t paths processed, final term count and the
// Classify outcomes observed while reducing.
type Stats struct {
	Paths int
	Terms int
	sdp.Counts
}

// PathStats describes how one s→t path was absorbed into the state.
type PathStats struct {
	Index     int        // 1-based ordinal among s→t paths
	Path      paths.Path // independent copy
	Links     []int      // link IDs of Path
	Counts    sdp.Counts // classifications while reducing this path's term
	NewTerms  int        // disjoint terms contributed
	StateSize int        // len(state) after appending
}

// Result is the outcome of Compute.
type Result struct {
	Source, Target string
	Reliability    float64
	Terms          []sdp.Cube // nil unless WithKeepTerms(true)
	Stats          Stats
}
