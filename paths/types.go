// Package paths defines types and options for simple-path enumeration,
// including cancellation, depth limiting and the Path value itself.
package paths

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil core.Topology is passed to New,
	// All, Between or Reachable.
	ErrGraphNil = errors.New("paths: topology is nil")

	// ErrStartVertexNotFound indicates that the specified source vertex ID
	// does not exist in the topology.
	ErrStartVertexNotFound = errors.New("paths: start vertex not found")
)

// Path is an ordered sequence of vertex IDs, source first.
// A Path returned by an Enumerator is mutated in place by the next call;
// use Clone to retain it.
type Path []string

// Last returns the final vertex of p, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Option configures optional behavior of enumeration.
// Use with New(topo, opts...) and the collectors.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation of the collectors (All, Between); defaults to
	// context.Background(). The Enumerator itself never blocks.
	Ctx context.Context

	// MaxDepth, if non-negative, limits paths to at most MaxDepth links.
	// Default is -1 (no limit).
	MaxDepth int

	// Terminal, if non-empty, is never extended: paths that reach it are
	// yielded but not continued. Simple paths ending at Terminal are
	// unaffected; everything that would only pass through it is skipped.
	Terminal string
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - No terminal vertex
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the collectors.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits path length to limit links.
// A limit of 0 yields only the trivial path [source]. Panics on negative limit.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic("paths: WithMaxDepth(limit<0)")
	}
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithTerminal returns an Option that stops extension at vertex v.
// Use it when only paths ending at v matter.
func WithTerminal(v string) Option {
	return func(o *Options) {
		o.Terminal = v
	}
}
