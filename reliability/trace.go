package reliability

import (
	"context"
	"log/slog"
	"strings"
)

// TraceSink receives progress of a query. Path is called once per absorbed
// s→t path, Done once when the query succeeds. Sinks shared by AllPairs
// must be safe for concurrent use.
type TraceSink interface {
	Path(PathStats)
	Done(Stats)
}

// SlogTrace is a TraceSink writing structured records to a *slog.Logger.
// A nil *SlogTrace discards everything.
type SlogTrace struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogTrace returns a sink logging at slog.LevelDebug.
// A nil logger falls back to slog.Default().
func NewSlogTrace(logger *slog.Logger) *SlogTrace {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogTrace{logger: logger, level: slog.LevelDebug}
}

// AtLevel returns a copy of t that logs at level.
func (t *SlogTrace) AtLevel(level slog.Level) *SlogTrace {
	if t == nil {
		return nil
	}
	c := *t
	c.level = level

	return &c
}

// Path logs one absorbed path.
func (t *SlogTrace) Path(ps PathStats) {
	if t == nil {
		return
	}
	t.logger.LogAttrs(context.Background(), t.level, "path absorbed",
		slog.Int("index", ps.Index),
		slog.String("path", strings.Join(ps.Path, "→")),
		slog.Int("new_terms", ps.NewTerms),
		slog.Int("state", ps.StateSize),
		slog.Group("relations",
			slog.Int("subset", ps.Counts.Subset),
			slog.Int("disjoint", ps.Counts.Disjoint),
			slog.Int("x1", ps.Counts.X1),
			slog.Int("split_recursive", ps.Counts.SplitRecursive),
		),
	)
}

// Done logs the final statistics.
func (t *SlogTrace) Done(st Stats) {
	if t == nil {
		return
	}
	t.logger.LogAttrs(context.Background(), t.level, "query done",
		slog.Int("paths", st.Paths),
		slog.Int("terms", st.Terms),
		slog.Int("classified", st.Total()),
	)
}
