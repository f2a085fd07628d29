// Package revalidate fans invalidated page paths out to cache sinks after a
// mutation has committed.
package revalidate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// DashboardPath is the owner's box list page.
const DashboardPath = "/dashboard"

// BoxPath is the public page of a box.
func BoxPath(boxID uuid.UUID) string {
	return "/box/" + boxID.String()
}

// DashboardBoxPath is the owner's management page of a box.
func DashboardBoxPath(boxID uuid.UUID) string {
	return "/dashboard/box/" + boxID.String()
}

// Sink receives one invalidated path.
type Sink interface {
	Invalidate(ctx context.Context, path string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, path string) error

func (f SinkFunc) Invalidate(ctx context.Context, path string) error { return f(ctx, path) }

// Notifier delivers paths to every registered sink. Sink failures are logged
// and never returned: the mutation they describe is already committed.
type Notifier struct {
	sinks []Sink
	log   *slog.Logger
}

// NewNotifier creates a Notifier over the given sinks.
func NewNotifier(log *slog.Logger, sinks ...Sink) *Notifier {
	return &Notifier{
		sinks: sinks,
		log:   log.With("component", "revalidate"),
	}
}

// Notify delivers each path to each sink in order.
func (n *Notifier) Notify(ctx context.Context, paths ...string) {
	for _, path := range paths {
		for _, sink := range n.sinks {
			if err := sink.Invalidate(ctx, path); err != nil {
				n.log.WarnContext(ctx, "path invalidation failed",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// LogSink records invalidations in the log. Used when no cache is configured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Invalidate(ctx context.Context, path string) error {
	s.log.DebugContext(ctx, "path invalidated", slog.String("path", path))
	return nil
}
