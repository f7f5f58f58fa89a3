package dashboard

import (
	"context"
	"log/slog"
	"sort"
)

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// SlogTelemetry writes telemetry events as structured log records.
type SlogTelemetry struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogTelemetry logs events at info level; a nil logger uses slog.Default.
func NewSlogTelemetry(logger *slog.Logger) *SlogTelemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTelemetry{logger: logger, level: slog.LevelInfo}
}

// WithLevel returns a copy that logs at the given level.
func (t *SlogTelemetry) WithLevel(level slog.Level) *SlogTelemetry {
	clone := *t
	clone.level = level
	return &clone
}

// Record emits one log record per event with the payload as sorted attributes.
func (t *SlogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	if !t.logger.Enabled(ctx, t.level) {
		return
	}
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, payload[key]))
	}
	t.logger.LogAttrs(ctx, t.level, event, attrs...)
}
