package dashboard

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogTelemetryRecordsSortedAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	telemetry := NewSlogTelemetry(logger)

	telemetry.Record(context.Background(), "eventdash.theme", map[string]any{
		"session_id": "s1",
		"dark_mode":  true,
	})

	line := buf.String()
	assert.Contains(t, line, "msg=eventdash.theme")
	assert.Less(t, strings.Index(line, "dark_mode=true"), strings.Index(line, "session_id=s1"))
}

func TestSlogTelemetryRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	telemetry := NewSlogTelemetry(logger).WithLevel(slog.LevelDebug)

	telemetry.Record(context.Background(), "eventdash.carousel.auto", nil)
	assert.Empty(t, buf.String())

	NewSlogTelemetry(logger).Record(context.Background(), "eventdash.mount", nil)
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestNormalizeTelemetry(t *testing.T) {
	assert.Equal(t, noopTelemetry{}, normalizeTelemetry(nil))
	rec := &recordingTelemetry{}
	assert.Same(t, rec, normalizeTelemetry(rec))
}
