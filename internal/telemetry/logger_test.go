package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/microcart/internal/config"
	"github.com/SergeyBogomolovv/microcart/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestContextHandler(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	spanCtx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	testCases := []struct {
		name      string
		ctx       context.Context
		wantTrace string
		wantSpan  string
	}{
		{
			name:      "with span",
			ctx:       spanCtx,
			wantTrace: "4bf92f3577b34da6a3ce929d0e0e4736",
			wantSpan:  "00f067aa0ba902b7",
		},
		{
			name: "without span",
			ctx:  context.Background(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(telemetry.NewContextHandler(slog.NewJSONHandler(&buf, nil))).
				With(slog.String("handler", "test"))

			logger.InfoContext(tc.ctx, "hello")

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

			assert.Equal(t, "test", rec["handler"])
			if tc.wantTrace == "" {
				assert.NotContains(t, rec, "trace_id")
				assert.NotContains(t, rec, "span_id")
				return
			}
			assert.Equal(t, tc.wantTrace, rec["trace_id"])
			assert.Equal(t, tc.wantSpan, rec["span_id"])
		})
	}
}

func TestSetupTracer_Disabled(t *testing.T) {
	shutdown, err := telemetry.SetupTracer(context.Background(), config.Telemetry{Enabled: false}, "development")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
