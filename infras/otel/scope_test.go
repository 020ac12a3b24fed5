package otel_test

import (
	"context"
	"errors"
	"testing"
	"todolist/infras/otel"
	"todolist/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type category string

func (c category) String() string { return "category:" + string(c) }

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "test.span")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int64
		wantStatus codes.Code
	}{
		{name: "missing task stays unset", err: failure.NotFound("Work task not found"), wantCode: 404, wantStatus: codes.Unset},
		{name: "rejected form stays unset", err: failure.BadRequestFromString("name is required"), wantCode: 400, wantStatus: codes.Unset},
		{name: "store failure is an error", err: errors.New("database is locked"), wantCode: 500, wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordSpan(t, func(scope otel.Scope) {
				scope.TraceIfError(nil)
				scope.TraceIfError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Equal(t, tt.wantCode, attributes(span)["failure.code"].AsInt64())
			require.Len(t, span.Events(), 1)
			assert.Equal(t, "exception", span.Events()[0].Name)
		})
	}
}

func TestScope_SetAttributes(t *testing.T) {
	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttribute("task.category", category("work"))
		scope.SetAttributes(map[string]any{
			"task.id":   int64(3),
			"task.done": true,
			"db.query":  "SELECT 1",
			"count":     2,
			"other":     3.5,
		})
		scope.AddEvent("listed")
	})

	attrs := attributes(span)

	assert.Equal(t, "category:work", attrs["task.category"].AsString())
	assert.Equal(t, int64(3), attrs["task.id"].AsInt64())
	assert.True(t, attrs["task.done"].AsBool())
	assert.Equal(t, "SELECT 1", attrs["db.query"].AsString())
	assert.Equal(t, int64(2), attrs["count"].AsInt64())
	assert.Equal(t, "3.5", attrs["other"].AsString())
	assert.Equal(t, "listed", span.Events()[0].Name)
}
