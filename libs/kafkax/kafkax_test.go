package kafkax

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, SplitBrokers(" kafka-1:9092, ,kafka-2:9092 "))
	assert.Nil(t, SplitBrokers(""))
}

func TestTraceHeadersRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "outbox.publish")
	defer span.End()

	headers := []kafka.Header{{Key: HeaderEventID, Value: []byte("evt-1")}}
	headers = InjectTraceHeaders(ctx, headers)
	require.NotEmpty(t, HeaderValue(headers, "traceparent"))
	assert.Equal(t, "evt-1", HeaderValue(headers, HeaderEventID))

	// a second inject overwrites rather than duplicates
	headers = InjectTraceHeaders(ctx, headers)
	count := 0
	for _, h := range headers {
		if h.Key == "traceparent" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	extracted := ExtractTraceContext(context.Background(), kafka.Message{Headers: headers})
	assert.Equal(t, span.SpanContext().TraceID(), trace.SpanContextFromContext(extracted).TraceID())
}

func TestReadyCheckWithoutBrokers(t *testing.T) {
	assert.EqualError(t, ReadyCheck(nil)(context.Background()), "kafka brokers not configured")
}
