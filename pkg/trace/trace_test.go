package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func TestInitTracingGRPCDefaults(t *testing.T) {
	cfg := &Config{
		Enabled:     true,
		ServiceName: "estate-api-test",
		SamplerRate: 0.5,
		Insecure:    true,
	}
	shutdown, err := InitTracing(context.Background(), cfg, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestInitTracingHTTPProtocol(t *testing.T) {
	cfg := &Config{
		Enabled:     true,
		ServiceName: "estate-api-test",
		Protocol:    "http",
		Insecure:    true,
		SamplerRate: 2, // clamped to 1
		Headers:     map[string]string{"x-team": "estate"},
	}
	shutdown, err := InitTracing(context.Background(), cfg, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestSpanHelper(t *testing.T) {
	ctx, sp := Span(context.Background(), "test-span", attribute.String("k", "v"))
	assert.NotNil(t, ctx)
	assert.NotNil(t, sp)
	sp.End()
}
