package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitDisabledInstallsNoop(t *testing.T) {
	t.Setenv(EnabledEnv, "")

	providers, err := Init(context.Background(), "athena", "test", nil)
	require.NoError(t, err)
	assert.NoError(t, providers.Shutdown(context.Background()))

	_, span := otel.Tracer("x").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestInitEnabledExportsSpansOnShutdown(t *testing.T) {
	t.Setenv(EnabledEnv, "true")

	var out bytes.Buffer
	providers, err := Init(context.Background(), "athena", "test", &out)
	require.NoError(t, err)

	_, span := otel.Tracer("athena/test").Start(context.Background(), "phase.dialogue")
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
	assert.Contains(t, out.String(), "phase.dialogue")
	assert.Contains(t, out.String(), "athena")
}

func TestShutdownNilProviders(t *testing.T) {
	t.Parallel()

	var p *Providers
	assert.NoError(t, p.Shutdown(context.Background()))
}
