package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracingConfig struct {
	agent string
}

func (c tracingConfig) ServiceName() string   { return "expense-bot" }
func (c tracingConfig) AgentHostPort() string { return c.agent }

func Test_OnInitWithoutAgent_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(tracingConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
