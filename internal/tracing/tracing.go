package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// Init installs a Jaeger tracer as the global opentracing tracer. Without an
// agent address tracing stays on the default no-op tracer.
func Init(cfg config) (io.Closer, error) {
	if cfg.AgentHostPort() == "" {
		logger.Info("tracing disabled")
		return noopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(logger.Zap())))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("agent", cfg.AgentHostPort()))
	return closer, nil
}
