package tracer

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger 初始化全局tracer gorm的opentracing插件会挂到它上面
func InitJaeger(service string) io.Closer {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: false,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Warnf("jaeger init failed, tracing disabled: %v", err)
		return nil
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}
