package markup

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Observer is notified of render lifecycle events. RenderStarted
// returns an opaque token threaded back into RenderFinished, the same
// start/finish token pattern HTTP middleware uses to time requests.
// mode is the render's output mode, reported so implementations can
// label metrics/spans without re-deriving it.
type Observer interface {
	RenderStarted(mode Mode) any
	RenderFinished(started any, err error)
}

type noopObserver struct{}

func (noopObserver) RenderStarted(Mode) any    { return nil }
func (noopObserver) RenderFinished(any, error) {}

// NewNoopObserver returns an Observer that discards every event, the
// default used when no Observer is configured.
func NewNoopObserver() Observer { return noopObserver{} }

// PromOtelObserver records render counts and latency with Prometheus
// and emits an OpenTelemetry span per render, the same metrics/tracing
// shape HTTP middleware applies per request, applied here per render
// instead.
type PromOtelObserver struct {
	tracer   trace.Tracer
	ctx      context.Context
	total    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
}

type promSpan struct {
	span  trace.Span
	start time.Time
}

// NewPromOtelObserver registers its collectors against reg (pass
// prometheus.DefaultRegisterer to use the global registry) and takes
// spans from the named OpenTelemetry tracer.
func NewPromOtelObserver(reg prometheus.Registerer, tracerName string) *PromOtelObserver {
	factory := promauto.With(reg)
	return &PromOtelObserver{
		tracer: otel.Tracer(tracerName),
		ctx:    context.Background(),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "viewstream_render_total",
			Help: "Total number of renders started.",
		}, []string{"mode"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "viewstream_render_errors_total",
			Help: "Total number of renders that failed.",
		}, []string{"kind"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "viewstream_render_duration_seconds",
			Help:    "Wall-clock duration of a render from start to Complete/Fail.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (o *PromOtelObserver) RenderStarted(mode Mode) any {
	o.total.WithLabelValues(mode.String()).Inc()
	_, span := o.tracer.Start(o.ctx, "markup.render")
	span.SetAttributes(attribute.String("render.mode", mode.String()))
	return &promSpan{span: span, start: time.Now()}
}

func (o *PromOtelObserver) RenderFinished(started any, err error) {
	ps, ok := started.(*promSpan)
	if !ok || ps == nil {
		return
	}
	o.duration.Observe(time.Since(ps.start).Seconds())
	if err != nil {
		kind := "unknown"
		if re, ok := err.(*RenderingError); ok {
			kind = re.Kind.String()
		}
		o.errors.WithLabelValues(kind).Inc()
		ps.span.SetStatus(codes.Error, err.Error())
		ps.span.SetAttributes(attribute.String("render.error.kind", kind))
	}
	ps.span.End()
}
