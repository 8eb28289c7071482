package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/crossfn/crossfn/core/handler"
)

// Metrics instruments. Registered against the configured registerer at
// middleware construction time; instruments are safe for concurrent use.
type metricsInstruments struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// MetricsConfig configures the invocation metrics middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific invocations
	Skip func(ctx handler.Context) bool
	// Registerer receives the instruments (default: prometheus.DefaultRegisterer)
	Registerer prometheus.Registerer
	// Namespace prefixes metric names (default: "crossfn")
	Namespace string
	// Buckets for the duration histogram (default: prometheus.DefBuckets)
	Buckets []float64
}

// Metrics creates an invocation metrics middleware with default configuration.
//
// Instruments:
//   - {namespace}_invocations_total (counter): total invocations,
//     labeled by method, path, and status code
//   - {namespace}_invocation_duration_seconds (histogram): chain
//     execution time, labeled by method and path
func Metrics[C handler.Context]() handler.Middleware[C] {
	return MetricsWithConfig[C](MetricsConfig{})
}

// MetricsWithConfig creates an invocation metrics middleware with custom configuration.
func MetricsWithConfig[C handler.Context](cfg MetricsConfig) handler.Middleware[C] {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "crossfn"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}

	inst := &metricsInstruments{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "invocations_total",
				Help:      "Total invocations",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "invocation_duration_seconds",
				Help:      "Invocation duration",
				Buckets:   cfg.Buckets,
			},
			[]string{"method", "path"},
		),
	}
	cfg.Registerer.MustRegister(inst.invocations, inst.duration)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			v, err := next(ctx)

			status := ctx.Response().Status()
			if status == 0 {
				status = 200
			}
			if err != nil {
				status = 500
			}

			inst.invocations.WithLabelValues(req.Method, req.Path, strconv.Itoa(status)).Inc()
			inst.duration.WithLabelValues(req.Method, req.Path).Observe(time.Since(start).Seconds())

			return v, err
		}
	}
}
