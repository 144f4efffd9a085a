package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hamcp"

// Metrics holds the collectors. Each Metrics owns its registry, so several
// instances (tests, multiple servers) never collide.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls       *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers the collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of MCP tool calls",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_call_duration_seconds",
				Help:      "Duration of MCP tool calls",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 90, 600},
			},
			[]string{"tool"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "agent_requests_total",
				Help:      "Total number of requests sent to the agent",
			},
			[]string{"op", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "agent_request_duration_seconds",
				Help:      "Duration of agent requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	m.registry.MustRegister(
		m.toolCalls,
		m.toolDuration,
		m.requests,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveToolCall records one dispatched tool call.
func (m *Metrics) ObserveToolCall(tool string, failed bool, elapsed time.Duration) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// ObserveRequest records one agent round trip. A zero status means no
// response was received.
func (m *Metrics) ObserveRequest(op string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(op, statusClass(status)).Inc()
	m.requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func statusClass(status int) string {
	if status <= 0 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}
