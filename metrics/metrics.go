package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters exported by journeo. A nil *Metrics is valid and
// records nothing, which keeps tests free of registry setup.
type Metrics struct {
	registry  *prometheus.Registry
	runs      *prometheus.CounterVec
	events    *prometheus.CounterVec
	toolCalls *prometheus.CounterVec
	chats     *prometheus.CounterVec
}

// New creates the counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journeo",
			Name:      "agent_runs_total",
			Help:      "Orchestrator runs by outcome (message, empty, error).",
		}, []string{"outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journeo",
			Name:      "agent_events_total",
			Help:      "Streamed agent events by kind.",
		}, []string{"kind"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journeo",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool and status.",
		}, []string{"tool", "status"}),
		chats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journeo",
			Name:      "chat_messages_total",
			Help:      "Chat messages handled by result (reply, fallback).",
		}, []string{"result"}),
	}

	reg.MustRegister(m.runs, m.events, m.toolCalls, m.chats)
	return m
}

// Run records the outcome of one orchestrator run.
func (m *Metrics) Run(outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
}

// Event records one classified stream event.
func (m *Metrics) Event(kind string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind).Inc()
}

// ToolCall records one tool invocation.
func (m *Metrics) ToolCall(tool, status string) {
	if m == nil {
		return
	}
	m.toolCalls.WithLabelValues(tool, status).Inc()
}

// Chat records one handled chat message.
func (m *Metrics) Chat(result string) {
	if m == nil {
		return
	}
	m.chats.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RunCounter returns the counter behind Run for outcome.
func (m *Metrics) RunCounter(outcome string) prometheus.Counter {
	return m.runs.WithLabelValues(outcome)
}

// EventCounter returns the counter behind Event for kind.
func (m *Metrics) EventCounter(kind string) prometheus.Counter {
	return m.events.WithLabelValues(kind)
}

// ToolCallCounter returns the counter behind ToolCall.
func (m *Metrics) ToolCallCounter(tool, status string) prometheus.Counter {
	return m.toolCalls.WithLabelValues(tool, status)
}

// ChatCounter returns the counter behind Chat for result.
func (m *Metrics) ChatCounter(result string) prometheus.Counter {
	return m.chats.WithLabelValues(result)
}
