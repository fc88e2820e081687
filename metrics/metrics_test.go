package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.Run("message")
	m.Run("message")
	m.Event("tool_call_item")
	m.ToolCall("flight_search_tool", "success")
	m.Chat("fallback")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunCounter("message")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventCounter("tool_call_item")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCallCounter("flight_search_tool", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatCounter("fallback")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Run("error")
	m.Event("raw_response_event")
	m.ToolCall("x", "error")
	m.Chat("reply")
}

func TestHandler(t *testing.T) {
	m := New()
	m.Run("empty")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `journeo_agent_runs_total{outcome="empty"} 1`)
}
