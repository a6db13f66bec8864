package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/parsers/:id", "4xx"))
	ObserveHTTP("GET", "/api/parsers/:id", 404, 5*time.Millisecond)
	ObserveHTTP("GET", "/api/parsers/:id", 400, time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/parsers/:id", "4xx"))
	assert.Equal(t, before+2, after)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(201))
	assert.Equal(t, "3xx", statusClass(304))
	assert.Equal(t, "4xx", statusClass(409))
	assert.Equal(t, "5xx", statusClass(503))
}

func TestLLM_ObserveLLMCall(t *testing.T) {
	c := LLMRequestsTotal.WithLabelValues("gemini", "timeout")
	before := testutil.ToFloat64(c)
	LLM{}.ObserveLLMCall("gemini", "timeout", 2*time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
