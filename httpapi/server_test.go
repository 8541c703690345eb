package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/circuitloop/circuit"
	"github.com/katalvlaran/circuitloop/httpapi"
)

const ringJSON = `{
  "elements": [
    {"type": "bat", "x": 2, "y": 2},
    {"type": "lamp", "x": 4, "y": 2},
    {"type": "sw_open", "x": 6, "y": 2}
  ],
  "wires": [
    {"x1": 1, "y1": 2, "x2": 7, "y2": 2},
    {"x1": 7, "y1": 2, "x2": 7, "y2": 5},
    {"x1": 7, "y1": 5, "x2": 1, "y2": 5},
    {"x1": 1, "y1": 5, "x2": 1, "y2": 2}
  ]
}`

const openYAML = `elements:
  - {type: bat, x: 2, y: 2}
  - {type: lamp, x: 4, y: 2}
  - {type: sw_closed, x: 6, y: 2}
wires:
  - {x1: 2, y1: 2, x2: 7, y2: 2}
`

const ringTOML = `[[elements]]
type = "bat"
x = 2
y = 2

[[elements]]
type = "lamp"
x = 4
y = 2

[[elements]]
type = "sw_open"
x = 6
y = 2

[[wires]]
x1 = 1
y1 = 2
x2 = 7
y2 = 2
`

const longWireJSON = `{"elements":[],"wires":[{"x1":0,"y1":0,"x2":3000000,"y2":0}]}`

func newServer(t *testing.T, mut func(*httpapi.Config)) *httpapi.Server {
	t.Helper()
	cfg := httpapi.DefaultConfig()
	if mut != nil {
		mut(&cfg)
	}

	return httpapi.NewServer(cfg, zap.NewNop())
}

func do(t *testing.T, s *httpapi.Server, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	res := rec.Result()

	var body map[string]any
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}

	return res, body
}

func TestAnalyzeValid(t *testing.T) {
	s := newServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(ringJSON))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	res, body := do(t, s, req)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, []any{"elem_2_2", "elem_4_2", "elem_6_2"}, body["loop"])
	assert.NotEmpty(t, res.Header.Get("X-Trace-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Analyses.WithLabelValues("valid")))
}

func TestAnalyzeYAMLWithLanguage(t *testing.T) {
	s := newServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(openYAML))
	req.Header.Set("Content-Type", "application/yaml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, body := do(t, s, req)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "loop-not-closed", body["reason"])
	assert.Equal(t,
		circuit.ReasonLoopNotClosed.Message(circuit.LangEN, ""),
		body["message"])

	// the query parameter wins over the header
	req = httptest.NewRequest(http.MethodPost, "/v1/analyze?lang=fr", strings.NewReader(openYAML))
	req.Header.Set("Content-Type", "text/yaml")
	req.Header.Set("Accept-Language", "en")
	_, body = do(t, s, req)
	assert.Equal(t, circuit.ReasonLoopNotClosed.Message(circuit.LangFR, ""), body["message"])
	assert.Equal(t, 2.0, testutil.ToFloat64(s.Metrics().Analyses.WithLabelValues("loop-not-closed")))
}

func TestAnalyzeRejections(t *testing.T) {
	cases := []struct {
		name        string
		cfg         func(*httpapi.Config)
		contentType string
		body        string
		status      int
		cause       string
	}{
		{"unknown type", nil, "", `{"elements":[{"type":"flux","x":0,"y":0}]}`, http.StatusUnprocessableEntity, "invalid_schematic"},
		{"malformed", nil, "application/json", `{"elements":`, http.StatusUnprocessableEntity, "invalid_schematic"},
		{"media type", nil, "text/plain", ringJSON, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"too large", func(c *httpapi.Config) { c.MaxBodyBytes = 16 }, "", ringJSON, http.StatusRequestEntityTooLarge, "body_too_large"},
		{"too large yaml", func(c *httpapi.Config) { c.MaxBodyBytes = 64 }, "application/yaml", openYAML, http.StatusRequestEntityTooLarge, "body_too_large"},
		{"too large toml", func(c *httpapi.Config) { c.MaxBodyBytes = 64 }, "application/toml", ringTOML, http.StatusRequestEntityTooLarge, "body_too_large"},
		{"wire too long", nil, "", longWireJSON, http.StatusUnprocessableEntity, "invalid_schematic"},
		{"budget", func(c *httpapi.Config) { c.MaxSteps = 1 }, "", ringJSON, http.StatusServiceUnavailable, "search_budget_exceeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(t, tc.cfg)
			req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			res, body := do(t, s, req)
			assert.Equal(t, tc.status, res.StatusCode)
			assert.Equal(t, tc.cause, body["error"])
			assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Rejected.WithLabelValues(tc.cause)))
		})
	}
}

func TestAnalyzeLongWireTimesOut(t *testing.T) {
	s := newServer(t, func(c *httpapi.Config) {
		c.Timeout = 50 * time.Millisecond
		c.MaxWireLength = 0
	})
	body := `{"elements":[{"type":"bat","x":0,"y":0},{"type":"lamp","x":2,"y":0},` +
		`{"type":"sw_open","x":4,"y":0}],"wires":[{"x1":0,"y1":9,"x2":1073741824,"y2":9}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))

	start := time.Now()
	res, out := do(t, s, req)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, "timeout", out["error"])
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSchemaHealthAndMetrics(t *testing.T) {
	s := newServer(t, nil)

	res, body := do(t, s, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body["status"])

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/schema", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/schema+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"wires"`)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(ringJSON))
	do(t, s, req)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `circuitloop_analyses_total{verdict="valid"} 1`)
	assert.Contains(t, rec.Body.String(), "circuitloop_analysis_duration_seconds_count 1")

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := httpapi.NewServer(httpapi.DefaultConfig(), zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(ringJSON))
	req.Header.Set("X-Trace-ID", "trace-123")
	res, _ := do(t, s, req)
	assert.Equal(t, "trace-123", res.Header.Get("X-Trace-ID"))

	reqs := logs.FilterMessage("http request").All()
	require.Len(t, reqs, 1)
	assert.Equal(t, "trace-123", reqs[0].ContextMap()["trace_id"])
	assert.Equal(t, int64(http.StatusOK), reqs[0].ContextMap()["status"])

	verdicts := logs.FilterMessage("verdict").All()
	require.Len(t, verdicts, 1)
	assert.Equal(t, "trace-123", verdicts[0].ContextMap()["trace_id"])
}
