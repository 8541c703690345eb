package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/circuitloop/circuit"
	"github.com/katalvlaran/circuitloop/schematic"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// Config holds server settings.
type Config struct {
	// Addr is the listen address. Defaults to ":8090".
	Addr string
	// MaxSteps is the per-request loop-search budget (0 = unlimited).
	MaxSteps int
	// Timeout bounds one analysis. 0 means no limit beyond the request's own.
	Timeout time.Duration
	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
	// MaxWireLength caps the summed wire length of one schematic, in grid
	// units (0 = unlimited).
	MaxWireLength int
	// Lang is the feedback language when the request names none.
	Lang circuit.Lang
}

// DefaultConfig returns the settings circuitd starts with.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8090",
		MaxSteps:      circuit.DefaultMaxSteps,
		Timeout:       2 * time.Second,
		MaxBodyBytes:  1 << 20,
		MaxWireLength: schematic.DefaultMaxWireLength,
		Lang:          circuit.LangFR,
	}
}

// Server is the analysis HTTP server.
type Server struct {
	cfg      Config
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
	server   *http.Server
}

// verdict is the analyze response body.
type verdict struct {
	circuit.Result
	Message string `json:"message,omitempty"`
}

type apiError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewServer builds a server with its own metrics registry. A nil logger
// is replaced by zap.NewNop().
func NewServer(cfg Config, log *zap.Logger) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}
	if cfg.Lang == "" {
		cfg.Lang = def.Lang
	}
	if log == nil {
		log = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: reg,
		metrics:  NewMetrics(reg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/health", handleHealth)
	mux.HandleFunc("GET /v1/schema", s.handleSchema)
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	s.handler = s.withLogging(s.withRecovery(mux))
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	return s
}

// Handler returns the routed, wrapped handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("server stopping")

	return s.server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	raw, err := schematic.JSONSchema()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "schema_unavailable", Detail: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	format, ok := formatOf(r.Header.Get("Content-Type"))
	if !ok {
		s.reject(w, http.StatusUnsupportedMediaType, "unsupported_media_type", r.Header.Get("Content-Type"))
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.reject(w, http.StatusRequestEntityTooLarge, "body_too_large", "")
			return
		}
		s.reject(w, http.StatusBadRequest, "unreadable_body", err.Error())
		return
	}
	wireCap := schematic.WithMaxWireLength(s.cfg.MaxWireLength)
	sch, err := schematic.Decode(bytes.NewReader(raw), format, wireCap)
	if err != nil {
		s.reject(w, http.StatusUnprocessableEntity, "invalid_schematic", err.Error())
		return
	}

	ctx := r.Context()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := circuit.Analyze(ctx, sch,
		circuit.WithLogger(log),
		circuit.WithMaxSteps(s.cfg.MaxSteps),
		circuit.WithSchematicOptions(wireCap),
	)
	s.metrics.Duration.Observe(time.Since(start).Seconds())
	switch {
	case errors.Is(err, circuit.ErrSearchBudgetExceeded):
		s.reject(w, http.StatusServiceUnavailable, "search_budget_exceeded", err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.reject(w, http.StatusServiceUnavailable, "timeout", err.Error())
		return
	case err != nil:
		s.reject(w, http.StatusUnprocessableEntity, "invalid_schematic", err.Error())
		return
	}

	label := "valid"
	if !res.Valid {
		label = res.Reason.String()
	}
	s.metrics.Analyses.WithLabelValues(label).Inc()

	writeJSON(w, http.StatusOK, verdict{Result: res, Message: res.Message(s.langOf(r))})
}

func (s *Server) reject(w http.ResponseWriter, status int, cause, detail string) {
	s.metrics.Rejected.WithLabelValues(cause).Inc()
	writeJSON(w, status, apiError{Error: cause, Detail: detail})
}

// langOf picks the feedback language: ?lang=, then Accept-Language, then
// the configured default.
func (s *Server) langOf(r *http.Request) circuit.Lang {
	for _, candidate := range []string{r.URL.Query().Get("lang"), r.Header.Get("Accept-Language")} {
		if candidate == "" {
			continue
		}
		if l, err := circuit.ParseLang(candidate); err == nil {
			return l
		}
	}

	return s.cfg.Lang
}

// formatOf maps a Content-Type to a document format; empty means JSON.
func formatOf(contentType string) (schematic.Format, bool) {
	if contentType == "" {
		return schematic.FormatJSON, true
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch mt {
	case "application/json":
		return schematic.FormatJSON, true
	case "application/yaml", "application/x-yaml", "text/yaml":
		return schematic.FormatYAML, true
	case "application/toml":
		return schematic.FormatTOML, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return s.log.With(zap.String("trace_id", traceID(r.Context())))
}

func traceID(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok {
		return v
	}

	return ""
}

func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.requestLogger(r).Error("panic recovered",
					zap.Any("panic", rec), zap.String("path", r.URL.Path))
				writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal_server_error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get("X-Trace-ID")
		if id == "" {
			id = uuid.NewString()
		}
		r = r.WithContext(context.WithValue(r.Context(), traceIDKey, id))
		w.Header().Set("X-Trace-ID", id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		s.log.Info("http request",
			zap.String("trace_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
