package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestZerologAdapterEmitsKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	adapter := NewZerologAdapter(logger)

	adapter.Info("engine operation", "operation", "compose_swarm", "count", 5)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["message"] != "engine operation" {
		t.Fatalf("message = %v", line["message"])
	}
	if line["operation"] != "compose_swarm" {
		t.Fatalf("operation = %v", line["operation"])
	}
	if line["count"] != float64(5) {
		t.Fatalf("count = %v", line["count"])
	}
}

func TestZerologAdapterSkipsMalformedPairs(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	// Odd trailing arg and non-string key must not panic.
	adapter.Warn("odd", "key", "value", 42, "orphan", "tail")
	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Fatalf("well-formed pair dropped: %s", buf.String())
	}
}

func TestPrometheusRecorderObserves(t *testing.T) {
	rec := NewPrometheusRecorder()
	// Registration is idempotent and observation must not panic.
	rec.Observe(context.Background(), "resolve_movement", true, 5*time.Millisecond)
	rec.Observe(context.Background(), "resolve_movement", false, time.Millisecond)
	RegisterMetrics()
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatalf("no request ID assigned")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header %q, handler saw %q", got, seen)
	}

	// A client-supplied ID is honored.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-chosen")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if seen != "client-chosen" {
		t.Fatalf("client ID not honored, got %q", seen)
	}
}

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/broken"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("log lines = %d, want 3", len(lines))
	}
	wantLevels := []string{"info", "warn", "error"}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode line %d: %v", i, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Fatalf("line %d level = %v, want %s", i, entry["level"], wantLevels[i])
		}
		if entry["message"] != "http_request" {
			t.Fatalf("line %d message = %v", i, entry["message"])
		}
		if entry["request_id"] == "" {
			t.Fatalf("line %d missing request ID", i)
		}
	}
}

func TestRequestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestMetrics())
	router.GET("/rpc", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rpc", nil))
}
