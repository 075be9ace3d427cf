package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contentgate/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func accessLine(t *testing.T, opt middleware.AccessLogOptions, h http.HandlerFunc, path string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	opt.Log = &l

	r := chi.NewRouter()
	r.Use(middleware.AccessLogZerolog(opt))
	r.Get("/content/{kind}", h)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line %q: %v", buf.String(), err)
	}
	return line, rr
}

func TestAccessLogZerolog_StatusBytesRoute(t *testing.T) {
	line, rr := accessLine(t, middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hi"))
		_, _ = io.WriteString(w, "there")
	}, "/content/quotes")

	if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
		t.Fatalf("response changed: %d %q", rr.Code, rr.Body.String())
	}
	if line["level"] != "info" || line["status"] != float64(201) || line["bytes"] != float64(7) {
		t.Fatalf("unexpected line %v", line)
	}
	if line["route"] != "/content/{kind}" || line["path"] != "/content/quotes" {
		t.Fatalf("route/path = %v %v", line["route"], line["path"])
	}
}

func TestAccessLogZerolog_ImplicitOK(t *testing.T) {
	line, _ := accessLine(t, middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {}, "/content/x")
	if line["status"] != float64(200) {
		t.Fatalf("status = %v", line["status"])
	}
}

func TestAccessLogZerolog_Levels(t *testing.T) {
	slow, _ := accessLine(t, middleware.AccessLogOptions{Slow: time.Nanosecond}, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Microsecond)
	}, "/content/slow")
	if slow["level"] != "warn" || slow["slow"] != true {
		t.Fatalf("slow line %v", slow)
	}

	boom, _ := accessLine(t, middleware.AccessLogOptions{Slow: time.Nanosecond}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "/content/boom")
	if boom["level"] != "error" {
		t.Fatalf("5xx should log at error, got %v", boom["level"])
	}
}
