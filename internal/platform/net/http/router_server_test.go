package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentgate/internal/platform/config"
	phttp "contentgate/internal/platform/net/http"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADDR", "")
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":8080" {
		t.Fatalf("expected default :8080, got %q", srv.Addr())
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServer_AddrFromPort(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "12345")
	if srv := phttp.NewServer(config.New()); srv.Addr() != ":12345" {
		t.Fatalf("expected addr :12345, got %q", srv.Addr())
	}
}
