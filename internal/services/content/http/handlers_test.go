package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"contentgate/internal/core/faith"
	perr "contentgate/internal/platform/errors"
	pnet "contentgate/internal/platform/net"
	phttp "contentgate/internal/platform/net/http"
	"contentgate/internal/platform/ratelimit"
	"contentgate/internal/platform/testkit"
	"contentgate/internal/services/content/domain"
)

// fakeSvc records the last quote request and returns canned values
type fakeSvc struct {
	lastQuote domain.QuoteRequest
}

func (f *fakeSvc) Quotes(_ context.Context, in domain.QuoteRequest) ([]domain.QuoteItem, error) {
	f.lastQuote = in
	return []domain.QuoteItem{{ID: "pd_8", Text: "t", Author: "a", Tags: []string{}}}, nil
}

func (f *fakeSvc) Scripture(_ context.Context, in domain.ScriptureRequest) (domain.ScripturePassage, error) {
	if in.FaithMode == "off" {
		return domain.ScripturePassage{}, perr.FaithBlocked(faith.BlockedHint)
	}
	return domain.ScripturePassage{Ref: "1 Corinthians 9:24–27 (KJV)"}, nil
}

func (f *fakeSvc) DailyScripture(context.Context, domain.ScriptureRequest) ([]domain.ScripturePassage, error) {
	return []domain.ScripturePassage{{Ref: "John 3:16"}}, nil
}

func (f *fakeSvc) Devotionals(context.Context, domain.QuoteRequest) ([]domain.Devotional, error) {
	return nil, perr.NotFoundf("No devotionals available.")
}

func (f *fakeSvc) Prayers(context.Context, domain.QuoteRequest) ([]domain.Prayer, error) {
	return []domain.Prayer{{Title: "p"}}, nil
}

func (f *fakeSvc) Manifest(context.Context) (domain.Manifest, error) {
	return domain.Manifest{SchemaVersion: 1}, nil
}

func newRouter(s *fakeSvc, l Limits) stdhttp.Handler {
	m := chi.NewRouter()
	phttp.AdaptChi(m).Route("/content", func(r phttp.Router) { Register(r, s, l) })
	return m
}

func TestRoutes_SuccessBodiesAreBare(t *testing.T) {
	h := newRouter(&fakeSvc{}, Limits{})

	cases := []struct {
		method, path, body string
		want               string
	}{
		{"GET", "/content/manifest", "", `"schemaVersion":1`},
		{"POST", "/content/quotes", `{"faithMode":"off"}`, `[{"id":"pd_8"`},
		{"POST", "/content/scripture", `{"faithMode":"light","lightConsentGiven":true,"theme":"gluttony"}`, `"ref":"1 Corinthians 9`},
		{"POST", "/content/scripture/daily", `{"faithMode":"kingdom"}`, `[{"ref":"John 3:16"`},
		{"POST", "/content/prayers", `{"faithMode":"kingdom"}`, `[{"title":"p"`},
	}
	for _, tc := range cases {
		rec := testkit.Do(t, h, tc.method, tc.path, tc.body)
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%s %s = %d %s", tc.method, tc.path, rec.Code, rec.Body.String())
		}
		testkit.MustContain(t, rec.Body.String(), tc.want)
	}
}

func TestQuotes_BindsDefaultsAndExtraFields(t *testing.T) {
	s := &fakeSvc{}
	h := newRouter(s, Limits{})

	rec := testkit.Do(t, h, "POST", "/content/quotes", `{"faithMode":"light","topic":"hope","limit":3,"clientBuild":"1.2.3"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body.String())
	}
	if s.lastQuote.Topic != "hope" || s.lastQuote.Limit == nil || *s.lastQuote.Limit != 3 {
		t.Fatalf("bound request = %+v", s.lastQuote)
	}
	if n := s.lastQuote.Normalize(); n.FaithMode != "light" || n.Limit != 3 {
		t.Fatalf("normalized = %+v", n)
	}
}

func TestErrors_UseEnvelope(t *testing.T) {
	h := newRouter(&fakeSvc{}, Limits{})

	cases := []struct {
		path, body string
		status     int
		code       string
	}{
		{"/content/scripture", `{"faithMode":"off"}`, stdhttp.StatusForbidden, "FAITH_BLOCKED"},
		{"/content/devotionals", `{"faithMode":"kingdom"}`, stdhttp.StatusNotFound, "NOT_FOUND"},
		{"/content/quotes", `{"faithMode":"sometimes"}`, stdhttp.StatusBadRequest, "VALIDATION"},
		{"/content/quotes", `{}`, stdhttp.StatusBadRequest, "VALIDATION"},
		{"/content/quotes", `{"faithMode":`, stdhttp.StatusBadRequest, "JSON"},
		{"/content/quotes", ``, stdhttp.StatusBadRequest, "JSON"},
	}
	for _, tc := range cases {
		rec := testkit.Do(t, h, "POST", tc.path, tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s %s = %d, want %d", tc.path, tc.body, rec.Code, tc.status)
		}
		var env pnet.Wire
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if env.Code.String() != tc.code || env.StatusCode != tc.status {
			t.Fatalf("%s envelope = %+v", tc.path, env)
		}
		if tc.code == "FAITH_BLOCKED" && env.Hint != faith.BlockedHint {
			t.Fatalf("hint = %q", env.Hint)
		}
	}
}

func TestScripture_TighterRateLimit(t *testing.T) {
	l := Limits{Limiter: ratelimit.NewInMemory(time.Minute), PerMinute: 5, Scripture: 1}
	h := newRouter(&fakeSvc{}, l)
	body := `{"faithMode":"disciple","theme":"gluttony"}`

	if rec := testkit.Do(t, h, "POST", "/content/scripture", body); rec.Code != stdhttp.StatusOK {
		t.Fatalf("first = %d", rec.Code)
	}
	rec := testkit.Do(t, h, "POST", "/content/scripture", body)
	if rec.Code != stdhttp.StatusTooManyRequests {
		t.Fatalf("second scripture = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"code":"TOO_MANY_REQUESTS"`)
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Limit") != "1" {
		t.Fatalf("rate limit headers = %v", rec.Header())
	}

	// quotes still have budget left in the content scope
	if rec := testkit.Do(t, h, "POST", "/content/quotes", `{"faithMode":"off"}`); rec.Code != stdhttp.StatusOK {
		t.Fatalf("quotes = %d", rec.Code)
	}
}

func TestContent_RateLimitReturns429(t *testing.T) {
	l := Limits{Limiter: ratelimit.NewInMemory(time.Minute), PerMinute: 2, Scripture: 30}
	h := newRouter(&fakeSvc{}, l)
	for i := 0; i < 2; i++ {
		if rec := testkit.Do(t, h, "GET", "/content/manifest", ""); rec.Code != stdhttp.StatusOK {
			t.Fatalf("request %d = %d", i, rec.Code)
		}
	}
	if rec := testkit.Do(t, h, "GET", "/content/manifest", ""); rec.Code != stdhttp.StatusTooManyRequests {
		t.Fatalf("third = %d", rec.Code)
	}
}
