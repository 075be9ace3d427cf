package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestKey_StableAcrossFieldOrder(t *testing.T) {
	type req struct {
		FaithMode string `json:"faithMode"`
		Limit     int    `json:"limit"`
		Topic     string `json:"topic"`
	}
	a, err := Key("/content/quotes", req{"light", 5, "hope"})
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	b, err := Key("/content/quotes", json.RawMessage(`{"topic":"hope","limit":5,"faithMode":"light"}`))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if a != b {
		t.Fatalf("keys differ for equal bodies: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, KeyPrefix) || len(a) != len(KeyPrefix)+64 {
		t.Fatalf("unexpected key shape %q", a)
	}
}

func TestKey_PathAndBodyMatter(t *testing.T) {
	body := map[string]any{"faithMode": "off", "limit": 5}
	q, _ := Key("/content/quotes", body)
	s, _ := Key("/content/scripture", body)
	if q == s {
		t.Fatalf("path should be part of the key")
	}
	other, _ := Key("/content/quotes", map[string]any{"faithMode": "off", "limit": 6})
	if q == other {
		t.Fatalf("body should be part of the key")
	}
}

func TestKey_NumbersKeptVerbatim(t *testing.T) {
	a, _ := Key("/p", json.RawMessage(`{"limit":5}`))
	b, _ := Key("/p", json.RawMessage(`{"limit":5.0}`))
	if a == b {
		t.Fatalf("5 and 5.0 are different literals and should not collide")
	}
	nested1, _ := Key("/p", json.RawMessage(`{"x":{"b":1,"a":[{"d":1,"c":2}]}}`))
	nested2, _ := Key("/p", json.RawMessage(`{"x":{"a":[{"c":2,"d":1}],"b":1}}`))
	if nested1 != nested2 {
		t.Fatalf("nested keys should sort at every depth")
	}
}

func TestKey_InvalidRaw(t *testing.T) {
	if _, err := Key("/p", json.RawMessage(`{`)); err == nil {
		t.Fatalf("expected error for invalid raw body")
	}
}
