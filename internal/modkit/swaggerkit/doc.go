package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"contentgate/internal/core/version"
)

//go:embed openapi.json
var openapiJSON []byte

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON
var docReader = func() []byte { return openapiJSON }

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves the spec with the shared error envelope and build version filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/")
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		ensureErrorResponseDefinition(spec)
		addErrorResponses(spec)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins OAS 3.0.3 and a servers array; the UI cannot render 3.1
func ensureServers(spec map[string]any, url string) {
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition mirrors the runtime envelope
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "string", "example": "FAITH_BLOCKED"},
			"error":       map[string]any{"type": "string"},
			"hint":        map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "code"},
	}
}

// sharedErrors are added to every operation that does not declare them; 401 only on secured ones
var sharedErrors = []struct {
	status int
	code   string
	msg    string
}{
	{http.StatusBadRequest, "VALIDATION", "faithMode must be one of: off light disciple kingdom"},
	{http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token"},
	{http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "rate limit exceeded"},
	{http.StatusInternalServerError, "PANIC", "panic recovered"},
}

// addErrorResponses walks every operation and fills in the shared error responses
func addErrorResponses(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			for _, e := range sharedErrors {
				key := strconv.Itoa(e.status)
				if _, exists := resps[key]; exists {
					continue
				}
				if e.status == http.StatusUnauthorized && op["security"] == nil {
					continue
				}
				resps[key] = map[string]any{
					"description": http.StatusText(e.status),
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
							"example": map[string]any{
								"status_code": e.status,
								"status":      http.StatusText(e.status),
								"code":        e.code,
								"error":       e.msg,
								"request_id":  "579f33bf50b1/abc-000001",
							},
						},
					},
				}
			}
		}
	}
}
