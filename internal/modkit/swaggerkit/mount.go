// Package swaggerkit mounts Swagger UI over the static OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "contentgate/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is served at DocsPath+"/doc.json"
const DocsPath = "/api/docs"

// Mount serves the UI and document when enabled (API_SWAGGER)
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())

	// every /content route needs a bearer token; keep it across reloads
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.PersistAuthorization(true),
	))
}
