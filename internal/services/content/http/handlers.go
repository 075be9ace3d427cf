// Package http provides the http transport for content
package http

import (
	stdhttp "net/http"

	"contentgate/internal/modkit/httpkit"
	"contentgate/internal/platform/ratelimit"
	"contentgate/internal/services/content/domain"
	svc "contentgate/internal/services/content/service"
)

// Rate limit scopes
const (
	ScopeContent   = "content"
	ScopeScripture = "scripture"
)

// Limits are the per-minute budgets for the content routes
type Limits struct {
	Limiter   ratelimit.Limiter
	PerMinute int
	// Scripture applies on top of PerMinute for the scripture routes
	Scripture int
}

// Register mounts content endpoints on the given router
func Register(r httpkit.Router, s svc.Service, l Limits) {
	h := &handlers{svc: s}

	r.Use(httpkit.RateLimit(l.Limiter, ScopeContent, l.PerMinute))

	httpkit.Get(r, "/manifest", h.manifest)
	httpkit.PostJSON[domain.QuoteRequest](r, "/quotes", h.quotes)
	httpkit.PostJSON[domain.QuoteRequest](r, "/devotionals", h.devotionals)
	httpkit.PostJSON[domain.QuoteRequest](r, "/prayers", h.prayers)

	// scripture runs a tighter budget
	r.Group(func(sr httpkit.Router) {
		sr.Use(httpkit.RateLimit(l.Limiter, ScopeScripture, l.Scripture))
		httpkit.PostJSON[domain.ScriptureRequest](sr, "/scripture", h.scripture)
		httpkit.PostJSON[domain.ScriptureRequest](sr, "/scripture/daily", h.daily)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /content/manifest Content contentManifest
// @Summary Corpus and provider summary
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Manifest "ok"
// @Router /content/manifest [get]
func (h *handlers) manifest(r *stdhttp.Request) (any, error) {
	return h.svc.Manifest(r.Context())
}

// swagger:route POST /content/quotes Content contentQuotes
// @Summary Filtered and ranked quotes; faith quotes only when the gate allows
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.QuoteRequest true "Request"
// @Success 200 {array} domain.QuoteItem "ok"
// @Router /content/quotes [post]
func (h *handlers) quotes(r *stdhttp.Request, in domain.QuoteRequest) (any, error) {
	return h.svc.Quotes(r.Context(), in)
}

// swagger:route POST /content/scripture Content contentScripture
// @Summary One KJV passage for a theme
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ScriptureRequest true "Request"
// @Success 200 {object} domain.ScripturePassage "ok"
// @Failure 403 {object} httpkit.Envelope "FAITH_BLOCKED"
// @Failure 404 {object} httpkit.Envelope "NOT_FOUND"
// @Failure 422 {object} httpkit.Envelope "POLICY_REJECTED"
// @Router /content/scripture [post]
func (h *handlers) scripture(r *stdhttp.Request, in domain.ScriptureRequest) (any, error) {
	return h.svc.Scripture(r.Context(), in)
}

// swagger:route POST /content/scripture/daily Content contentDailyScripture
// @Summary Daily passages from providers, the theme, or the rotation set
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ScriptureRequest true "Request"
// @Success 200 {array} domain.ScripturePassage "ok"
// @Router /content/scripture/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.ScriptureRequest) (any, error) {
	return h.svc.DailyScripture(r.Context(), in)
}

// swagger:route POST /content/devotionals Content contentDevotionals
// @Summary Daily devotionals
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.QuoteRequest true "Request"
// @Success 200 {array} domain.Devotional "ok"
// @Router /content/devotionals [post]
func (h *handlers) devotionals(r *stdhttp.Request, in domain.QuoteRequest) (any, error) {
	return h.svc.Devotionals(r.Context(), in)
}

// swagger:route POST /content/prayers Content contentPrayers
// @Summary Daily prayers
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.QuoteRequest true "Request"
// @Success 200 {array} domain.Prayer "ok"
// @Router /content/prayers [post]
func (h *handlers) prayers(r *stdhttp.Request, in domain.QuoteRequest) (any, error) {
	return h.svc.Prayers(r.Context(), in)
}
