// Package api provides the HTTP API for the application
package api

import (
	"time"

	"contentgate/internal/platform/config"
	"contentgate/internal/platform/logger"
	phttp "contentgate/internal/platform/net/http"
	"contentgate/internal/platform/net/middleware"
	"contentgate/internal/platform/ratelimit"
	"contentgate/internal/platform/store"
	ptime "contentgate/internal/platform/time"

	"contentgate/internal/modkit"
	"contentgate/internal/modkit/httpkit"
	"contentgate/internal/modkit/swaggerkit"

	metamod "contentgate/internal/services/api/meta/module"
	"contentgate/internal/services/auth"
	contentmod "contentgate/internal/services/content/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Limiter ratelimit.Limiter
	Clock   ptime.Clock

	// Auth verifies bearer tokens on /content; nil builds the JWT verifier from Config
	Auth middleware.AuthPort

	// Content lets callers inject the corpus and providers; zero uses the defaults
	Content contentmod.Ports

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Store:   opt.Store,
		Limiter: opt.Limiter,
		Clock:   opt.Clock,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Auth == nil {
		opt.Auth = auth.FromConfig(opt.Config)
	}

	// common middleware stack first; chi rejects Use after routes
	for _, mw := range httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     opt.Config.MayDuration("API_TIMEOUT", 30*time.Second),
		SlowLog:     opt.Config.MayDuration("API_SLOW_LOG", 0),
	}) {
		r.Use(mw)
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	meta := metamod.New(deps)
	content := contentmod.New(deps, modkit.WithPorts(opt.Content))

	meta.MountRoutes(r)
	httpkit.Protected(r, opt.Auth, content.MountRoutes)
}
