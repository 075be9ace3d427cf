// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"contentgate/internal/core/version"
	"contentgate/internal/modkit/httpkit"
	ptime "contentgate/internal/platform/time"
)

// Cache is the slice of store.Cache the probes need
type Cache interface {
	Ping(stdctx.Context) error
	Backend() string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	Env         string
	StartedAt   time.Time
	Cache       Cache
	Clock       ptime.Clock
}

type handlers struct {
	deps Deps
}

func (h *handlers) now() time.Time {
	if h.deps.Clock == nil {
		return time.Now().UTC()
	}
	return h.deps.Clock.Now().UTC()
}

// RegisterHealth mounts the unauthenticated liveness route
func RegisterHealth(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK    bool   `json:"ok"    example:"true"`
	Env   string `json:"env"   example:"dev"`
	Redis bool   `json:"redis" example:"false"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"cache"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Detail string `json:"detail,omitempty" example:"memory"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"contentgate-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /health Meta health
// @Summary Liveness with environment and cache backend
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	redis := h.deps.Cache != nil && h.deps.Cache.Backend() == "redis"
	return HealthResponse{OK: true, Env: h.deps.Env, Redis: redis}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe; a failing cache degrades but never fails the gateway
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	c := ReadyCheck{Name: "cache", Status: "skipped"}
	if h.deps.Cache != nil {
		c.Detail = h.deps.Cache.Backend()
		c.Status = "ok"
		if err := h.deps.Cache.Ping(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
		}
	}

	overall := "ok"
	if c.Status != "ok" {
		overall = "degraded"
	}
	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{c},
		Now:    h.now().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}
