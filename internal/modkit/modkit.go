package modkit

import (
	phttp "contentgate/internal/platform/net/http"
)

// Module is what the api package mounts: routes under a prefix plus an optional port set
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
	Prefix() string
}
