package httpkit

import "net/http"

// MountUnder opens a subrouter at prefix, applies mw in order and hands it to mount
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		for _, m := range mw {
			sub.Use(m)
		}
		mount(sub)
	})
}
