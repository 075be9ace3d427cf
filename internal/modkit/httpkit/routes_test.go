package httpkit

import (
	"net/http"
	"testing"

	phttp "contentgate/internal/platform/net/http"
)

type verbCall struct {
	verb string
	path string
}

type fakeRouter struct {
	prefixes  []string
	groups    int
	useCalls  int
	lastMWLen int
	verbCalls []verbCall
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) {
	f.groups++
	fn(f)
}

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, _ http.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"HANDLE", path})
}

func (f *fakeRouter) Get(path string, _ phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"GET", path})
}

func (f *fakeRouter) Post(path string, _ phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"POST", path})
}

func TestMountUnder_AppliesMiddlewareAndMounts(t *testing.T) {
	t.Parallel()

	root := &fakeRouter{}
	mw := []func(http.Handler) http.Handler{
		func(h http.Handler) http.Handler { return h },
		func(h http.Handler) http.Handler { return h },
	}
	mounted := false
	MountUnder(root, "/content", mw, func(sub Router) {
		mounted = true
		sub.Get("/manifest", nil)
	})

	if !mounted {
		t.Fatalf("mount func not called")
	}
	if len(root.prefixes) != 1 || root.prefixes[0] != "/content" {
		t.Fatalf("prefixes = %v", root.prefixes)
	}
	if root.useCalls != 2 || root.lastMWLen != 1 {
		t.Fatalf("use calls = %d len = %d", root.useCalls, root.lastMWLen)
	}
	if len(root.verbCalls) != 1 || root.verbCalls[0] != (verbCall{"GET", "/manifest"}) {
		t.Fatalf("verb calls = %#v", root.verbCalls)
	}
}

func TestMountUnder_NoMiddlewareSkipsUse(t *testing.T) {
	t.Parallel()

	root := &fakeRouter{}
	MountUnder(root, "/meta", nil, func(Router) {})
	if root.useCalls != 0 {
		t.Fatalf("Use should not be called without middleware")
	}
}
