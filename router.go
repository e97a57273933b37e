package goohttp

import (
	"net/http"
	"path"

	"github.com/rs/zerolog"
)

// Router is the registration surface the declarative route table expands
// into. It is intentionally minimal so different routing implementations can
// be plugged in: NewChiRouter wraps chi, NewStdRouter wraps http.ServeMux.
type Router interface {
	// HandleMethod registers handler for the given method and path.
	// An empty method or MethodAll registers the handler for every method.
	HandleMethod(method, path string, handler http.Handler)
	// Route mounts a sub-router at path and calls fn with it.
	Route(path string, fn func(Router))
}

// MethodAll registers a handler for every HTTP method.
const MethodAll = "ALL"

type stdRouter struct {
	mux *http.ServeMux
	// prefix accumulates Route nesting; ServeMux has no native sub-routers.
	prefix string
}

// NewStdRouter creates a router that wraps http.ServeMux. If mux is nil,
// http.DefaultServeMux is used. Route nesting is emulated by prefixing
// patterns, since ServeMux has no sub-router concept.
func NewStdRouter(mux *http.ServeMux) Router {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	pattern = path.Join(r.prefix, pattern)
	if method != MethodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *stdRouter) Route(pattern string, fn func(Router)) {
	fn(&stdRouter{mux: r.mux, prefix: path.Join(r.prefix, pattern)})
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// logRouter decorates another Router and logs every registration. Useful to
// see what a declarative table expands into.
type logRouter struct {
	next Router
	log  zerolog.Logger
}

// NewLogRouter wraps next so that every registration is logged before being
// forwarded.
func NewLogRouter(next Router, log zerolog.Logger) Router {
	return &logRouter{next: next, log: log}
}

func (r *logRouter) HandleMethod(method, path string, handler http.Handler) {
	r.log.Debug().Str("method", method).Str("path", path).Msg("register route")
	r.next.HandleMethod(method, path, handler)
}

func (r *logRouter) Route(path string, fn func(Router)) {
	r.log.Debug().Str("path", path).Msg("register route group")
	r.next.Route(path, func(sub Router) {
		fn(&logRouter{next: sub, log: r.log})
	})
}
