package goohttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiRouter struct {
	router chi.Router
}

// NewChiRouter wraps a chi router so it can be used as the registration
// target of a declarative route table. The returned router also serves HTTP
// by delegating to the wrapped chi router.
func NewChiRouter(r chi.Router) Router {
	return &chiRouter{router: r}
}

func (r *chiRouter) Route(path string, fn func(Router)) {
	r.router.Route(path, func(sub chi.Router) {
		fn(&chiRouter{router: sub})
	})
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == MethodAll || method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
