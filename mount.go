package goohttp

import "fmt"

// Registrar expands declarative route tables into registration calls. It
// carries the configuration shared by every mounted route: the error handler
// used by error-returning handlers and component rendering, and middlewares
// applied to every handler.
type Registrar struct {
	onError     ErrorHandler
	middlewares []Middleware
}

// Option configures a Registrar.
type Option func(*Registrar)

// New creates a Registrar with the given options.
func New(options ...Option) *Registrar {
	g := &Registrar{onError: defaultErrorHandler}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// WithErrorHandler sets the function called when an error-returning handler
// or a component render fails.
func WithErrorHandler(onError ErrorHandler) Option {
	return func(g *Registrar) {
		g.onError = onError
	}
}

// WithMiddlewares appends middlewares applied to every mounted handler,
// outside any per-route middlewares.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(g *Registrar) {
		g.middlewares = append(g.middlewares, middlewares...)
	}
}

// Mount expands the route table into registrations against router. Accepted
// handler types are http.Handler, func(http.ResponseWriter, *http.Request),
// HandlerFunc (the error-returning variant) and templ.Component. Expansion
// performs no validation beyond what the wrapped router itself does; the
// first unsupported handler or empty path aborts with an error.
func (g *Registrar) Mount(router Router, routes Routes) error {
	for _, rt := range routes {
		if err := g.mountRoute(router, rt); err != nil {
			return err
		}
	}
	return nil
}

// Mount expands the route table with a default Registrar.
func Mount(router Router, routes Routes) error {
	return New().Mount(router, routes)
}

func (g *Registrar) mountRoute(router Router, rt Route) error {
	if rt.Path == "" {
		return fmt.Errorf("route %q has empty path", rt.Method)
	}
	if len(rt.Children) > 0 {
		// children register under a sub-router first to avoid
		// conflicts with the parent pattern
		var err error
		router.Route(rt.Path, func(sub Router) {
			for _, child := range rt.Children {
				if err = g.mountRoute(sub, child); err != nil {
					return
				}
			}
		})
		if err != nil {
			return err
		}
	}
	if rt.Handler == nil {
		if len(rt.Children) == 0 {
			return fmt.Errorf("route %s %s has no handler and no children", rt.Method, rt.Path)
		}
		return nil
	}
	handler, err := g.handler(rt.Handler)
	if err != nil {
		return fmt.Errorf("route %s %s: %w", rt.Method, rt.Path, err)
	}
	// route middlewares apply innermost, then registrar middlewares
	for _, mw := range rt.Middlewares {
		handler = mw(handler)
	}
	for _, mw := range g.middlewares {
		handler = mw(handler)
	}
	router.HandleMethod(rt.Method, rt.Path, handler)
	return nil
}
