package goohttp

import "net/http"

// Route is one entry of a declarative route table: a (method, path, handler)
// triple, optional per-route middlewares, and optional nested children. The
// zero value is not useful; build routes with the constructors below.
type Route struct {
	Method      string
	Path        string
	Handler     any
	Middlewares []Middleware
	Children    Routes
}

// Routes is a declarative route table. Mounting it expands every entry into
// registration calls against a Router; see Mount and Registrar.Mount.
type Routes []Route

// Handle declares a route for the given method. See Registrar.Mount for the
// handler types accepted.
func Handle(method, path string, handler any) Route {
	return Route{Method: method, Path: path, Handler: handler}
}

// All declares a route that matches every HTTP method.
func All(path string, handler any) Route {
	return Handle(MethodAll, path, handler)
}

// Get declares a GET route.
func Get(path string, handler any) Route {
	return Handle(http.MethodGet, path, handler)
}

// Post declares a POST route.
func Post(path string, handler any) Route {
	return Handle(http.MethodPost, path, handler)
}

// Put declares a PUT route.
func Put(path string, handler any) Route {
	return Handle(http.MethodPut, path, handler)
}

// Patch declares a PATCH route.
func Patch(path string, handler any) Route {
	return Handle(http.MethodPatch, path, handler)
}

// Delete declares a DELETE route.
func Delete(path string, handler any) Route {
	return Handle(http.MethodDelete, path, handler)
}

// Head declares a HEAD route.
func Head(path string, handler any) Route {
	return Handle(http.MethodHead, path, handler)
}

// Options declares an OPTIONS route.
func Options(path string, handler any) Route {
	return Handle(http.MethodOptions, path, handler)
}

// Group declares a prefix under which the given routes are nested. A group
// has no handler of its own.
func Group(path string, children ...Route) Route {
	return Route{Path: path, Children: children}
}

// Named declares a route whose path is derived from a name: "index" maps to
// "/", any other name maps to "/name", and params append as additional path
// segments. Param placeholders use the wrapped router's syntax, e.g.
// "{user}".
//
//	Named(http.MethodGet, "say_hello", h, "{caller}") // GET /say_hello/{caller}
func Named(method, name string, handler any, params ...string) Route {
	return Handle(method, namedPath(name, params...), handler)
}

// Use returns a copy of the route with the given middlewares appended. They
// apply to this route's handler only, not to its children.
func (r Route) Use(mw ...Middleware) Route {
	r.Middlewares = append(r.Middlewares[:len(r.Middlewares):len(r.Middlewares)], mw...)
	return r
}

func namedPath(name string, params ...string) string {
	p := "/"
	if name != "index" {
		p += name
	}
	for _, param := range params {
		if p != "/" {
			p += "/"
		}
		p += param
	}
	return p
}
