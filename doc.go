// Package goohttp is a convenience layer over the [chi] router. It provides
// a declarative route table that expands into registration calls against a
// minimal [Router] interface, handler coercion for error-returning handlers
// and templ components, and request-scoped middleware helpers. The optional
// embedded subpackage adds a synchronous server adapter for targets whose
// network stacks only expose blocking socket APIs.
//
// [chi]: https://github.com/go-chi/chi
package goohttp
