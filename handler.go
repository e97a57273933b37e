package goohttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// HandlerFunc is an http.HandlerFunc that may return an error. Errors are
// passed to the Registrar's error handler instead of being silently dropped.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorHandler is called when an error-returning handler or a component
// render fails.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// handler coerces a declared handler value into an http.Handler.
func (g *Registrar) handler(v any) (http.Handler, error) {
	switch h := v.(type) {
	case nil:
		return nil, errors.New("nil handler")
	case http.Handler:
		return h, nil
	case func(http.ResponseWriter, *http.Request):
		return http.HandlerFunc(h), nil
	case HandlerFunc:
		return g.errHandler(h), nil
	case func(http.ResponseWriter, *http.Request) error:
		return g.errHandler(h), nil
	case templ.Component:
		return g.component(h), nil
	default:
		return nil, fmt.Errorf("unsupported handler type %T", v)
	}
}

func (g *Registrar) errHandler(h func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			g.onError(w, r, err)
		}
	})
}
