package goohttp

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
)

// ComponentHandler serves a templ component with the default error handling.
// The component renders into a pooled buffer first, so a render error yields
// a clean 500 instead of a torn body.
func ComponentHandler(c templ.Component) http.Handler {
	return New().component(c)
}

func (g *Registrar) component(c templ.Component) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.render(w, r, c)
	})
}

func (g *Registrar) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	bw := newBuffered(w)
	if err := c.Render(r.Context(), bw); err != nil {
		bw.discard()
		g.onError(w, r, err)
		return
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	_ = bw.close()
}

// Page pairs a full-page component with an optional partial for htmx
// requests. An htmx request gets the partial; an htmx request without a
// partial gets the full page retargeted at the body, so a stale fragment
// swap cannot leave the page half-rendered. Non-htmx requests always get
// the full page.
func Page(page, partial templ.Component) http.Handler {
	return New().Page(page, partial)
}

// Page is like the package-level Page but uses the registrar's error
// handler.
func (g *Registrar) Page(page, partial templ.Component) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if htmx.IsHTMX(r) {
			if partial != nil {
				g.render(w, r, partial)
				return
			}
			if err := htmx.NewResponse().Retarget("body").RenderTempl(r.Context(), w, page); err != nil {
				g.onError(w, r, err)
			}
			return
		}
		g.render(w, r, page)
	})
}
