package goohttp

import (
	"net/http"
	"testing"
)

func Test_namedPath(t *testing.T) {
	tests := []struct {
		name   string // description of this test case
		route  string
		params []string
		want   string
	}{
		{
			name:  "index maps to root",
			route: "index",
			want:  "/",
		},
		{
			name:  "plain name",
			route: "say_hello",
			want:  "/say_hello",
		},
		{
			name:   "name with one param",
			route:  "say_hello",
			params: []string{"{caller}"},
			want:   "/say_hello/{caller}",
		},
		{
			name:   "name with two params",
			route:  "say_hello",
			params: []string{"{caller}", "{sender}"},
			want:   "/say_hello/{caller}/{sender}",
		},
		{
			name:   "index with param",
			route:  "index",
			params: []string{"{user}"},
			want:   "/{user}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := namedPath(tt.route, tt.params...)
			if got != tt.want {
				t.Errorf("namedPath(%q, %v) = %q, want %q", tt.route, tt.params, got, tt.want)
			}
		})
	}
}

func TestRouteConstructors(t *testing.T) {
	h := func(w http.ResponseWriter, r *http.Request) {}
	tests := []struct {
		name       string
		route      Route
		wantMethod string
		wantPath   string
	}{
		{"Get", Get("/a", h), http.MethodGet, "/a"},
		{"Post", Post("/a", h), http.MethodPost, "/a"},
		{"Put", Put("/a", h), http.MethodPut, "/a"},
		{"Patch", Patch("/a", h), http.MethodPatch, "/a"},
		{"Delete", Delete("/a", h), http.MethodDelete, "/a"},
		{"Head", Head("/a", h), http.MethodHead, "/a"},
		{"Options", Options("/a", h), http.MethodOptions, "/a"},
		{"All", All("/a", h), MethodAll, "/a"},
		{"Handle", Handle("TRACE", "/a", h), "TRACE", "/a"},
		{"Named", Named(http.MethodGet, "users", h, "{id}"), http.MethodGet, "/users/{id}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.route.Method != tt.wantMethod {
				t.Errorf("method = %q, want %q", tt.route.Method, tt.wantMethod)
			}
			if tt.route.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", tt.route.Path, tt.wantPath)
			}
		})
	}
}

func TestRouteUseDoesNotShareBackingArray(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	base := Get("/a", func(w http.ResponseWriter, r *http.Request) {}).Use(mw)
	a := base.Use(mw)
	b := base.Use(mw, mw)
	if len(base.Middlewares) != 1 {
		t.Errorf("base middlewares = %d, want 1", len(base.Middlewares))
	}
	if len(a.Middlewares) != 2 {
		t.Errorf("a middlewares = %d, want 2", len(a.Middlewares))
	}
	if len(b.Middlewares) != 3 {
		t.Errorf("b middlewares = %d, want 3", len(b.Middlewares))
	}
}
