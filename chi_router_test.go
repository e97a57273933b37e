package goohttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestChiRouter(t *testing.T) {
	mux := chi.NewRouter()
	router := NewChiRouter(mux)

	router.HandleMethod(http.MethodGet, "/handle", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ChiRouter HandleMethod"))
	}))
	router.Route("/test", func(r Router) {
		r.HandleMethod(http.MethodGet, "/sub", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ChiRouter Subroute"))
		}))
	})
	router.HandleMethod(MethodAll, "/all", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("all"))
	}))

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody string
	}{
		{"handle method", http.MethodGet, "/handle", http.StatusOK, "ChiRouter HandleMethod"},
		{"wrong method", http.MethodPost, "/handle", http.StatusMethodNotAllowed, ""},
		{"subroute", http.MethodGet, "/test/sub", http.StatusOK, "ChiRouter Subroute"},
		{"all get", http.MethodGet, "/all", http.StatusOK, "all"},
		{"all delete", http.MethodDelete, "/all", http.StatusOK, "all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestChiRouterServeHTTP(t *testing.T) {
	mux := chi.NewRouter()
	router := NewChiRouter(mux)
	router.HandleMethod(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("root"))
	}))

	h, ok := router.(http.Handler)
	if !ok {
		t.Fatal("chi router should implement http.Handler")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Body.String() != "root" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "root")
	}
}
