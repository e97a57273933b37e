package goohttp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Middleware wraps an http.Handler. Per-route middlewares apply innermost;
// registrar middlewares wrap the result.
type Middleware func(http.Handler) http.Handler

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request an ID: an inbound X-Request-ID header is
// reused, otherwise a fresh UUID is minted. The ID is echoed on the response
// and attached to the request's context logger, so downstream log lines can
// be correlated.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			l := zerolog.Ctx(r.Context()).With().Str("request_id", id).Logger()
			r = r.WithContext(l.WithContext(r.Context()))

			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request with method, uri, status, response
// size and duration.
func RequestLogger(log zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			log.Info().
				Str("method", r.Method).
				Str("uri", r.URL.RequestURI()).
				Int("status", sw.status()).
				Int("size", sw.size).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
	size int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusWriter) status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}
