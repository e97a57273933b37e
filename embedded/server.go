package embedded

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultName        = "HttpServer"
	defaultRefreshRate = 10 * time.Millisecond
)

// Server accepts connections synchronously and serves them one at a time
// through an http.Handler. It exists for targets that cannot run net/http's
// own server: the accept loop never spawns per-connection goroutines and
// blocks on at most one in-flight request.
type Server struct {
	name    string
	addr    string
	refresh time.Duration
	log     zerolog.Logger
	logSet  bool

	mu       sync.Mutex
	ln       net.Listener
	done     chan struct{}
	loopDone chan struct{}
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithName sets the name used in log messages. Defaults to "HttpServer".
func WithName(name string) ServerOption {
	return func(s *Server) {
		s.name = name
	}
}

// WithRefreshRate sets the pause between two accept polls. Defaults to 10ms.
func WithRefreshRate(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.refresh = d
		}
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(log zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.log = log
		s.logSet = true
	}
}

// WithListener supplies an externally created listener, e.g. from a target's
// own network stack. Serve then skips binding, and Shutdown still closes the
// listener to unblock the accept loop.
func WithListener(ln net.Listener) ServerOption {
	return func(s *Server) {
		s.ln = ln
	}
}

// Bind creates a server for the given address. The listener is not opened
// until Serve is called. addr is ignored when WithListener is used.
func Bind(addr string, options ...ServerOption) *Server {
	s := &Server{
		name:    defaultName,
		addr:    addr,
		refresh: defaultRefreshRate,
	}
	for _, opt := range options {
		opt(s)
	}
	if !s.logSet {
		s.log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	s.log = s.log.With().Str("name", s.name).Logger()
	return s
}

// Serve opens the listener (unless one was supplied) and starts the accept
// loop on a background goroutine, then returns. Connections are handled
// strictly one at a time; there is no pooling, backpressure or concurrent
// dispatch. Calling Serve on a server that is already running is an error.
func (s *Server) Serve(handler http.Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return errors.New("server already running")
	}

	s.log.Info().Msg("starting")
	if s.ln == nil {
		ln, err := net.Listen("tcp", s.addr)
		if err != nil {
			s.log.Error().Err(err).Msg("bind failed")
			return err
		}
		s.ln = ln
	}
	s.done = make(chan struct{})
	s.loopDone = make(chan struct{})

	s.log.Info().Stringer("addr", s.ln.Addr()).Msg("listening")
	go s.acceptLoop(s.ln, s.done, s.loopDone, handler)
	return nil
}

// Addr returns the listener's address, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) acceptLoop(ln net.Listener, done <-chan struct{}, loopDone chan<- struct{}, handler http.Handler) {
	defer close(loopDone)
	for {
		select {
		case <-done:
			return
		default:
		}
		// a deadline turns the blocking accept into a poll, so
		// shutdown is noticed within one refresh interval
		if d, ok := ln.(interface{ SetDeadline(time.Time) error }); ok {
			_ = d.SetDeadline(time.Now().Add(s.refresh))
		}
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			s.log.Error().Err(err).Msg("accept failed, connection ignored")
			continue
		}

		s.log.Trace().Stringer("remote", conn.RemoteAddr()).Msg("client connected")
		if err := HandleConn(conn, handler); err != nil {
			s.log.Debug().Err(err).Msg("connection aborted")
		}
		_ = conn.Close()
	}
}

// Shutdown closes the listener and waits for the accept loop to finish the
// in-flight connection, bounded by ctx. It is a no-op on a server that is
// not running.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	done, loopDone := s.done, s.loopDone
	if done == nil {
		s.mu.Unlock()
		return nil
	}
	s.done = nil
	close(done)
	err := s.ln.Close()
	s.ln = nil
	s.mu.Unlock()

	select {
	case <-loopDone:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	s.log.Info().Msg("stopped")
	return nil
}
