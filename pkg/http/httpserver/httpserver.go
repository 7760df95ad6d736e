// Package httpserver wraps http.Server with an explicit listen step,
// so that callers learn the bound address before requests are served.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 60
	defaultReadTimeout     = time.Second * 60
	defaultWriteTimeout    = time.Second * 60
)

type HTTPServer struct {
	addr            *net.TCPAddr
	listener        net.Listener
	server          *http.Server
	shutdownTimeout time.Duration
	closer          chan struct{}
	readyCallback   func(net.Addr)
}

type Option func(*HTTPServer) error

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
		return nil
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.server.ReadTimeout = timeout
			s.server.ReadHeaderTimeout = timeout
		}
		return nil
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		if timeout > 0 {
			s.server.WriteTimeout = timeout
		}
		return nil
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) error {
		if handler == nil {
			return errors.New("http server: nil handler")
		}
		s.server.Handler = handler
		return nil
	}
}

// WithReadySignal sets a callback invoked with the bound address
// right after the listener is open.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) error {
		s.readyCallback = cb
		return nil
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	server := &HTTPServer{
		addr: tcpAddr,
		server: &http.Server{ // nolint: gosec
			Addr:              addr,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
		},
		shutdownTimeout: defaultShutdownTimeout,
		closer:          make(chan struct{}),
	}
	for _, opt := range opts {
		if optErr := opt(server); optErr != nil {
			return nil, optErr
		}
	}
	return server, nil
}

// ListenAndServe blocks until the server is stopped or fails.
// A stopped server yields nil.
func (s *HTTPServer) ListenAndServe() error {
	fatal := make(chan error, 1)

	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	defer listener.Close()

	if s.readyCallback != nil {
		s.readyCallback(listener.Addr())
	}

	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil {
			fatal <- serveErr
		}
	}()

	select {
	case err := <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.closer:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() net.Addr {
	return s.listener.Addr()
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	close(s.closer)
	stopCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
