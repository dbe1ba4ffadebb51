package httpserver

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

type settings struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultSettings() *settings {
	return &settings{
		addr:            ":8080",
		shutdownTimeout: 10 * time.Second,
	}
}

// buildServer assembles the http.Server the options describe. Fields already
// set on a WithServer preset win; zero fields take the option values.
func (cfg *settings) buildServer() *http.Server {
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	srv.Addr = cmp.Or(srv.Addr, cfg.addr)
	srv.ReadTimeout = cmp.Or(srv.ReadTimeout, cfg.readTimeout)
	srv.WriteTimeout = cmp.Or(srv.WriteTimeout, cfg.writeTimeout)
	srv.IdleTimeout = cmp.Or(srv.IdleTimeout, cfg.idleTimeout)
	return srv
}

// Server runs an http.Server with lifecycle hooks and graceful drain.
type Server struct {
	cfg  *settings
	srv  *http.Server
	once sync.Once
	mu   sync.Mutex
}

// New assembles a Server from the given options.
func New(opts ...Option) *Server {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg}
}

// start claims the server slot. A second Run on the same Server fails.
func (s *Server) start(handler http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, errors.Join(ErrStart, errors.New("server already started"))
	}

	srv := s.cfg.buildServer()
	srv.Handler = handler
	s.srv = srv
	return srv, nil
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails. A nil handler serves 404 for everything. Start
// failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, err := s.start(handler)
	if err != nil {
		return err
	}

	for _, hook := range s.cfg.startHooks {
		hook(s.cfg.logger)
	}
	s.cfg.logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		s.cfg.logger.InfoContext(ctx, "http server draining")
		_ = s.Shutdown(context.Background())
		err = <-serveErr
	case err = <-serveErr:
	}

	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Join(ErrStart, err)
}

// Shutdown stops the server gracefully before Run returns. It is safe for
// repeated calls and a no-op before Run. Shutdown errors are wrapped with
// ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		for _, hook := range s.cfg.stopHooks {
			hook(s.cfg.logger)
		}
	})

	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Join(ErrShutdown, err)
}
