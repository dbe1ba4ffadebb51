package httpserver_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrkit/pkg/httpserver"
)

// reserveAddr grabs a loopback port and frees it for the server under test.
func reserveAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "reserve port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "release port")
	return addr
}

// runServer launches Run in the background and exposes its result.
func runServer(ctx context.Context, srv *httpserver.Server, h http.Handler) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	return done
}

// waitExit fails the test unless Run returns within a second.
func waitExit(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		t.Fatal("server did not exit in time")
		return nil
	}
}

// waitServing polls addr until the listener accepts connections.
func waitServing(t *testing.T, addr string) {
	t.Helper()
	for range 100 {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			require.NoError(t, conn.Close(), "close probe")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("listener on %s never came up", addr)
}

func TestServerServesUntilCanceled(t *testing.T) {
	t.Parallel()

	t.Run("answers requests and drains on cancel", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := runServer(ctx, srv, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		waitServing(t, addr)

		resp, err := http.Get("http://" + addr)
		require.NoError(t, err, "get")
		require.NoError(t, resp.Body.Close(), "close body")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		cancel()
		require.NoError(t, waitExit(t, done), "run")
	})

	t.Run("nil handler answers not found", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := runServer(ctx, srv, nil)
		waitServing(t, addr)

		resp, err := http.Get("http://" + addr + "/anything")
		require.NoError(t, err, "get")
		require.NoError(t, resp.Body.Close(), "close body")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		cancel()
		require.NoError(t, waitExit(t, done), "run")
	})
}

func TestServerShutdownStopsRun(t *testing.T) {
	t.Parallel()

	t.Run("stops a running server", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(context.Background(), srv, http.NewServeMux())
		<-started

		require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
		require.NoError(t, waitExit(t, done), "run")
	})

	t.Run("is safe to repeat", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(context.Background(), srv, http.NewServeMux())
		<-started

		require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
		require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
		require.NoError(t, waitExit(t, done), "run")
	})

	t.Run("before run does nothing", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr(reserveAddr(t)))
		require.NoError(t, srv.Shutdown(context.Background()))
	})
}

func TestServerRunRejectsBadStart(t *testing.T) {
	t.Parallel()

	t.Run("malformed address", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:notaport"))
		err := srv.Run(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("second run on the same server", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(context.Background(), srv, nil)
		<-started

		err := srv.Run(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrStart)

		require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
		require.NoError(t, waitExit(t, done), "first run")
	})
}

func TestServerRunsHooksInOrder(t *testing.T) {
	t.Parallel()

	addr := reserveAddr(t)
	var calls []string
	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { calls = append(calls, "warm caches") }),
		httpserver.WithStartHook(func(*slog.Logger) {
			calls = append(calls, "announce")
			close(started)
		}),
		httpserver.WithStopHook(func(*slog.Logger) { calls = append(calls, "flush") }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := runServer(ctx, srv, http.NewServeMux())
	<-started
	cancel()
	require.NoError(t, waitExit(t, done), "run")

	assert.Equal(t, []string{"warm caches", "announce", "flush"}, calls, "hooks ran out of order")
}

func TestServerReusesProvidedServer(t *testing.T) {
	t.Parallel()

	addr := reserveAddr(t)
	hs := &http.Server{Addr: addr, ReadTimeout: time.Second}
	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithReadTimeout(30*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)

	done := runServer(context.Background(), srv, http.NewServeMux())
	<-started

	assert.Equal(t, addr, hs.Addr, "preset address must win")
	assert.Equal(t, time.Second, hs.ReadTimeout, "preset read timeout must win")
	assert.Equal(t, 3*time.Second, hs.IdleTimeout, "blank idle timeout takes the option")
	assert.NotNil(t, hs.Handler, "handler not attached")

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	require.NoError(t, waitExit(t, done), "run")
}

func TestServerOptionsConfigureListener(t *testing.T) {
	t.Parallel()

	addr := reserveAddr(t)
	hs := &http.Server{}
	log := slog.New(slog.DiscardHandler)
	hookLogger := make(chan *slog.Logger, 1)
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(addr),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) { hookLogger <- l }),
	)

	done := runServer(context.Background(), srv, nil)
	assert.Same(t, log, <-hookLogger, "hooks must receive the configured logger")
	assert.Equal(t, addr, hs.Addr)
	assert.Equal(t, time.Second, hs.ReadTimeout)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.IdleTimeout)

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	require.NoError(t, waitExit(t, done), "run")
}

func TestServerOptionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		option func()
	}{
		{"empty address", func() { httpserver.WithAddr("") }},
		{"non-positive read timeout", func() { httpserver.WithReadTimeout(0) }},
		{"non-positive write timeout", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"non-positive idle timeout", func() { httpserver.WithIdleTimeout(0) }},
		{"non-positive shutdown timeout", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"nil server", func() { httpserver.WithServer(nil) }},
		{"nil start hook", func() { httpserver.WithStartHook(nil) }},
		{"nil stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name+" panics", func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.option)
		})
	}

	t.Run("nil logger is allowed", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("config values reach the listener", func(t *testing.T) {
		t.Parallel()

		addr := reserveAddr(t)
		hs := &http.Server{}
		started := make(chan struct{})
		srv := httpserver.NewFromConfig(
			httpserver.Config{
				Addr:            addr,
				ReadTimeout:     time.Second,
				WriteTimeout:    2 * time.Second,
				IdleTimeout:     3 * time.Second,
				ShutdownTimeout: 100 * time.Millisecond,
			},
			httpserver.WithServer(hs),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(context.Background(), srv, nil)
		<-started

		assert.Equal(t, addr, hs.Addr)
		assert.Equal(t, time.Second, hs.ReadTimeout)
		assert.Equal(t, 2*time.Second, hs.WriteTimeout)
		assert.Equal(t, 3*time.Second, hs.IdleTimeout)

		require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
		require.NoError(t, waitExit(t, done), "run")
	})

	t.Run("options apply on top of the config", func(t *testing.T) {
		t.Parallel()

		configAddr := reserveAddr(t)
		optionAddr := reserveAddr(t)
		hs := &http.Server{}
		started := make(chan struct{})
		srv := httpserver.NewFromConfig(
			httpserver.Config{Addr: configAddr, ShutdownTimeout: 100 * time.Millisecond},
			httpserver.WithServer(hs),
			httpserver.WithAddr(optionAddr),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(context.Background(), srv, nil)
		<-started

		assert.Equal(t, optionAddr, hs.Addr, "explicit option must override the config")

		require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
		require.NoError(t, waitExit(t, done), "run")
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	t.Run("liveness without checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(context.Background(), log)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready when all checks pass", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(context.Background(), log, ok, ok)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready when any check fails", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		bad := func(context.Context) error { return errors.New("connection refused") }
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(context.Background(), log, ok, bad)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
