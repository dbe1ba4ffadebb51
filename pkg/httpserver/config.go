package httpserver

import "time"

// Config carries the listener settings. The write timeout default is
// generous because document uploads hold the response open while OCR and
// structuring run.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`           // Addr is the address the server listens on.
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"60s"`     // ReadTimeout bounds reading the entire request, including multipart bodies.
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"180s"`   // WriteTimeout bounds the whole handler, extraction pipeline included.
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`    // IdleTimeout is how long keep-alive connections may sit idle.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"` // ShutdownTimeout is the drain window for in-flight requests.
}

// NewFromConfig creates a Server from the provided Config. Zero values fall
// back to package defaults; extra options apply on top.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromCfg := make([]Option, 0, 5+len(opts))
	if cfg.Addr != "" {
		fromCfg = append(fromCfg, WithAddr(cfg.Addr))
	}
	for _, t := range []struct {
		value time.Duration
		with  func(time.Duration) Option
	}{
		{cfg.ReadTimeout, WithReadTimeout},
		{cfg.WriteTimeout, WithWriteTimeout},
		{cfg.IdleTimeout, WithIdleTimeout},
		{cfg.ShutdownTimeout, WithShutdownTimeout},
	} {
		if t.value > 0 {
			fromCfg = append(fromCfg, t.with(t.value))
		}
	}

	return New(append(fromCfg, opts...)...)
}
