package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/hrkit/pkg/environment"
)

// Format selects the handler encoding.
type Format string

const (
	// FormatJSON emits one JSON object per record, for log shippers.
	FormatJSON Format = "json"
	// FormatText emits key=value lines for terminals.
	FormatText Format = "text"
)

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// Option adjusts how New assembles the logger.
type Option func(*config)

func noop() Option {
	return func(*config) {}
}

// WithLevel sets the minimum level a record needs to be emitted.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output encoding. Unknown formats panic so a
// misconfigured service fails at startup instead of logging garbage.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	if w == nil {
		return noop()
	}
	return func(c *config) { c.output = w }
}

// WithHandlerOptions overrides the slog handler options wholesale, including
// the level set by WithLevel. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	if opts == nil {
		return noop()
	}
	return func(c *config) { c.handlerOptions = opts }
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers extractors that pull request-scoped
// attributes out of the context on every log call. Nils are dropped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			c.extractors = append(c.extractors, ex)
		}
	}
}

// WithContextValue copies the context value stored under key into every
// record as an attribute named name. Records logged without the value carry
// no attribute.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return noop()
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(name, v), true
	})
}

// WithDevelopment switches to text output at debug level and tags every
// record with the service name.
func WithDevelopment(service string) Option {
	return environmentPreset(environment.Development, FormatText, slog.LevelDebug, service)
}

// WithStaging keeps JSON output at info level with staging tags.
func WithStaging(service string) Option {
	return environmentPreset(environment.Staging, FormatJSON, slog.LevelInfo, service)
}

// WithProduction keeps JSON output at info level with production tags.
func WithProduction(service string) Option {
	return environmentPreset(environment.Production, FormatJSON, slog.LevelInfo, service)
}

// WithEnvironment picks the preset matching env. Anything unrecognized is
// treated as development.
func WithEnvironment(env string, service string) Option {
	switch env {
	case string(environment.Production), "prod":
		return WithProduction(service)
	case string(environment.Staging), "stage":
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

func environmentPreset(env environment.Environment, f Format, lvl slog.Level, service string) Option {
	if service == "" {
		return noop()
	}
	return func(c *config) {
		c.format = f
		c.level = lvl
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a slog.Logger from the options. Without options it logs JSON at
// info level to stdout. Context extractors run per log call so
// request-scoped values stay fresh.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON}
	for _, opt := range opts {
		opt(cfg)
	}

	out := cfg.output
	if out == nil {
		out = os.Stdout
	}
	hopts := cfg.handlerOptions
	if hopts == nil {
		hopts = &slog.HandlerOptions{Level: cfg.level}
	}

	var h slog.Handler
	switch cfg.format {
	case FormatText:
		h = slog.NewTextHandler(out, hopts)
	default:
		h = slog.NewJSONHandler(out, hopts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(&contextHandler{next: h, extractors: cfg.extractors})
}
