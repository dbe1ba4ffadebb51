package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hrkit/modules/intake"
	"github.com/dmitrymomot/hrkit/pkg/clientip"
	"github.com/dmitrymomot/hrkit/pkg/config"
	"github.com/dmitrymomot/hrkit/pkg/environment"
	"github.com/dmitrymomot/hrkit/pkg/file"
	"github.com/dmitrymomot/hrkit/pkg/httpserver"
	"github.com/dmitrymomot/hrkit/pkg/logger"
	"github.com/dmitrymomot/hrkit/pkg/mongo"
	"github.com/dmitrymomot/hrkit/pkg/ocr"
	"github.com/dmitrymomot/hrkit/pkg/opensearch"
	"github.com/dmitrymomot/hrkit/pkg/pg"
	"github.com/dmitrymomot/hrkit/pkg/ratelimit"
	"github.com/dmitrymomot/hrkit/pkg/redis"
	"github.com/dmitrymomot/hrkit/pkg/requestid"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var intakeCfg intake.Config
	if err := config.Load(&intakeCfg); err != nil {
		return fmt.Errorf("load intake config: %w", err)
	}

	var ocrCfg ocr.Config
	if err := config.Load(&ocrCfg); err != nil {
		return fmt.Errorf("load ocr config: %w", err)
	}
	extractor := ocr.New(ocrCfg, ocr.WithLogger(log))

	var structurerCfg intake.StructurerConfig
	if err := config.Load(&structurerCfg); err != nil {
		return fmt.Errorf("load structurer config: %w", err)
	}
	structurer := intake.NewOpenAIStructurer(structurerCfg)

	var checks []func(context.Context) error

	var repo intake.Repository
	switch cfg.StorageDriver {
	case "mongo":
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return fmt.Errorf("load mongo config: %w", err)
		}
		client, err := mongo.New(ctx, mongoCfg)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		repo = intake.NewMongoRepository(client.Database(mongoCfg.Database))
		checks = append(checks, mongo.Healthcheck(client))
	case "postgres":
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return fmt.Errorf("load postgres config: %w", err)
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		if err := pg.Migrate(ctx, pool, intake.Migrations, pgCfg, log); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		repo = intake.NewPostgresRepository(pool)
		checks = append(checks, pg.Healthcheck(pool))
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	log.InfoContext(ctx, "document storage ready", logger.Driver(cfg.StorageDriver))

	opts := []intake.ServiceOption{intake.WithLogger(log)}

	switch cfg.CacheDriver {
	case "redis":
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return fmt.Errorf("load redis config: %w", err)
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, intake.WithCache(intake.NewRedisCache(client, intakeCfg.CacheTTL)))
		checks = append(checks, redis.Healthcheck(client))
	case "memory":
		opts = append(opts, intake.WithCache(intake.NewMemoryCache(cfg.CacheCapacity, intakeCfg.CacheTTL)))
	case "none":
	default:
		return fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
	}

	if cfg.SearchEnabled {
		var searchCfg opensearch.Config
		if err := config.Load(&searchCfg); err != nil {
			return fmt.Errorf("load opensearch config: %w", err)
		}
		client, err := opensearch.New(ctx, searchCfg)
		if err != nil {
			return fmt.Errorf("connect opensearch: %w", err)
		}
		opts = append(opts, intake.WithIndexer(intake.NewSearchIndexer(client, intakeCfg.SearchIndex)))
		checks = append(checks, opensearch.Healthcheck(client))
	}

	archive, err := newArchive(ctx)
	if err != nil {
		return err
	}
	if archive != nil {
		opts = append(opts, intake.WithArchive(archive))
	}

	svc := intake.NewService(intakeCfg, extractor, structurer, repo, opts...)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, environment.Middleware(environment.Environment(cfg.Environment)))
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, checks...))

	api := svc.Handle()
	if cfg.RateLimitRequests > 0 {
		store := ratelimit.NewMemoryStore()
		defer func() { _ = store.Close() }()
		limiter, err := ratelimit.NewSlidingWindow(store, cfg.RateLimitRequests, cfg.RateLimitWindow)
		if err != nil {
			return fmt.Errorf("init rate limiter: %w", err)
		}
		api = ratelimit.Middleware(limiter, ratelimit.ByClientIP())(api)
	}
	r.Mount("/api/v1", api)

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return fmt.Errorf("load http server config: %w", err)
	}
	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

// newArchive builds the upload archive from the environment, or returns nil
// when archiving is disabled.
func newArchive(ctx context.Context) (intake.Archive, error) {
	var cfg archiveConfig
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load archive config: %w", err)
	}

	switch cfg.Driver {
	case "none":
		return nil, nil
	case "local":
		storage, err := file.NewLocalStorage(cfg.Dir, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("init local archive: %w", err)
		}
		return storage, nil
	case "s3":
		storage, err := file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			BaseURL:        cfg.S3BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("init s3 archive: %w", err)
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown archive driver %q", cfg.Driver)
	}
}
