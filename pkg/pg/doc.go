// Package pg provides PostgreSQL connectivity built on pgx: pooled
// connections with startup retries, goose migrations from an embedded
// filesystem, and a ping-based healthcheck.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrationsFS, cfg, log); err != nil {
//		return err
//	}
package pg
