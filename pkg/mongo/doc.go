// Package mongo provides a configured MongoDB client for the document store.
//
// New dials the server with pool and retry settings taken from an env-tagged
// Config. Healthcheck exposes a ping suitable for the /health endpoint.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	documents := client.Database(cfg.Database).Collection("documents")
package mongo
