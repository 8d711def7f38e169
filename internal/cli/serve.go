package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gridwright/gridwright/internal/config"
	"github.com/gridwright/gridwright/internal/server"
	"github.com/gridwright/gridwright/pkg/cache"
)

// newServeCmd creates the serve command for running the puzzle HTTP server.
// All settings come from GRIDWRIGHT_-prefixed environment variables; see
// [config.Config].
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle generation HTTP server",
		Long: `Run the puzzle generation HTTP server.

Configuration is read from the environment:
  GRIDWRIGHT_HTTP_ADDR   listen address (default :8080)
  GRIDWRIGHT_MONGO_URI   MongoDB URI for puzzle storage (in-memory if empty)
  GRIDWRIGHT_MONGO_DB    MongoDB database name (default gridwright)
  GRIDWRIGHT_REDIS_ADDR  Redis address for the generation cache
  GRIDWRIGHT_CACHE_DIR   file cache directory (used when Redis is not set)
  GRIDWRIGHT_CACHE_TTL   cache entry lifetime (default 168h)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	gencache, err := openServerCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer gencache.Close()

	srv := server.New(cfg.HTTPAddr, logger, store, gencache, cfg.CacheTTL)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return srv.Shutdown(context.Background())
	}
}

// openStore selects the puzzle store backend: MongoDB when a URI is
// configured, in-memory otherwise.
func openStore(ctx context.Context, cfg *config.Config) (server.Store, error) {
	logger := loggerFromContext(ctx)

	if cfg.MongoURI == "" {
		logger.Info("using in-memory puzzle store")
		return server.NewMemoryStore(), nil
	}
	logger.Info("using mongodb puzzle store", "db", cfg.MongoDB)
	return server.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
}

// openServerCache selects the generation cache backend: Redis when an
// address is configured, the file cache when a directory is, and no caching
// otherwise.
func openServerCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	logger := loggerFromContext(ctx)

	switch {
	case cfg.RedisAddr != "":
		logger.Info("using redis generation cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case cfg.CacheDir != "":
		logger.Info("using file generation cache", "dir", cfg.CacheDir)
		return cache.NewFileCache(cfg.CacheDir)
	default:
		logger.Info("generation cache disabled")
		return cache.NewNullCache(), nil
	}
}
