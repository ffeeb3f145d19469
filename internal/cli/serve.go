package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/d0sboots/maze-project/pkg/cache"
	"github.com/d0sboots/maze-project/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	mongoURI      string
	mongoDB       string
	namespace     string
	cacheTTLMin   int
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:          c.Config.Server.Addr,
		redisAddr:     c.Config.Server.RedisAddr,
		redisPassword: c.Config.Server.RedisPassword,
		redisDB:       c.Config.Server.RedisDB,
		mongoURI:      c.Config.Server.MongoURI,
		mongoDB:       c.Config.Server.MongoDB,
		namespace:     c.Config.Server.Namespace,
		cacheTTLMin:   c.Config.Server.CacheTTLMin,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP maze service",
		Long: `Serve mazes over HTTP.

Endpoints:
  GET    /maze                 generate and render a maze in one request
  POST   /mazes                generate and persist a maze
  GET    /mazes                list stored mazes
  GET    /mazes/{id}           fetch a stored maze
  GET    /mazes/{id}/render    render a stored maze in any format
  DELETE /mazes/{id}           delete a stored maze
  GET    /healthz              liveness probe

Without --redis-addr artifacts are not cached; without --mongo-uri mazes
are stored in memory and lost on restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis address for the artifact cache")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", opts.redisPassword, "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", opts.redisDB, "Redis database number")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB URI for the maze store")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.namespace, "namespace", opts.namespace, "cache key namespace")
	cmd.Flags().IntVar(&opts.cacheTTLMin, "cache-ttl-minutes", opts.cacheTTLMin, "artifact cache TTL in minutes")

	return cmd
}

// runServe wires the cache and store backends, starts the HTTP server and
// shuts it down cleanly when the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	artifacts, err := newServeCache(ctx, logger, opts)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	mazes, err := newServeStore(ctx, logger, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mazes.Close(closeCtx); err != nil {
			logger.Warnf("Closing store: %v", err)
		}
	}()

	keyer := cache.NewScopedKeyer(nil, opts.namespace)
	ttl := time.Duration(opts.cacheTTLMin) * time.Minute
	srv := newServer(logger, artifacts, keyer, mazes, ttl)

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newServeCache(ctx context.Context, logger *log.Logger, opts *serveOpts) (cache.Cache, error) {
	if opts.redisAddr == "" {
		logger.Info("No Redis configured, artifact caching disabled")
		return cache.NewNullCache(), nil
	}
	logger.Infof("Using Redis cache at %s", opts.redisAddr)
	return cache.NewRedisCache(ctx, opts.redisAddr, opts.redisPassword, opts.redisDB)
}

func newServeStore(ctx context.Context, logger *log.Logger, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		logger.Info("No MongoDB configured, storing mazes in memory")
		return store.NewMemoryStore(), nil
	}
	logger.Infof("Using MongoDB store %s/%s", opts.mongoURI, opts.mongoDB)
	return store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB, "mazes")
}
