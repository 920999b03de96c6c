package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/docgen"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"article-api/internal/config"
	hhttp "article-api/internal/handler/http"
	"article-api/internal/infra/adapter/persistence/memory"
	pgRepo "article-api/internal/infra/adapter/persistence/postgres"
	"article-api/internal/infra/db"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/tracing"
	"article-api/internal/repository"
	"article-api/internal/resilience/circuitbreaker"
	artUC "article-api/internal/usecase/article"

	_ "article-api/docs" // swagger docs
)

// @title           Article API
// @version         1.0
// @description     記事 (Article) の作成・取得・更新・削除を提供する REST API
// @description     更新は POST /articles/{id} で行います。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

var routes = flag.Bool("routes", false, "print the route documentation as markdown and exit")

func main() {
	flag.Parse()

	if *routes {
		printRoutes()
		return
	}

	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// printRoutes renders the router against an in-memory store; no configuration is read.
func printRoutes() {
	store := memory.NewArticleRepo()
	r := hhttp.NewRouter(hhttp.RouterConfig{
		Logger:  slog.Default(),
		Service: &artUC.Service{Repo: store},
		Store:   store,
	})
	fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "article-api",
		Intro:       "Article API の生成済みルート一覧",
	}))
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Environment:    cfg.Service.Env,
		Enabled:        cfg.Tracing.Enabled,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.close(logger)

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	handler := hhttp.NewRouter(hhttp.RouterConfig{
		Logger:       logger,
		Service:      &artUC.Service{Repo: st.repo},
		Store:        st.pinger,
		DB:           st.db,
		Driver:       cfg.Database.Driver,
		Version:      cfg.Service.Version,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		RateLimiter:  limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout, // Prevent Slowloris attacks
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Service.Version),
			slog.String("driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		// 親 ctx はキャンセル済みなので新しい ctx で待つ
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// store bundles the repository handed to the use case with what the
// health endpoints and shutdown need.
type store struct {
	repo   repository.ArticleRepository
	pinger hhttp.Pinger
	db     *sql.DB
}

func (s store) close(logger *slog.Logger) {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// openStore builds the configured article store. The postgres store gets its
// table created if missing and, unless disabled, a circuit breaker in front.
// Health checks ping the database directly so they bypass the breaker.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory article store; data is lost on restart")
		repo := memory.NewArticleRepo()
		return store{repo: repo, pinger: repo}, nil
	}

	database, err := db.Open(ctx, cfg, logger)
	if err != nil {
		return store{}, err
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		_ = database.Close()
		return store{}, err
	}

	pg := pgRepo.NewArticleRepo(database)
	st := store{repo: pg, pinger: pg, db: database}
	if cfg.CircuitBreaker {
		st.repo = circuitbreaker.NewRepository(pg, circuitbreaker.StoreConfig())
		logger.Info("article store circuit breaker enabled")
	}
	return st, nil
}
