package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"incubator/pkg/analytics"
	"incubator/pkg/catalog"
	"incubator/pkg/chat"
	"incubator/pkg/config"
	"incubator/pkg/db"
	"incubator/pkg/events"
	"incubator/pkg/logging"
	"incubator/pkg/middleware"
	"incubator/pkg/sendemail"
	"incubator/pkg/site"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.LogLevel)
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log *logging.Logger) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	d := deps{cfg: cfg, log: log, checks: map[string]site.Check{}}

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = db.Connect(ctx, db.PoolOptions{
			URL:             cfg.DatabaseURL,
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnIdleTime: cfg.DBMaxIdleTime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.ApplySchema {
			if err := db.ApplySchema(ctx, pool, cfg.SchemaPath); err != nil {
				return err
			}
		}
		d.rsvps = events.NewPostgresRSVPRepository(pool)
		d.checks["postgres"] = func(ctx context.Context) error { return pool.Ping(ctx) }
	} else {
		log.Warn("DATABASE_URL not set; event RSVPs are disabled")
	}

	store, err := catalog.Open(ctx, catalogLoader(cfg, pool))
	if err != nil {
		return err
	}
	d.store = store
	d.checks["catalog"] = func(context.Context) error {
		if store.Snapshot() == nil {
			return errors.New("catalog not loaded")
		}
		return nil
	}
	log.Info("catalog loaded", "source", cfg.CatalogSource, "version", store.Snapshot().Version)

	if cfg.CatalogSource == config.CatalogDir {
		w, err := catalog.NewWatcher(cfg.CatalogDir, store, log)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	d.mail = sendemail.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.SenderEmail, cfg.SendGrid.SenderName)

	backend, err := buildResponder(ctx, cfg, log, &d)
	if err != nil {
		return err
	}
	d.sessions = chat.NewConnectionManager()
	defer d.sessions.CloseAll()

	astore, closeStore, err := analyticsStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	d.tracker = analytics.NewTracker(astore, log)
	d.tracker.TrackChatbotInitialized(ctx, backend)

	d.limiter = middleware.NewClientLimiter(cfg.Chat.RatePerSecond, cfg.Chat.Burst)
	srv := newHTTPServer(cfg, newRouter(d))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.limiter.RunJanitor(gctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		log.Info("listening", "addr", srv.Addr, "tls", cfg.TLS.EnableTLS)
		if err := listen(srv, cfg.TLS); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		d.sessions.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func listen(srv *http.Server, settings config.TLSSettings) error {
	if !settings.EnableTLS {
		return srv.ListenAndServe()
	}
	tlsConfig, err := settings.BuildTLSConfig()
	if err != nil {
		return fmt.Errorf("TLS setup: %w", err)
	}
	srv.TLSConfig = tlsConfig
	return srv.ListenAndServeTLS("", "")
}

func catalogLoader(cfg config.Config, pool *pgxpool.Pool) catalog.Loader {
	switch cfg.CatalogSource {
	case config.CatalogDir:
		return catalog.DirLoader(cfg.CatalogDir)
	case config.CatalogPostgres:
		return catalog.NewPostgresLoader(pool)
	default:
		return catalog.EmbeddedLoader()
	}
}

// buildResponder picks Gemini when a key is configured, with the keyword
// dictionary as its fallback. It returns the backend name.
func buildResponder(ctx context.Context, cfg config.Config, log *logging.Logger, d *deps) (string, error) {
	dict, err := chat.LoadDictionary(cfg.Chat.DictionaryPath)
	if err != nil {
		return "", err
	}
	keyword := chat.NewKeywordResponder(dict, cfg.Chat.BaseDelay, cfg.Chat.Jitter)
	d.responder = keyword

	if cfg.Chat.GeminiAPIKey == "" {
		return "keyword", nil
	}
	gemini, err := chat.NewGeminiResponder(ctx, cfg.Chat.GeminiAPIKey, cfg.Chat.GeminiModel, keyword, log)
	if err != nil {
		log.Warn("gemini unavailable, using keyword responder", "error", err)
		return "keyword", nil
	}
	d.responder = gemini
	return "gemini", nil
}

func analyticsStore(ctx context.Context, cfg config.Config) (analytics.Store, func(), error) {
	if cfg.AnalyticsDBPath == "" {
		return analytics.NewMemoryStore(cfg.AnalyticsCap), func() {}, nil
	}
	s, err := analytics.OpenSQLiteStore(ctx, cfg.AnalyticsDBPath, cfg.AnalyticsCap)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}
