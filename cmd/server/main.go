package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	specpkg "github.com/whitemassif/website/api"
	"github.com/whitemassif/website/internal/api"
	"github.com/whitemassif/website/internal/api/handler"
	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/audit"
	"github.com/whitemassif/website/internal/auth"
	"github.com/whitemassif/website/internal/blog"
	"github.com/whitemassif/website/internal/clientlogo"
	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/config"
	"github.com/whitemassif/website/internal/database"
	"github.com/whitemassif/website/internal/form"
	"github.com/whitemassif/website/internal/landing"
	"github.com/whitemassif/website/internal/offering"
	"github.com/whitemassif/website/internal/portfolio"
	"github.com/whitemassif/website/internal/seo"
	"github.com/whitemassif/website/internal/sitemap"
	"github.com/whitemassif/website/internal/team"
	"github.com/whitemassif/website/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := cms.New(cfg.CMSURL, cfg.CMSToken,
		cms.WithTimeout(cfg.CMSTimeout),
		cms.WithAssetToken(cfg.CMSAssetToken),
	)

	posts := blog.NewRepository(client)
	services := offering.NewRepository(client)
	landings := landing.NewRepository(client)

	var events audit.Repository = audit.NopRepository{}
	var dbPinger handler.Pinger
	if cfg.DatabaseURL != "" {
		db, err := initDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Warn("audit database unavailable; submissions will not be logged", "error", err)
		} else {
			defer db.Close()
			events = audit.NewRepository(db.Pool())
			dbPinger = db
		}
	}

	var authenticator middleware.Authenticator
	if len(cfg.OperatorKeys) > 0 {
		operators, err := auth.NewStaticRepository(cfg.OperatorKeys)
		if err != nil {
			slog.Error("invalid OPERATOR_KEYS", "error", err)
			os.Exit(1)
		}
		authenticator = auth.NewService(operators, cfg.BcryptCost)
	} else {
		slog.Warn("no operator keys configured; operator API disabled")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("failed to parse page templates", "error", err)
		os.Exit(1)
	}

	cache := sitemap.NewCache(sitemap.NewBuilder(cfg.SiteURL, posts, services, landings))
	if cfg.RevalidateInterval > 0 {
		refresher := sitemap.NewRefresher(cache, time.Duration(cfg.RevalidateInterval)*time.Second)
		go refresher.Start(ctx)
	}

	router := api.NewRouter(api.RouterDeps{
		CMSPinger:     client,
		DBPinger:      dbPinger,
		Version:       cfg.Version,
		OpenAPISpec:   specpkg.OpenAPISpec,
		SiteURL:       cfg.SiteURL,
		Forms:         form.NewService(client, form.WithStrictDedup(cfg.NewsletterDedupStrict)),
		Recorder:      audit.NewRecorder(events),
		Events:        events,
		Sitemap:       cache,
		Authenticator: authenticator,
		Pages: handler.PageDeps{
			Posts:    posts,
			Services: services,
			Team:     team.NewRepository(client),
			Landings: landings,
			Logos:    clientlogo.NewRepository(client),
			Projects: portfolio.NewRepository(client),
			Assets:   client,
			Site:     seo.New(cfg.SiteURL),
			Renderer: renderer,
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting website server", "port", cfg.Port, "version", cfg.Version, "siteUrl", cfg.SiteURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		cancel()
		os.Exit(1)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(logHandler))
}

func initDatabase(ctx context.Context, url string) (*database.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := database.New(connectCtx, url)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(connectCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
