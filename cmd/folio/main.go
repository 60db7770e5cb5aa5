// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/mkessler/folio-go/internal/config"
	"github.com/mkessler/folio-go/internal/content"
	"github.com/mkessler/folio-go/internal/guard"
	"github.com/mkessler/folio-go/internal/handler"
	"github.com/mkessler/folio-go/internal/i18n"
	"github.com/mkessler/folio-go/internal/mailer"
	"github.com/mkessler/folio-go/internal/middleware"
	"github.com/mkessler/folio-go/internal/render"
	"github.com/mkessler/folio-go/internal/version"
	"github.com/mkessler/folio-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "folio - Personal portfolio and blog\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SITE_URL               Public site URL (default: http://localhost:3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_PORT            Server port (default: 3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ENV                    Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_CONTENT_DIR            Markdown content directory (default: ./content)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_CONTACT_MAX_REQUESTS   Contact submissions per window (default: 5)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_CONTACT_WINDOW_MINUTES Contact rate limit window (default: 60)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ROBOTS_DISALLOW_ALL    Block all crawlers, for staging (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n system initialized", "locales", i18n.SupportedLocales)

	store := content.NewStore(cfg.ContentDir, logger)

	// Submission guard with its background sweeper
	contactGuard := guard.New(cfg.ContactMaxRequests, cfg.ContactWindow(), logger)
	if err := contactGuard.StartSweeper(); err != nil {
		return fmt.Errorf("starting guard sweeper: %w", err)
	}
	defer contactGuard.Stop()

	contactMailer := mailer.NewLogMailer(logger)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("templates sub FS: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		SiteName:    cfg.SiteName,
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	frontendHandler := handler.NewFrontendHandler(cfg, store, renderer, logger)
	contactHandler := handler.NewContactHandler(contactGuard, contactMailer, logger)
	seoHandler := handler.NewSEOHandler(cfg, store, logger)
	healthHandler := handler.NewHealthHandler(cfg.ContentDir, appVersion)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5)) // Gzip compression with level 5
	r.Use(chimw.GetHead)     // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static sub FS: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	// Site-wide SEO endpoints
	r.Get("/sitemap.xml", seoHandler.Sitemap)
	r.Get("/robots.txt", seoHandler.Robots)

	// Contact API behind a global limiter on top of the per-address guard
	apiLimiter := middleware.NewGlobalRateLimiter(1, 5)
	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware())
		r.Use(middleware.Locale(cfg.DefaultLocale))
		r.Post("/contact", contactHandler.Submit)
	})

	// Unprefixed root redirects to the negotiated locale
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		locale := i18n.MatchLanguage(req.Header.Get("Accept-Language"))
		http.Redirect(w, req, "/"+locale, http.StatusFound)
	})

	// Locale-prefixed site pages
	r.Route("/{lang:[a-z]{2}}", func(r chi.Router) {
		r.Use(middleware.RequireSupportedLocale)
		r.Use(middleware.Locale(cfg.DefaultLocale))
		r.Get("/", frontendHandler.Home)
		r.Get("/about", frontendHandler.About)
		r.Get("/portfolio", frontendHandler.Portfolio)
		r.Get("/portfolio/{slug}", frontendHandler.PortfolioProject)
		r.Get("/blog", frontendHandler.Blog)
		r.Get("/blog/{slug}", frontendHandler.BlogPost)
		r.Get("/contact", frontendHandler.ContactPage)
		r.Get("/feed.xml", seoHandler.Feed)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		frontendHandler.NotFound(w, req)
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second, // Reduced from 120s to mitigate slowloris attacks
		MaxHeaderBytes:    1 << 20,          // 1MB max header size
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
