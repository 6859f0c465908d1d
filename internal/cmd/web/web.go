// Package web wires configuration and startup for the portfolio site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Maze77-AH/portfolio/internal/content"
	"github.com/Maze77-AH/portfolio/internal/platform/config"
	"github.com/Maze77-AH/portfolio/internal/platform/otel"
	"github.com/Maze77-AH/portfolio/internal/services/site"
	"github.com/Maze77-AH/portfolio/internal/services/site/storage/sqlite"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the web command configuration. ContentPath, DBPath, and
// VisitorKey are optional; leaving them empty serves the embedded content
// with cookie-only preferences.
type Config struct {
	HTTPAddr    string `env:"PORTFOLIO_HTTP_ADDR"`
	ContentPath string `env:"PORTFOLIO_CONTENT_PATH"`
	DBPath      string `env:"PORTFOLIO_DB_PATH"`
	VisitorKey  string `env:"PORTFOLIO_VISITOR_KEY"`
}

// ParseConfig reads environment defaults and parses flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{HTTPAddr: defaultHTTPAddr}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "content file path (embedded content when empty)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path (no persistence when empty)")
	fs.StringVar(&cfg.VisitorKey, "visitor-key", cfg.VisitorKey, "visitor token signing key (visitor cookie disabled when empty)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio site server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "portfolio-site")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	doc, err := loadDocument(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	handlerCfg := site.HandlerConfig{
		Document: doc,
		Visitors: site.NewVisitors([]byte(cfg.VisitorKey), nil),
	}

	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			// Preferences degrade to cookie-only; the page must still serve.
			log.Printf("open preference store path=%s err=%v", cfg.DBPath, err)
		} else {
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close preference store: %v", err)
				}
			}()
			handlerCfg.Preferences = store
			handlerCfg.SectionViews = store
		}
	}

	handler := site.NewHandler(handlerCfg)

	if cfg.ContentPath != "" {
		// Live edits degrade to a restart requirement when the watcher
		// cannot be installed.
		if err := content.Watch(ctx, cfg.ContentPath, 0, handler.SetDocument); err != nil {
			log.Printf("watch content path=%s err=%v", cfg.ContentPath, err)
		}
	}

	server, err := site.NewServer(site.Config{
		HTTPAddr: cfg.HTTPAddr,
		Handler:  handler,
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}

func loadDocument(path string) (content.Document, error) {
	if path == "" {
		return content.LoadDefault()
	}
	return content.Load(path)
}
