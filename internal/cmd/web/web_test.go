package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.ContentPath != "" {
		t.Fatalf("ContentPath = %q, want empty", cfg.ContentPath)
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-content", "/srv/portfolio/content.yaml",
		"-db", "/srv/portfolio/site.db",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.ContentPath != "/srv/portfolio/content.yaml" {
		t.Fatalf("ContentPath = %q, want %q", cfg.ContentPath, "/srv/portfolio/content.yaml")
	}
	if cfg.DBPath != "/srv/portfolio/site.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/srv/portfolio/site.db")
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_HTTP_ADDR", "0.0.0.0:9100")
	t.Setenv("PORTFOLIO_VISITOR_KEY", "env-key")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9100")
	}
	if cfg.VisitorKey != "env-key" {
		t.Fatalf("VisitorKey = %q, want %q", cfg.VisitorKey, "env-key")
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_HTTP_ADDR", "0.0.0.0:9100")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}
