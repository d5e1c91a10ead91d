// Package export renders the portfolio page and its assets into a directory
// for static hosting.
package export

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio/internal/platform/icons"
	server "github.com/louisbranch/portfolio/internal/services/portfolio"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
	portfoliostatic "github.com/louisbranch/portfolio/internal/services/portfolio/static"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
)

const (
	indexFile = "index.html"
	staticDir = "static"
)

// Config holds export command configuration.
type Config struct {
	OutDir       string `env:"PORTFOLIO_EXPORT_DIR"     envDefault:"public"`
	ProfilePath  string `env:"PORTFOLIO_PROFILE_PATH"`
	ContactEmail string `env:"PORTFOLIO_CONTACT_EMAIL"`
	ResumeURL    string `env:"PORTFOLIO_RESUME_URL"`
	Locale       string `env:"PORTFOLIO_DEFAULT_LOCALE" envDefault:"pt-BR"`
	// AssetBase prefixes asset links in the exported page.
	AssetBase string `env:"PORTFOLIO_EXPORT_ASSET_BASE" envDefault:"static"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "path to a YAML profile; empty uses the built-in content")
	fs.StringVar(&cfg.ContactEmail, "contact-email", cfg.ContactEmail, "contact email override")
	fs.StringVar(&cfg.ResumeURL, "resume-url", cfg.ResumeURL, "resume link override")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale of the exported copy")
	fs.StringVar(&cfg.AssetBase, "asset-base", cfg.AssetBase, "URL prefix for exported assets")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the rendered page and the embedded assets under cfg.OutDir.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExport, func(ctx context.Context) error {
		return Export(ctx, cfg)
	})
}

// Export renders without telemetry setup.
func Export(ctx context.Context, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	outDir := strings.TrimSpace(cfg.OutDir)
	if outDir == "" {
		return errors.New("output directory is required")
	}

	p, err := profile.LoadOrDefault(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	p = p.WithOverrides(profile.Overrides{ContactEmail: cfg.ContactEmail, ResumeURL: cfg.ResumeURL})

	bundle, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load locale catalogs: %w", err)
	}
	view := server.NewPages(p, bundle, icons.Lucide(), cfg.Locale).DefaultView()
	view.StylesheetURL = stylesheetURL(cfg.AssetBase)

	var page bytes.Buffer
	if err := templates.FullPage(view).Render(ctx, &page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, indexFile), page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", indexFile, err)
	}
	if err := copyAssets(portfoliostatic.FS, filepath.Join(outDir, staticDir)); err != nil {
		return err
	}
	log.Printf("exported portfolio (%s) to %s", view.Lang, outDir)
	return nil
}

func stylesheetURL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return "portfolio.css"
	}
	return base + "/" + path.Base(templates.DefaultStylesheetURL)
}

func copyAssets(assets fs.FS, dst string) error {
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create asset dir: %w", err)
			}
			return nil
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", name, err)
		}
		return nil
	})
}
