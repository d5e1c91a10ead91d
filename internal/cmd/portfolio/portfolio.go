// Package portfolio parses portfolio command flags and starts the page service.
package portfolio

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	server "github.com/louisbranch/portfolio/internal/services/portfolio"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
)

// Config holds portfolio command configuration.
type Config struct {
	HTTPAddr      string `env:"PORTFOLIO_HTTP_ADDR"      envDefault:"localhost:8080"`
	ProfilePath   string `env:"PORTFOLIO_PROFILE_PATH"`
	ContactEmail  string `env:"PORTFOLIO_CONTACT_EMAIL"`
	ResumeURL     string `env:"PORTFOLIO_RESUME_URL"`
	DefaultLocale string `env:"PORTFOLIO_DEFAULT_LOCALE" envDefault:"pt-BR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "path to a YAML profile; empty uses the built-in content")
	fs.StringVar(&cfg.ContactEmail, "contact-email", cfg.ContactEmail, "contact email override")
	fs.StringVar(&cfg.ResumeURL, "resume-url", cfg.ResumeURL, "resume link override")
	fs.StringVar(&cfg.DefaultLocale, "default-locale", cfg.DefaultLocale, "locale used when Accept-Language has no match")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadProfile reads the configured profile and applies overrides.
func (c Config) LoadProfile() (profile.Profile, error) {
	p, err := profile.LoadOrDefault(c.ProfilePath)
	if err != nil {
		return profile.Profile{}, err
	}
	return p.WithOverrides(profile.Overrides{
		ContactEmail: c.ContactEmail,
		ResumeURL:    c.ResumeURL,
	}), nil
}

// Run builds the portfolio server and serves until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortfolio, func(ctx context.Context) error {
		p, err := cfg.LoadProfile()
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:      cfg.HTTPAddr,
			Profile:       p,
			DefaultLocale: cfg.DefaultLocale,
		})
		if err != nil {
			return fmt.Errorf("init portfolio server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve portfolio: %w", err)
		}
		return nil
	})
}
