// Package portfolio hosts the portfolio page service.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio/internal/platform/icons"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
	portfoliostatic "github.com/louisbranch/portfolio/internal/services/portfolio/static"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
)

const tracerName = "github.com/louisbranch/portfolio/internal/services/portfolio"

// Config defines startup inputs for the portfolio service.
type Config struct {
	HTTPAddr      string
	Profile       profile.Profile
	DefaultLocale string
	// Glyphs is the icon set; nil uses the built-in Lucide subset.
	Glyphs icons.GlyphSet
	// Catalog holds the page copy; nil uses the embedded catalogs.
	Catalog *catalog.Bundle
	Logger  *log.Logger
}

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler.
func NewHandler(cfg Config) (http.Handler, error) {
	bundle := cfg.Catalog
	if bundle == nil {
		loaded, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load locale catalogs: %w", err)
		}
		bundle = loaded
	}
	glyphs := cfg.Glyphs
	if glyphs == nil {
		glyphs = icons.Lucide()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	pages := NewPages(cfg.Profile, bundle, glyphs, cfg.DefaultLocale)

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" /{$}", func(w http.ResponseWriter, r *http.Request) {
		view := pages.ViewForRequest(r)
		writeLocaleHeaders(w, view.Lang)
		if err := pagerender.WritePage(w, r, http.StatusOK, templates.FullPage(view)); err != nil {
			logger.Printf("render page: %v", err)
		}
	})
	mux.HandleFunc(http.MethodGet+" /smoke", func(w http.ResponseWriter, r *http.Request) {
		view := pages.ViewForRequest(r)
		writeLocaleHeaders(w, view.Lang)
		if err := pagerender.WritePage(w, r, http.StatusOK, templates.Document(view, templates.SmokeMount(view))); err != nil {
			logger.Printf("render smoke mount: %v", err)
		}
	})
	mux.HandleFunc(http.MethodGet+" /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	mux.Handle(http.MethodGet+" /static/", http.StripPrefix("/static/", http.FileServer(http.FS(portfoliostatic.Files()))))

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Trace(tracerName),
		httpx.RequestLogger(logger),
	), nil
}

func writeLocaleHeaders(w http.ResponseWriter, lang string) {
	w.Header().Add("Vary", "Accept-Language")
	if lang != "" {
		w.Header().Set("Content-Language", lang)
	}
}

// NewServer validates config and constructs a portfolio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portfolio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portfolio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("portfolio listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown portfolio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portfolio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
