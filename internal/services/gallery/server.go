// Package gallery hosts the browser-facing portfolio gallery service.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.gallery/internal/platform/timeouts"
	galleryapp "github.com/louisbranch/portfolio.gallery/internal/services/gallery/app"
	module "github.com/louisbranch/portfolio.gallery/internal/services/gallery/module"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/modules"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/observability"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
	gallerystatic "github.com/louisbranch/portfolio.gallery/internal/services/gallery/static"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
)

// Config defines startup inputs for the gallery service.
type Config struct {
	HTTPAddr string
	Projects storage.ProjectReader
	Skills   []string
}

// Server hosts the gallery HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Projects == nil {
		return nil, errors.New("project provider is required")
	}
	deps := module.Dependencies{
		Projects: cfg.Projects,
		Skills:   cfg.Skills,
	}
	h, err := galleryapp.Composer{}.Compose(galleryapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(gallerystatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(log.Default()),
		httpx.Compress(),
	), nil
}

// NewServer validates config and constructs a gallery server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose gallery handler: %w", err)
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

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or
// server stop.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	log.Printf("gallery listening on %s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gallery http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
