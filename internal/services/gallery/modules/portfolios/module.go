// Package portfolios serves the portfolio listing, project detail pages and
// the JSON card endpoint.
package portfolios

import (
	"net/http"

	module "github.com/louisbranch/portfolio.gallery/internal/services/gallery/module"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

// Module provides the browser-facing portfolio routes.
type Module struct{}

// New returns the portfolios module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "portfolios" }

// Mount wires listing and detail route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(deps))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

// APIModule provides the JSON card routes.
type APIModule struct{}

// NewAPI returns the JSON portfolios module.
func NewAPI() APIModule { return APIModule{} }

// ID returns a stable module identifier.
func (APIModule) ID() string { return "portfolios-api" }

// Mount wires JSON route handlers.
func (APIModule) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(deps))
	registerAPIRoutes(mux, h)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
