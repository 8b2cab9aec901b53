package portfolios

import (
	"net/http"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleListing)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{projectID}", h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}

func registerAPIRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProjects, h.handleAPIListing)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPrefix+"{rest...}", h.handleAPINotFound)
}
