// Package module defines the gallery module contract mounted by the composer.
package module

import (
	"net/http"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
)

// Dependencies carries shared runtime inputs for module mounting.
type Dependencies struct {
	// Projects supplies the ordered project collection.
	Projects storage.ProjectReader
	// Skills are the filter options offered on the listing.
	Skills []string
}

// Mount is one module's root prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is an independently mountable route group.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
