package modules

import "github.com/louisbranch/portfolio.gallery/internal/services/gallery/modules/portfolios"

// DefaultModules returns the stable gallery modules.
func DefaultModules() []Module {
	return []Module{
		portfolios.New(),
		portfolios.NewAPI(),
	}
}
