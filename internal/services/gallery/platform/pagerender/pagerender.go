// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	Lang       string
	Loc        templates.Localizer
	StatusCode int
	// Fragment is the main content rendered inside the layout.
	Fragment templ.Component
	// Partial, when set, replaces Fragment for HTMX requests so only the
	// swapped region is sent.
	Partial templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes the page as a full document, or as a bare fragment when
// the request came from HTMX.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	httpx.AddVary(w.Header(), "HX-Request")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		if page.Partial != nil {
			return page.Partial.Render(ctx, w)
		}
		return fragment.Render(ctx, w)
	}

	w.WriteHeader(statusCode)
	layout := templates.Layout(templates.PageContext{Lang: page.Lang, Loc: page.Loc, Title: page.Title})
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}
