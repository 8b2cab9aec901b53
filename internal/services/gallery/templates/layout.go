// Package templates renders gallery pages as templ components.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

const (
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"
	stylesheetURL = routepath.StaticPrefix + "gallery.css"

	appNameKey         = "gallery.app_name"
	metaDescriptionKey = "gallery.meta_description"
	navPortfoliosKey   = "gallery.nav.portfolios"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang string
	Loc  Localizer
	// Title is the page-specific title without the app name suffix.
	Title string
}

func (p PageContext) appName() string {
	return T(p.Loc, appNameKey)
}

func (p PageContext) lang() string {
	if lang := strings.TrimSpace(p.Lang); lang != "" {
		return lang
	}
	return "en-US"
}

// ComposePageTitle appends the app name unless the title already carries it.
func ComposePageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	switch {
	case appName == "":
		return title
	case title == "" || title == appName:
		return appName
	case strings.HasSuffix(title, " | "+appName):
		return title
	default:
		return title + " | " + appName
	}
}

// Layout renders the full document shell around the context children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<!doctype html><html")
		h.attr("lang", page.lang())
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(ComposePageTitle(page.Title, page.appName()))
		h.raw("</title><meta name=\"description\"")
		h.attr("content", T(page.Loc, metaDescriptionKey))
		h.raw("><link rel=\"stylesheet\"")
		h.url("href", stylesheetURL)
		h.raw("><script defer")
		h.attr("src", htmxScriptURL)
		h.raw("></script></head><body>")
		h.render(ctx, Header(page))
		h.raw("<main id=\"main\" class=\"container\">")
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main></body></html>")
		return h.err
	})
}

// Header renders the site header with the brand link.
func Header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<header class=\"site-header\"><nav class=\"container\"><a class=\"brand\"")
		h.url("href", routepath.Root)
		h.raw(">")
		h.text(page.appName())
		h.raw("</a><a class=\"nav-link\"")
		h.url("href", routepath.Root)
		h.raw(">")
		h.text(T(page.Loc, navPortfoliosKey))
		h.raw("</a></nav></header>")
		return h.err
	})
}
