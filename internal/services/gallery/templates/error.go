package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

const (
	errorNotFoundTitleKey = "gallery.error.not_found.title"
	errorNotFoundBodyKey  = "gallery.error.not_found.body"
	errorServerTitleKey   = "gallery.error.server.title"
	errorServerBodyKey    = "gallery.error.server.body"
)

// ErrorTitle returns the localized heading for an error status.
func ErrorTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorNotFoundTitleKey)
	}
	return T(loc, errorServerTitleKey)
}

func errorBody(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorNotFoundBodyKey)
	}
	return T(loc, errorServerBodyKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorState renders a not-found or server error panel.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<section class=\"error-state\"")
		h.intAttr("data-status", normalizeErrorStatus(statusCode))
		h.raw("><h1>")
		h.text(ErrorTitle(statusCode, loc))
		h.raw("</h1><p>")
		h.text(errorBody(statusCode, loc))
		h.raw("</p><p><a class=\"button\"")
		h.url("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, detailBackKey))
		h.raw("</a></p></section>")
		return h.err
	})
}
