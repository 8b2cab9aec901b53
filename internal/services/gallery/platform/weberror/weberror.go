// Package weberror renders shared error responses for gallery modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/errors"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/httpx"
	galleryi18n "github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/pagerender"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc galleryi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteErrorPage writes a localized error page for full-page and HTMX requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := galleryi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      templates.ErrorTitle(statusCode, loc),
		Lang:       lang,
		Loc:        loc,
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		log.Printf("render error page status=%d: %v", statusCode, err)
	}
}

// WriteError maps err to a status and writes the matching response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("request failed path=%s status=%d: %v", requestPath(r), statusCode, err)
	}
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode)
		return
	}
	loc, _ := galleryi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// WriteJSONError maps err to a status and writes a JSON error body.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("request failed path=%s status=%d: %v", requestPath(r), statusCode, err)
	}
	loc, _ := galleryi18n.ResolveLocalizer(w, r)
	_ = httpx.WriteJSONError(w, statusCode, PublicMessage(loc, err))
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
