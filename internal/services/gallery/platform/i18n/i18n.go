// Package i18n resolves the request language and message printer for gallery
// handlers.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/portfolio.gallery/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "pg_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	supported = catalog.Default().Tags()
	matcher   = language.NewMatcher(supported)
)

// Supported returns the languages with registered catalogs, base locale first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the base locale tag.
func Default() language.Tag {
	return supported[0]
}

// ParseTag matches value against the supported languages.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the lang query param should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if value := r.URL.Query().Get(LangParam); strings.TrimSpace(value) != "" {
		if tag, ok := ParseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns the request printer and language string, updating
// the language cookie when the lang query param selected a language.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return message.NewPrinter(tag), tag.String()
}
