package portfolios

import (
	"net/http"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/httpx"
	galleryi18n "github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/pagerender"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/platform/weberror"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func selectedSkills(r *http.Request) []string {
	return r.URL.Query()[routepath.SkillQueryParam]
}

func (h handlers) handleListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.listing(r.Context(), selectedSkills(r))
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	loc, lang := galleryi18n.ResolveLocalizer(w, r)
	if err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    templates.ListingTitle(loc),
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.ListingPage(listing, loc),
		Partial:  templates.CardGrid(listing, loc),
	}); err != nil {
		weberror.WriteError(w, r, err)
	}
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.detail(r.Context(), r.PathValue("projectID"))
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	loc, lang := galleryi18n.ResolveLocalizer(w, r)
	if err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    detail.Card.Title,
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.ProjectDetail(detail, loc),
	}); err != nil {
		weberror.WriteError(w, r, err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound)
}

func (h handlers) handleAPIListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.listing(r.Context(), selectedSkills(r))
	if err != nil {
		weberror.WriteJSONError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, listing)
}

func (h handlers) handleAPINotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
