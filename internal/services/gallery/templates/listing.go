package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/view"
)

const (
	// ProjectGridID is the element id HTMX swaps when the filter changes.
	ProjectGridID = "project-grid"

	listingTitleKey   = "gallery.listing.title"
	listingEmptyKey   = "gallery.listing.empty"
	filterButtonKey   = "gallery.filter.button"
	filterLabelKey    = "gallery.filter.label"
	filterApplyKey    = "gallery.filter.apply"
	filterClearKey    = "gallery.filter.clear"
	listingDataKey    = "gallery.listing.data"
	cardDiscussionKey = "gallery.card.discussion"
	cardRatingKey     = "gallery.card.rating"

	coverWidth  = 600
	coverHeight = 400
)

// ListingTitle returns the localized listing heading.
func ListingTitle(loc Localizer) string {
	return T(loc, listingTitleKey)
}

// ListingPage renders the heading, filter control and card grid.
func ListingPage(listing view.Listing, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<section class=\"listing\"><div class=\"listing-header\"><h1>")
		h.text(ListingTitle(loc))
		h.raw("</h1>")
		h.render(ctx, FilterMenu(listing.Filter, loc))
		h.raw("</div>")
		h.render(ctx, CardGrid(listing, loc))
		h.raw("</section>")
		return h.err
	})
}

// FilterMenu renders the skill checkboxes as a GET form. With HTMX loaded the
// form refreshes only the card grid.
func FilterMenu(menu view.FilterMenu, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<details class=\"filter-menu\"")
		if menu.Active() {
			h.raw(" open")
		}
		h.raw("><summary class=\"button button-outline\">")
		h.text(T(loc, filterButtonKey))
		h.raw("</summary><form class=\"filter-form\" method=\"get\"")
		h.url("action", routepath.Root)
		h.attr("hx-get", routepath.Root)
		h.attr("hx-target", "#"+ProjectGridID)
		h.raw(" hx-swap=\"outerHTML\" hx-push-url=\"true\"><fieldset><legend>")
		h.text(T(loc, filterLabelKey))
		h.raw("</legend>")
		for _, option := range menu.Options {
			h.raw("<label class=\"filter-option\"><input type=\"checkbox\"")
			h.attr("name", routepath.SkillQueryParam)
			h.attr("value", option.Label)
			if option.Checked {
				h.raw(" checked")
			}
			h.raw("> ")
			h.text(option.Label)
			h.raw("</label>")
		}
		h.raw("</fieldset><div class=\"filter-actions\"><button type=\"submit\" class=\"button\">")
		h.text(T(loc, filterApplyKey))
		h.raw("</button><a class=\"button button-link\"")
		h.url("href", menu.ClearPath)
		h.raw(">")
		h.text(T(loc, filterClearKey))
		h.raw("</a></div></form></details>")
		return h.err
	})
}

// CardGrid renders one card per entry in order, or the empty state, followed
// by a link to the same selection as JSON.
func CardGrid(listing view.Listing, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div class=\"project-grid\"")
		h.attr("id", ProjectGridID)
		h.raw(">")
		if len(listing.Cards) == 0 {
			h.raw("<p class=\"empty-state\">")
			h.text(T(loc, listingEmptyKey))
			h.raw("</p>")
		}
		for _, card := range listing.Cards {
			h.render(ctx, ProjectCard(card, loc))
		}
		if listing.Filter.DataPath != "" {
			h.raw("<p class=\"grid-data\"><a")
			h.url("href", listing.Filter.DataPath)
			h.raw(">")
			h.text(T(loc, listingDataKey))
			h.raw("</a></p>")
		}
		h.raw("</div>")
		return h.err
	})
}

// ProjectCard renders one project summary linking to its detail page.
func ProjectCard(card view.Card, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<article class=\"project-card\"")
		h.attr("data-project-id", card.ID)
		h.raw("><a class=\"project-card-link\"")
		h.url("href", card.DetailPath)
		h.raw("><img class=\"project-cover\"")
		h.attr("src", card.CoverImageURL)
		h.attr("alt", card.Title)
		h.intAttr("width", coverWidth)
		h.intAttr("height", coverHeight)
		if card.CoverHint != "" {
			h.attr("data-ai-hint", card.CoverHint)
		}
		h.raw(" loading=\"lazy\"><div class=\"project-card-body\"><h2 class=\"project-title\">")
		h.text(card.Title)
		h.raw("</h2>")
		writeOwner(h, card.OwnerName, card.OwnerAvatarURL, card.OwnerInitial)
		writeTags(h, card.Tags)
		h.raw("</div><footer class=\"project-card-footer\"><span class=\"project-rating\"")
		h.attr("title", T(loc, cardRatingKey))
		h.raw("><span class=\"star\" aria-hidden=\"true\">★</span> <span class=\"rating-value\">")
		h.text(card.RatingLabel)
		h.raw("</span> <span class=\"review-count\">")
		h.text(card.ReviewCountLabel())
		h.raw("</span></span><span class=\"project-discussion\"")
		h.attr("title", T(loc, cardDiscussionKey))
		h.raw("><span class=\"discussion-icon\" aria-hidden=\"true\">💬</span> <span class=\"discussion-count\">")
		h.text(strconv.Itoa(card.DiscussionCount))
		h.raw("</span></span></footer></a></article>")
		return h.err
	})
}

// writeOwner renders the avatar and name. The fallback glyph is always present
// so it shows when the image is absent or fails to load.
func writeOwner(h *htmlWriter, name, avatarURL, initial string) {
	h.raw("<div class=\"project-owner\"><span class=\"avatar\">")
	if avatarURL != "" {
		h.raw("<img class=\"avatar-image\"")
		h.attr("src", avatarURL)
		h.attr("alt", name)
		h.raw(" onerror=\"this.remove()\">")
	}
	h.raw("<span class=\"avatar-fallback\" aria-hidden=\"true\">")
	h.text(initial)
	h.raw("</span></span><span class=\"owner-name\">")
	h.text(name)
	h.raw("</span></div>")
}

func writeTags(h *htmlWriter, tags []string) {
	if len(tags) == 0 {
		return
	}
	h.raw("<ul class=\"project-tags\">")
	for _, tag := range tags {
		h.raw("<li class=\"tag\">")
		h.text(tag)
		h.raw("</li>")
	}
	h.raw("</ul>")
}
