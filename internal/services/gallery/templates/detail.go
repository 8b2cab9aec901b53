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
	detailBackKey      = "gallery.detail.back"
	detailTagsKey      = "gallery.detail.tags"
	detailReviewsKey   = "gallery.detail.reviews"
	detailNoReviewsKey = "gallery.detail.no_reviews"
)

// ProjectDetail renders the full project page: media, owner, every tag and
// the review list.
func ProjectDetail(detail view.Detail, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		card := detail.Card
		h := newHTMLWriter(w)
		h.raw("<article class=\"project-detail\"")
		h.attr("data-project-id", card.ID)
		h.raw("><p><a class=\"back-link\"")
		h.url("href", routepath.Root)
		h.raw(">← ")
		h.text(T(loc, detailBackKey))
		h.raw("</a></p><h1>")
		h.text(card.Title)
		h.raw("</h1>")
		writeOwner(h, card.OwnerName, card.OwnerAvatarURL, card.OwnerInitial)
		h.raw("<div class=\"project-media\">")
		for idx, media := range detail.Media {
			h.raw("<img class=\"project-cover\"")
			h.attr("src", media)
			h.attr("alt", card.Title)
			h.intAttr("width", coverWidth)
			h.intAttr("height", coverHeight)
			if idx == 0 && card.CoverHint != "" {
				h.attr("data-ai-hint", card.CoverHint)
			}
			h.raw(">")
		}
		h.raw("</div><p class=\"project-rating\"><span class=\"star\" aria-hidden=\"true\">★</span> <span class=\"rating-value\">")
		h.text(card.RatingLabel)
		h.raw("</span> <span class=\"review-count\">")
		h.text(card.ReviewCountLabel())
		h.raw("</span></p><h2>")
		h.text(T(loc, detailTagsKey))
		h.raw("</h2>")
		writeTags(h, detail.AllTags)
		h.raw("<h2>")
		h.text(T(loc, detailReviewsKey))
		h.raw("</h2>")
		if len(detail.Reviews) == 0 {
			h.raw("<p class=\"empty-state\">")
			h.text(T(loc, detailNoReviewsKey))
			h.raw("</p>")
		} else {
			h.raw("<ul class=\"reviews\">")
			for _, review := range detail.Reviews {
				h.raw("<li class=\"review\"")
				h.attr("data-review-id", review.ID)
				h.raw("><p class=\"review-meta\"><strong>")
				h.text(review.Author)
				h.raw("</strong> <span class=\"review-rating\">")
				h.text(strconv.Itoa(review.Rating))
				h.raw("/5</span></p><p class=\"review-comment\">")
				h.text(review.Comment)
				h.raw("</p></li>")
			}
			h.raw("</ul>")
		}
		h.raw("</article>")
		return h.err
	})
}
