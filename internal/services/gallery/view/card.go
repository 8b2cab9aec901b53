// Package view derives display-ready records from portfolio projects.
//
// Everything here is pure: no rendering framework, no I/O. Templates and the
// JSON endpoint consume the records as-is.
package view

import (
	"strconv"
	"unicode/utf8"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

// PlaceholderImageURL is the cover image used when a project has no media.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// MaxCardTags caps how many tags a summary card shows.
const MaxCardTags = 3

// Card is the summary view-model for one project.
type Card struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	DetailPath      string   `json:"detailPath"`
	CoverImageURL   string   `json:"coverImageUrl"`
	CoverHint       string   `json:"coverHint,omitempty"`
	OwnerName       string   `json:"ownerName"`
	OwnerAvatarURL  string   `json:"ownerAvatarUrl"`
	OwnerInitial    string   `json:"ownerInitial"`
	Tags            []string `json:"tags"`
	RatingLabel     string   `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	DiscussionCount int      `json:"discussionCount"`
}

// ReviewCountLabel renders the review count the way cards display it.
func (c Card) ReviewCountLabel() string {
	return "(" + strconv.Itoa(c.ReviewCount) + ")"
}

// NewCard maps one project to its summary card.
func NewCard(p project.Project) Card {
	return Card{
		ID:              p.ID,
		Title:           p.Title,
		DetailPath:      routepath.Project(p.ID),
		CoverImageURL:   CoverImageURL(p.MediaURLs),
		CoverHint:       p.CoverHint,
		OwnerName:       p.Owner.Name,
		OwnerAvatarURL:  p.Owner.AvatarURL,
		OwnerInitial:    Initial(p.Owner.Name),
		Tags:            DisplayTags(p.Tags),
		RatingLabel:     RatingLabel(p.AvgRating),
		ReviewCount:     p.ReviewCount,
		DiscussionCount: len(p.Reviews),
	}
}

// NewCards maps each project to a card, preserving collection order.
func NewCards(projects []project.Project) []Card {
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, NewCard(p))
	}
	return cards
}

// CoverImageURL picks the first media reference or, for a project without
// media, the placeholder. References are not checked for reachability.
func CoverImageURL(mediaURLs []string) string {
	if len(mediaURLs) == 0 {
		return PlaceholderImageURL
	}
	return mediaURLs[0]
}

// Initial returns the first character of name, or "" for an empty name.
// Case is kept as written.
func Initial(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name[:1]
	}
	return name[:size]
}

// DisplayTags returns at most MaxCardTags leading tags in their original order.
func DisplayTags(tags []string) []string {
	n := min(len(tags), MaxCardTags)
	out := make([]string, n)
	copy(out, tags[:n])
	return out
}

// RatingLabel renders the average rating verbatim in its shortest decimal
// form, so 4.5 stays "4.5" and 5 stays "5".
func RatingLabel(avg float64) string {
	return strconv.FormatFloat(avg, 'f', -1, 64)
}
