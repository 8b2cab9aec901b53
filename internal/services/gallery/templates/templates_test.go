package templates

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/view"
	"golang.org/x/text/message"
)

type mapLocalizer map[string]string

func (m mapLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if value, ok := m[keyString]; ok {
		return fmt.Sprintf(value, args...)
	}
	return keyString
}

var testLoc = mapLocalizer{
	"gallery.app_name":      "Portfolio Gallery",
	"gallery.listing.title": "Student Portfolios",
	"gallery.listing.empty": "No projects match the selected skills.",
	"gallery.filter.button": "Filter",
}

func sampleProjects() []project.Project {
	return []project.Project{
		{
			ID:          "p1",
			Title:       "Avant-Garde Fashion Collection",
			MediaURLs:   []string{"https://example.com/p1.png"},
			Owner:       project.Owner{Name: "Alice Wonderland", AvatarURL: "https://example.com/alice.png"},
			Tags:        []string{"Patternmaking", "Draping", "Sewing", "Textiles"},
			AvgRating:   4.8,
			ReviewCount: 12,
			Reviews:     []project.Review{{ID: "r1", Author: "Bob", Rating: 5, Comment: "Stunning <work>"}, {ID: "r2"}},
			CoverHint:   "fashion design",
		},
		{
			ID:          "p 2",
			Title:       "Film Noir Short",
			Owner:       project.Owner{Name: "Émile"},
			Tags:        []string{"Cinematography"},
			AvgRating:   5,
			ReviewCount: 0,
		},
	}
}

func render(t *testing.T, ctx context.Context, component templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func TestListingPageRendersOneCardPerProjectInOrder(t *testing.T) {
	t.Parallel()

	listing := view.ComposeListing(view.ListingInput{Projects: sampleProjects()})
	doc := render(t, context.Background(), ListingPage(listing, testLoc))

	if got := strings.TrimSpace(doc.Find("h1").First().Text()); got != "Student Portfolios" {
		t.Fatalf("heading = %q, want %q", got, "Student Portfolios")
	}
	cards := doc.Find("#" + ProjectGridID + " article.project-card")
	if cards.Length() != 2 {
		t.Fatalf("card count = %d, want 2", cards.Length())
	}
	wantLinks := []string{"/projects/p1", "/projects/p%202"}
	cards.Each(func(idx int, card *goquery.Selection) {
		href, _ := card.Find("a.project-card-link").Attr("href")
		if href != wantLinks[idx] {
			t.Fatalf("card %d href = %q, want %q", idx, href, wantLinks[idx])
		}
	})
}

func TestProjectCardRendersDerivedFields(t *testing.T) {
	t.Parallel()

	card := view.NewCard(sampleProjects()[0])
	doc := render(t, context.Background(), ProjectCard(card, testLoc))

	cover := doc.Find("img.project-cover")
	if src, _ := cover.Attr("src"); src != "https://example.com/p1.png" {
		t.Fatalf("cover src = %q", src)
	}
	if hint, _ := cover.Attr("data-ai-hint"); hint != "fashion design" {
		t.Fatalf("cover hint = %q", hint)
	}
	if got := doc.Find(".avatar-fallback").Text(); got != "A" {
		t.Fatalf("avatar fallback = %q, want %q", got, "A")
	}
	if got := doc.Find(".owner-name").Text(); got != "Alice Wonderland" {
		t.Fatalf("owner = %q", got)
	}
	var tags []string
	doc.Find(".project-tags .tag").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	if got := strings.Join(tags, ","); got != "Patternmaking,Draping,Sewing" {
		t.Fatalf("tags = %q", got)
	}
	if got := doc.Find(".rating-value").Text(); got != "4.8" {
		t.Fatalf("rating = %q, want 4.8", got)
	}
	if got := doc.Find(".review-count").Text(); got != "(12)" {
		t.Fatalf("review count = %q, want (12)", got)
	}
	if got := doc.Find(".discussion-count").Text(); got != "2" {
		t.Fatalf("discussion count = %q, want 2", got)
	}
}

func TestProjectCardWithoutMediaUsesPlaceholderAndNoAvatarImage(t *testing.T) {
	t.Parallel()

	card := view.NewCard(sampleProjects()[1])
	doc := render(t, context.Background(), ProjectCard(card, nil))

	if src, _ := doc.Find("img.project-cover").Attr("src"); src != view.PlaceholderImageURL {
		t.Fatalf("cover src = %q, want placeholder", src)
	}
	if _, ok := doc.Find("img.project-cover").Attr("data-ai-hint"); ok {
		t.Fatal("expected no image hint attribute")
	}
	if doc.Find(".avatar-image").Length() != 0 {
		t.Fatal("expected no avatar image for empty avatar url")
	}
	if got := doc.Find(".avatar-fallback").Text(); got != "É" {
		t.Fatalf("avatar fallback = %q, want %q", got, "É")
	}
	if got := doc.Find(".rating-value").Text(); got != "5" {
		t.Fatalf("rating = %q, want 5", got)
	}
}

func TestFilterMenuRendersCheckedOptions(t *testing.T) {
	t.Parallel()

	menu := view.NewFilterMenu(nil, []string{"cinematography"})
	doc := render(t, context.Background(), FilterMenu(menu, testLoc))

	if _, open := doc.Find("details.filter-menu").Attr("open"); !open {
		t.Fatal("expected filter menu to be open with an active selection")
	}
	if got := strings.TrimSpace(doc.Find("summary").Text()); got != "Filter" {
		t.Fatalf("button = %q, want Filter", got)
	}
	inputs := doc.Find("input[type=checkbox][name=skill]")
	if inputs.Length() != len(view.DefaultSkills) {
		t.Fatalf("checkbox count = %d, want %d", inputs.Length(), len(view.DefaultSkills))
	}
	inputs.Each(func(_ int, input *goquery.Selection) {
		value, _ := input.Attr("value")
		_, checked := input.Attr("checked")
		if checked != (value == "Cinematography") {
			t.Fatalf("checkbox %q checked = %v", value, checked)
		}
	})
	if target, _ := doc.Find("form").Attr("hx-target"); target != "#"+ProjectGridID {
		t.Fatalf("hx-target = %q", target)
	}
}

func TestCardGridEmptyState(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), CardGrid(view.Listing{}, testLoc))
	if doc.Find("article").Length() != 0 {
		t.Fatal("expected no cards")
	}
	if got := doc.Find(".empty-state").Text(); got != "No projects match the selected skills." {
		t.Fatalf("empty state = %q", got)
	}
	if doc.Find(".grid-data").Length() != 0 {
		t.Fatal("expected no data link without a data path")
	}
}

func TestCardGridLinksSelectionAsJSON(t *testing.T) {
	t.Parallel()

	listing := view.ComposeListing(view.ListingInput{
		Projects:       sampleProjects(),
		SelectedSkills: []string{"Digital Illustration"},
	})
	doc := render(t, context.Background(), CardGrid(listing, testLoc))
	link := doc.Find("#" + ProjectGridID + " .grid-data a")
	if href, _ := link.Attr("href"); href != "/api/projects?skill=Digital+Illustration" {
		t.Fatalf("data link href = %q", href)
	}
	if got := link.Text(); got != "View as JSON" {
		t.Fatalf("data link text = %q", got)
	}
}

func TestTextIsEscaped(t *testing.T) {
	t.Parallel()

	p := sampleProjects()[0]
	p.Title = `<script>alert("x")</script>`
	var buf bytes.Buffer
	if err := ProjectCard(view.NewCard(p), nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("rendered raw script tag: %s", buf.String())
	}
}

func TestUnsafeLinkIsSanitized(t *testing.T) {
	t.Parallel()

	card := view.NewCard(sampleProjects()[0])
	card.DetailPath = "javascript:alert(1)"
	doc := render(t, context.Background(), ProjectCard(card, nil))
	href, _ := doc.Find("a.project-card-link").Attr("href")
	if strings.HasPrefix(href, "javascript:") {
		t.Fatalf("href = %q, want sanitized", href)
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})
	ctx := templ.WithChildren(context.Background(), child)
	doc := render(t, ctx, Layout(PageContext{Lang: "pt-BR", Loc: testLoc, Title: "Student Portfolios"}))

	if got := doc.Find("title").Text(); got != "Student Portfolios | Portfolio Gallery" {
		t.Fatalf("title = %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if doc.Find("main#main #child").Length() != 1 {
		t.Fatal("expected children inside main")
	}
	if href, _ := doc.Find("link[rel=stylesheet]").Attr("href"); href != "/static/gallery.css" {
		t.Fatalf("stylesheet = %q", href)
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "Student Portfolios", want: "Student Portfolios | Portfolio Gallery"},
		{title: "", want: "Portfolio Gallery"},
		{title: "Portfolio Gallery", want: "Portfolio Gallery"},
		{title: "Film | Portfolio Gallery", want: "Film | Portfolio Gallery"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.title, "Portfolio Gallery"); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestProjectDetailRendersAllTagsAndReviews(t *testing.T) {
	t.Parallel()

	detail := view.NewDetail(sampleProjects()[0])
	doc := render(t, context.Background(), ProjectDetail(detail, nil))

	if doc.Find(".project-tags .tag").Length() != 4 {
		t.Fatalf("tag count = %d, want 4", doc.Find(".project-tags .tag").Length())
	}
	if doc.Find("li.review").Length() != 2 {
		t.Fatalf("review count = %d, want 2", doc.Find("li.review").Length())
	}
	if got := doc.Find("li.review .review-comment").First().Text(); got != "Stunning <work>" {
		t.Fatalf("review comment = %q", got)
	}
}

func TestProjectDetailWithoutReviews(t *testing.T) {
	t.Parallel()

	detail := view.NewDetail(sampleProjects()[1])
	doc := render(t, context.Background(), ProjectDetail(detail, nil))
	if doc.Find(".empty-state").Length() != 1 {
		t.Fatal("expected empty reviews state")
	}
	if src, _ := doc.Find("img.project-cover").Attr("src"); src != view.PlaceholderImageURL {
		t.Fatalf("media = %q, want placeholder", src)
	}
}

func TestErrorStateNormalizesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusNotFound, want: "404"},
		{status: http.StatusServiceUnavailable, want: "500"},
		{status: http.StatusInternalServerError, want: "500"},
	}
	for _, tc := range tests {
		doc := render(t, context.Background(), ErrorState(tc.status, nil))
		if got, _ := doc.Find(".error-state").Attr("data-status"); got != tc.want {
			t.Fatalf("status %d data-status = %q, want %q", tc.status, got, tc.want)
		}
	}
	if got := ErrorTitle(http.StatusNotFound, nil); got != "gallery.error.not_found.title" {
		t.Fatalf("ErrorTitle() = %q", got)
	}
}
