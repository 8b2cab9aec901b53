package portfolios

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	module "github.com/louisbranch/portfolio.gallery/internal/services/gallery/module"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/fixture"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/memory"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/view"
)

func fixtureDeps(t *testing.T) module.Dependencies {
	t.Helper()

	projects, err := fixture.Default()
	if err != nil {
		t.Fatalf("fixture.Default() error = %v", err)
	}
	store, err := memory.New(projects)
	if err != nil {
		t.Fatalf("memory.New() error = %v", err)
	}
	return module.Dependencies{Projects: store}
}

func mountHandler(t *testing.T, m module.Module, deps module.Dependencies) http.Handler {
	t.Helper()

	mount, err := m.Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func parseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

type failingReader struct{}

func (failingReader) ListProjects(context.Context) ([]project.Project, error) {
	return nil, errors.New("database is locked")
}

func (failingReader) GetProject(context.Context, string) (project.Project, error) {
	return project.Project{}, errors.New("database is locked")
}

func TestModuleIDs(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "portfolios" {
		t.Fatalf("ID() = %q, want %q", got, "portfolios")
	}
	if got := NewAPI().ID(); got != "portfolios-api" {
		t.Fatalf("ID() = %q, want %q", got, "portfolios-api")
	}
}

func TestMountPrefixes(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil || mount.Prefix != routepath.Root {
		t.Fatalf("Mount() = (%q, %v), want prefix %q", mount.Prefix, err, routepath.Root)
	}
	mount, err = NewAPI().Mount(module.Dependencies{})
	if err != nil || mount.Prefix != routepath.APIPrefix {
		t.Fatalf("Mount() = (%q, %v), want prefix %q", mount.Prefix, err, routepath.APIPrefix)
	}
}

func TestListingRendersOneLinkedCardPerProjectInOrder(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parseHTML(t, rr)
	if got := strings.TrimSpace(doc.Find("main h1").First().Text()); got != "Student Portfolios" {
		t.Fatalf("heading = %q, want %q", got, "Student Portfolios")
	}
	var links []string
	doc.Find("#project-grid article.project-card a.project-card-link").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, href)
	})
	if got := strings.Join(links, ","); got != "/projects/p1,/projects/p2,/projects/p3" {
		t.Fatalf("card links = %q", got)
	}
	if got := doc.Find("input[name=skill]").Length(); got != len(view.DefaultSkills) {
		t.Fatalf("skill options = %d, want %d", got, len(view.DefaultSkills))
	}
}

func TestListingShowsPlaceholderAndTruncatedTags(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	doc := parseHTML(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))

	card := doc.Find(`article[data-project-id="p3"]`)
	if src, _ := card.Find("img.project-cover").Attr("src"); src != view.PlaceholderImageURL {
		t.Fatalf("cover = %q, want placeholder", src)
	}
	if got := card.Find(".project-tags .tag").Length(); got != 3 {
		t.Fatalf("tag count = %d, want 3", got)
	}
	if got := card.Find(".avatar-fallback").Text(); got != "S" {
		t.Fatalf("avatar fallback = %q, want S", got)
	}
	if got := card.Find(".review-count").Text(); got != "(21)" {
		t.Fatalf("review count = %q, want (21)", got)
	}
	if got := card.Find(".discussion-count").Text(); got != "3" {
		t.Fatalf("discussion count = %q, want 3", got)
	}
}

func TestListingFiltersBySkillQuery(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	doc := parseHTML(t, serve(h, httptest.NewRequest(http.MethodGet, "/?skill=cinematography&skill=Patternmaking", nil)))

	var ids []string
	doc.Find("article.project-card").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-project-id")
		ids = append(ids, id)
	})
	if got := strings.Join(ids, ","); got != "p1,p3" {
		t.Fatalf("filtered ids = %q, want p1,p3", got)
	}
	var checked []string
	doc.Find("input[name=skill][checked]").Each(func(_ int, s *goquery.Selection) {
		value, _ := s.Attr("value")
		checked = append(checked, value)
	})
	if got := strings.Join(checked, ","); got != "Patternmaking,Cinematography" {
		t.Fatalf("checked = %q", got)
	}
}

func TestListingHTMXReturnsGridOnly(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	req := httptest.NewRequest(http.MethodGet, "/?skill=Digital+Illustration", nil)
	req.Header.Set("HX-Request", "true")
	rr := serve(h, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, "<h1") {
		t.Fatalf("expected grid fragment only: %q", body)
	}
	doc := parseHTML(t, rr)
	if got := doc.Find("#project-grid article.project-card").Length(); got != 1 {
		t.Fatalf("card count = %d, want 1", got)
	}
}

func TestListingUsesConfiguredSkills(t *testing.T) {
	t.Parallel()

	deps := fixtureDeps(t)
	deps.Skills = []string{"Lighting"}
	h := mountHandler(t, New(), deps)
	doc := parseHTML(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	if got := doc.Find("input[name=skill]").Length(); got != 1 {
		t.Fatalf("skill options = %d, want 1", got)
	}
}

func TestListingLocalizesCopy(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	doc := parseHTML(t, serve(h, req))
	if got := strings.TrimSpace(doc.Find("main h1").First().Text()); got != "Portfólios de Estudantes" {
		t.Fatalf("heading = %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
}

func TestListingProviderFailureRendersServerError(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), module.Dependencies{Projects: failingReader{}})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "database is locked") {
		t.Fatal("provider error leaked into page")
	}
}

func TestListingWithoutProviderIsUnavailable(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), module.Dependencies{})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestDetailRendersProject(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/projects/p1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parseHTML(t, rr)
	if got := doc.Find("main h1").Text(); got != "Runway Capsule: Reworked Denim" {
		t.Fatalf("heading = %q", got)
	}
	if got := doc.Find("title").Text(); got != "Runway Capsule: Reworked Denim | Portfolio Gallery" {
		t.Fatalf("title = %q", got)
	}
	if got := doc.Find(".project-tags .tag").Length(); got != 4 {
		t.Fatalf("tag count = %d, want 4", got)
	}
	if got := doc.Find("li.review").Length(); got != 2 {
		t.Fatalf("review count = %d, want 2", got)
	}
}

func TestDetailUnknownProjectRendersNotFound(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/projects/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Fatalf("body missing not found state: %q", rr.Body.String())
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/nope/deeper", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), module.Dependencies{})
	rr := serve(h, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = (%d, %q), want (200, ok)", rr.Code, rr.Body.String())
	}
}

func TestHeadIsServed(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodHead, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestNonGetIsRejected(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, New(), fixtureDeps(t))
	for _, target := range []string{"/", "/projects/p1"} {
		rr := serve(h, httptest.NewRequest(http.MethodPost, target, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status = %d, want %d", target, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
			t.Fatalf("POST %s Allow = %q, want %q", target, got, "GET, HEAD")
		}
	}
}

func TestAPIListingReturnsCards(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, NewAPI(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, routepath.APIProjectsWithSkills([]string{"Digital Illustration"}), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var listing view.Listing
	if err := json.Unmarshal(rr.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Cards) != 1 || listing.Cards[0].ID != "p2" {
		t.Fatalf("cards = %+v, want p2 only", listing.Cards)
	}
	card := listing.Cards[0]
	if card.RatingLabel != "4.5" || card.ReviewCount != 8 || card.DiscussionCount != 1 {
		t.Fatalf("card = %+v", card)
	}
	if card.DetailPath != "/projects/p2" {
		t.Fatalf("detail path = %q", card.DetailPath)
	}
}

func TestAPIListingProviderFailure(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, NewAPI(), module.Dependencies{Projects: failingReader{}})
	rr := serve(h, httptest.NewRequest(http.MethodGet, routepath.APIProjects, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
}

func TestAPIUnknownPathIsJSONNotFound(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, NewAPI(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
}

func TestAPIProjectsRejectsMutations(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, NewAPI(), fixtureDeps(t))
	rr := serve(h, httptest.NewRequest(http.MethodDelete, "/api/projects", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}
