package view

import (
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/routepath"
)

// DefaultSkills are the filter options offered when none are configured.
var DefaultSkills = []string{"Patternmaking", "Digital Illustration", "Cinematography"}

// SkillOption is one checkbox entry in the filter menu.
type SkillOption struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// FilterMenu is the state of the skill filter control.
type FilterMenu struct {
	Options  []SkillOption `json:"options"`
	Selected []string      `json:"selected"`
	// ClearPath is the listing route with no selection applied.
	ClearPath string `json:"clearPath"`
	// DataPath is the JSON listing route carrying the same selection.
	DataPath string `json:"dataPath"`
}

// Active reports whether any skill is selected.
func (m FilterMenu) Active() bool {
	return len(m.Selected) > 0
}

// Listing is the full listing page view-model.
type Listing struct {
	Filter FilterMenu `json:"filter"`
	Cards  []Card     `json:"cards"`
}

// ListingInput carries what the composer needs to build one listing.
type ListingInput struct {
	Projects       []project.Project
	SkillOptions   []string
	SelectedSkills []string
}

// ComposeListing filters the collection by the selected skills and derives
// one card per remaining project, keeping collection order.
func ComposeListing(input ListingInput) Listing {
	selected := project.NormalizeSkills(input.SelectedSkills)
	return Listing{
		Filter: NewFilterMenu(input.SkillOptions, selected),
		Cards:  NewCards(project.Filter(input.Projects, selected)),
	}
}

// NewFilterMenu builds the menu from the offered skills. Selected skills that
// are not offered are still honored and appended as checked options so the
// user can clear them.
func NewFilterMenu(skills []string, selected []string) FilterMenu {
	offered := project.NormalizeSkills(skills)
	if len(skills) == 0 {
		offered = project.NormalizeSkills(DefaultSkills)
	}
	selected = project.NormalizeSkills(selected)

	menu := FilterMenu{
		Options:   make([]SkillOption, 0, len(offered)+len(selected)),
		Selected:  selected,
		ClearPath: routepath.Listing(nil),
		DataPath:  routepath.APIProjectsWithSkills(selected),
	}
	for _, skill := range offered {
		menu.Options = append(menu.Options, SkillOption{
			Label:   skill,
			Checked: project.SkillSelected(selected, skill),
		})
	}
	for _, skill := range selected {
		if !project.SkillSelected(offered, skill) {
			menu.Options = append(menu.Options, SkillOption{Label: skill, Checked: true})
		}
	}
	return menu
}

// Detail is the per-project page view-model.
type Detail struct {
	Card    Card             `json:"card"`
	AllTags []string         `json:"allTags"`
	Media   []string         `json:"media"`
	Reviews []project.Review `json:"reviews"`
}

// NewDetail maps one project to its detail page.
func NewDetail(p project.Project) Detail {
	media := append([]string(nil), p.MediaURLs...)
	if len(media) == 0 {
		media = []string{PlaceholderImageURL}
	}
	return Detail{
		Card:    NewCard(p),
		AllTags: append([]string{}, p.Tags...),
		Media:   media,
		Reviews: append([]project.Review{}, p.Reviews...),
	}
}
