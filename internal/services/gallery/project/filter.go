package project

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the projects carrying at least one tag that matches a
// selected skill, in their original order. Skills match tags without regard
// to case or surrounding whitespace. An empty selection keeps every project.
func Filter(projects []Project, selectedSkills []string) []Project {
	wanted := NormalizeSkills(selectedSkills)
	if len(wanted) == 0 {
		return append([]Project(nil), projects...)
	}
	fold := cases.Fold()
	keys := make(map[string]struct{}, len(wanted))
	for _, skill := range wanted {
		keys[fold.String(skill)] = struct{}{}
	}

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, ok := keys[fold.String(strings.TrimSpace(tag))]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// NormalizeSkills trims the selection, drops blanks and removes repeats that
// differ only by case. The first spelling of each skill wins.
func NormalizeSkills(skills []string) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := fold.String(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// SkillSelected reports whether skill is in the normalized selection.
func SkillSelected(selected []string, skill string) bool {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(skill))
	for _, s := range selected {
		if fold.String(strings.TrimSpace(s)) == want {
			return true
		}
	}
	return false
}
