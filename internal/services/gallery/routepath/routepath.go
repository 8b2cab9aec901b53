// Package routepath centralizes gallery route patterns and path builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Health         = "/up"
	StaticPrefix   = "/static/"
	ProjectsPrefix = "/projects/"
	APIPrefix      = "/api/"
	APIProjects    = APIPrefix + "projects"
)

// SkillQueryParam carries one selected skill per value on the listing routes.
const SkillQueryParam = "skill"

// Project returns the detail route for the given project id. The id is
// escaped as-is; project.ValidateID keeps dot segments out of collections.
func Project(projectID string) string {
	return ProjectsPrefix + url.PathEscape(projectID)
}

// Listing returns the root listing route carrying the given skill selection.
func Listing(skills []string) string {
	return withSkills(Root, skills)
}

// APIProjectsWithSkills returns the JSON listing route carrying the selection.
func APIProjectsWithSkills(skills []string) string {
	return withSkills(APIProjects, skills)
}

func withSkills(base string, skills []string) string {
	values := url.Values{}
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			values.Add(SkillQueryParam, skill)
		}
	}
	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}
