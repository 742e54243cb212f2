package catalog

import (
	"slices"
	"strings"
)

// Team describes one active team tracked in LinearB.
type Team struct {
	Key         string   `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	ShortName   string   `json:"short_name" yaml:"short_name"`
	Type        string   `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
	Color       string   `json:"color" yaml:"color"`
	Comparable  bool     `json:"comparable" yaml:"comparable"`
	FocusAreas  []string `json:"focus_areas" yaml:"focus_areas"`
}

// TeamTypeInfo describes one team grouping and whether its members take
// part in cross-team comparisons.
type TeamTypeInfo struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Comparable  bool   `json:"comparable" yaml:"comparable"`
}

var teamTable = []Team{
	{Key: "analytics", Name: "Analytics", ShortName: "Aly", Type: "engineering", Description: "Analytics and data engineering team", Color: "#DC143C", Comparable: true, FocusAreas: []string{"data analytics", "business intelligence", "data engineering"}},
	{Key: "cfd_titans", Name: "CFD (Titans)", ShortName: "CFD", Type: "engineering", Description: "CFD Titans engineering team", Color: "#32CD32", Comparable: true, FocusAreas: []string{"Client Focus Delivery", "Support"}},
	{Key: "core_crm", Name: "Core CRM", ShortName: "CC", Type: "engineering", Description: "Core CRM platform team", Color: "#4169E1", Comparable: true, FocusAreas: []string{"customer relationship management", "core platform"}},
	{Key: "integrations_synergy", Name: "Integrations(Synergy)", ShortName: "I", Type: "engineering", Description: "Integrations and Synergy team", Color: "#FF8C00", Comparable: true, FocusAreas: []string{"system integrations", "api development", "third-party connections"}},
	{Key: "media", Name: "Media", ShortName: "Med", Type: "engineering", Description: "Media and content management team", Color: "#00BFFF", Comparable: true, FocusAreas: []string{"media processing", "content management", "digital assets"}},
	{Key: "shinsei", Name: "Shinsei", ShortName: "S", Type: "engineering", Description: "Shinsei development team", Color: "#DA70D6", Comparable: true, FocusAreas: []string{"new product development", "innovation"}},
	{Key: "qa_automation", Name: "QA-Automation", ShortName: "QA", Type: "qa", Description: "Quality Assurance and Test Automation team", Color: "#FFD700", Comparable: false, FocusAreas: []string{"test automation", "quality assurance", "testing frameworks"}},
}

var teamTypeTable = []TeamTypeInfo{
	{Key: "engineering", Name: "Engineering Teams", Description: "Software development and engineering teams", Comparable: true},
	{Key: "qa", Name: "Quality Assurance Teams", Description: "QA and testing teams - tracked separately from engineering squads", Comparable: false},
}

// Teams returns every active team in catalog order.
func Teams() []Team {
	return slices.Clone(teamTable)
}

// TeamTypes returns the team type reference in catalog order.
func TeamTypes() []TeamTypeInfo {
	return slices.Clone(teamTypeTable)
}

// TeamTypeInfoByKey looks up one team type by key.
func TeamTypeInfoByKey(teamType string) (TeamTypeInfo, bool) {
	for _, t := range teamTypeTable {
		if t.Key == teamType {
			return t, true
		}
	}
	return TeamTypeInfo{}, false
}

// ValidTeamTypes returns the team type keys, for error messages.
func ValidTeamTypes() []string {
	keys := make([]string, 0, len(teamTypeTable))
	for _, t := range teamTypeTable {
		keys = append(keys, t.Key)
	}
	return keys
}

// ActiveTeams returns the active teams, optionally restricted to one team
// type. An empty filter returns all teams.
func ActiveTeams(typeFilter string) []Team {
	if typeFilter == "" {
		return Teams()
	}
	out := []Team{}
	for _, t := range teamTable {
		if t.Type == typeFilter {
			out = append(out, t)
		}
	}
	return out
}

// TeamsByType returns the teams of one type. ok is false when the type is
// not part of the catalog.
func TeamsByType(teamType string) ([]Team, bool) {
	if _, ok := TeamTypeInfoByKey(teamType); !ok {
		return nil, false
	}
	return ActiveTeams(teamType), true
}

// ComparableTeams returns the teams that take part in cross-team
// comparisons.
func ComparableTeams() []Team {
	out := []Team{}
	for _, t := range teamTable {
		if t.Comparable {
			out = append(out, t)
		}
	}
	return out
}

// NonComparableTeams returns the teams tracked outside cross-team
// comparisons.
func NonComparableTeams() []Team {
	out := []Team{}
	for _, t := range teamTable {
		if !t.Comparable {
			out = append(out, t)
		}
	}
	return out
}

// SearchTeams filters teams by a case-insensitive substring match on name,
// short name, description, or any focus area. An empty term matches
// everything. A non-empty teamType restricts to that type, and
// comparableOnly drops teams excluded from comparisons; all filters are
// conjunctive.
func SearchTeams(term, teamType string, comparableOnly bool) []Team {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []Team{}
	for _, t := range teamTable {
		if teamType != "" && t.Type != teamType {
			continue
		}
		if comparableOnly && !t.Comparable {
			continue
		}
		if term != "" && !teamMatches(t, term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func teamMatches(t Team, term string) bool {
	if strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.ShortName), term) ||
		strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	for _, f := range t.FocusAreas {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
