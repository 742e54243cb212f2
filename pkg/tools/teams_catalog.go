package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/catalog"
	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

const (
	activeTeamsUsageNote     = "Use team names in metrics queries. Engineering teams are comparable, QA teams should be analyzed separately."
	comparableTeamsUsageNote = "These teams can be compared in metrics analysis. QA teams are tracked separately."
)

// --- get_active_teams ---

type getActiveTeamsInput struct {
	TeamType string `json:"team_type,omitempty" jsonschema:"Optional team type filter: engineering or qa"`
}

type activeTeamsOutput struct {
	TotalTeams int                    `json:"total_teams"`
	TeamTypes  int                    `json:"team_types"`
	Teams      []catalog.Team         `json:"teams"`
	Types      []catalog.TeamTypeInfo `json:"types"`
	UsageNote  string                 `json:"usage_note"`
}

// --- get_teams_by_type ---

type getTeamsByTypeInput struct {
	TeamType string `json:"team_type,omitempty" jsonschema:"Team type: engineering or qa. Omit for an overview of all types."`
}

type typeTeamsOutput struct {
	TeamType    string         `json:"team_type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Comparable  bool           `json:"comparable"`
	TotalTeams  int            `json:"total_teams"`
	Teams       []catalog.Team `json:"teams"`
}

type teamTypesOverview struct {
	TotalTypes int               `json:"total_types"`
	Types      []teamTypeSummary `json:"types"`
}

type teamTypeSummary struct {
	catalog.TeamTypeInfo
	TeamCount int      `json:"team_count"`
	Teams     []string `json:"teams"`
}

// --- get_comparable_teams ---

type getComparableTeamsInput struct{}

type comparableTeamsOutput struct {
	TotalComparableTeams int            `json:"total_comparable_teams"`
	Teams                []catalog.Team `json:"teams"`
	ExcludedTeams        []catalog.Team `json:"excluded_teams"`
	UsageNote            string         `json:"usage_note"`
}

// --- search_teams_by_focus ---

type searchTeamsByFocusInput struct {
	SearchTerm     string `json:"search_term,omitempty" jsonschema:"Term matched against team names, short names, descriptions, and focus areas (empty matches all)"`
	TeamType       string `json:"team_type,omitempty" jsonschema:"Restrict matches to one team type: engineering or qa"`
	ComparableOnly bool   `json:"comparable_only,omitempty" jsonschema:"Only return teams that can be compared"`
}

type searchTeamsOutput struct {
	SearchTerm   string            `json:"search_term"`
	Filters      teamSearchFilters `json:"filters"`
	TotalMatches int               `json:"total_matches"`
	Teams        []catalog.Team    `json:"teams"`
}

type teamSearchFilters struct {
	TeamType       string `json:"team_type,omitempty"`
	ComparableOnly bool   `json:"comparable_only"`
}

func registerTeamsCatalogTools(server *mcp.Server) {
	// get_active_teams
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_active_teams",
		Description: "Get the active teams reference including types, comparability, and focus areas, optionally filtered by team type.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getActiveTeamsInput) (*mcp.CallToolResult, any, error) {
		if input.TeamType != "" {
			if _, ok := catalog.TeamTypeInfoByKey(input.TeamType); !ok {
				return util.HandleAPIError(invalidTeamType()), nil, nil
			}
		}

		teams := catalog.ActiveTeams(input.TeamType)
		types := catalog.TeamTypes()
		return util.JSONResult(activeTeamsOutput{
			TotalTeams: len(teams),
			TeamTypes:  len(types),
			Teams:      teams,
			Types:      types,
			UsageNote:  activeTeamsUsageNote,
		}), nil, nil
	})

	// get_teams_by_type
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_teams_by_type",
		Description: "Get the teams of one type in full, or an overview of every type when no type is given.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getTeamsByTypeInput) (*mcp.CallToolResult, any, error) {
		if input.TeamType == "" {
			types := []teamTypeSummary{}
			for _, t := range catalog.TeamTypes() {
				keys := []string{}
				for _, team := range catalog.ActiveTeams(t.Key) {
					keys = append(keys, team.Key)
				}
				types = append(types, teamTypeSummary{TeamTypeInfo: t, TeamCount: len(keys), Teams: keys})
			}
			return util.JSONResult(teamTypesOverview{TotalTypes: len(types), Types: types}), nil, nil
		}

		info, ok := catalog.TeamTypeInfoByKey(input.TeamType)
		if !ok {
			return util.HandleAPIError(invalidTeamType()), nil, nil
		}
		teams, _ := catalog.TeamsByType(input.TeamType)
		return util.JSONResult(typeTeamsOutput{
			TeamType:    info.Key,
			Name:        info.Name,
			Description: info.Description,
			Comparable:  info.Comparable,
			TotalTeams:  len(teams),
			Teams:       teams,
		}), nil, nil
	})

	// get_comparable_teams
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_comparable_teams",
		Description: "Get the engineering teams that can be compared in metrics analysis, and the teams excluded from comparison.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getComparableTeamsInput) (*mcp.CallToolResult, any, error) {
		comparable := catalog.ComparableTeams()
		return util.JSONResult(comparableTeamsOutput{
			TotalComparableTeams: len(comparable),
			Teams:                comparable,
			ExcludedTeams:        catalog.NonComparableTeams(),
			UsageNote:            comparableTeamsUsageNote,
		}), nil, nil
	})

	// search_teams_by_focus
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_teams_by_focus",
		Description: "Search teams by a case-insensitive substring of name, short name, description, or focus area, optionally filtered by type and comparability. An empty term matches everything.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchTeamsByFocusInput) (*mcp.CallToolResult, any, error) {
		if input.TeamType != "" {
			if _, ok := catalog.TeamTypeInfoByKey(input.TeamType); !ok {
				return util.HandleAPIError(invalidTeamType()), nil, nil
			}
		}

		term := strings.ToLower(strings.TrimSpace(input.SearchTerm))
		matches := catalog.SearchTeams(term, input.TeamType, input.ComparableOnly)
		return util.JSONResult(searchTeamsOutput{
			SearchTerm:   term,
			Filters:      teamSearchFilters{TeamType: input.TeamType, ComparableOnly: input.ComparableOnly},
			TotalMatches: len(matches),
			Teams:        matches,
		}), nil, nil
	})
}

func invalidTeamType() error {
	return linearb.NewValidationError("team_type",
		fmt.Sprintf("must be one of: %s", strings.Join(catalog.ValidTeamTypes(), ", ")))
}
