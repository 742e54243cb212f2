package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- search_teams_v2 ---

type searchTeamsV2Input struct {
	Offset               int    `json:"offset,omitempty" jsonschema:"Pagination offset (default 0)"`
	PageSize             int    `json:"page_size,omitempty" jsonschema:"Number of teams per page (1-50, default 50)"`
	SearchTerm           string `json:"search_term,omitempty" jsonschema:"Search term to filter teams (1-100 characters)"`
	NonmergedMembersOnly bool   `json:"nonmerged_members_only,omitempty" jsonschema:"Return only contributors without parent contributors"`
}

func registerTeamTools(server *mcp.Server, client *linearb.Client) {
	// search_teams_v2
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_teams_v2",
		Description: "Search teams with pagination using the V2 API. Filter by a name search term of 1-100 characters.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchTeamsV2Input) (*mcp.CallToolResult, any, error) {
		term, err := normalizeSearchTerm("search_term", input.SearchTerm)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}

		query := url.Values{}
		query.Set("offset", strconv.Itoa(clampOffset(input.Offset)))
		query.Set("page_size", strconv.Itoa(clampPageSize(input.PageSize)))
		query.Set("nonmerged_members_only", strconv.FormatBool(input.NonmergedMembersOnly))
		if term != "" {
			query.Set("search_term", term)
		}

		raw, err := client.Get(ctx, "/api/v2/teams", query)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}
