package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- search_users ---

type searchUsersInput struct {
	Offset              int    `json:"offset,omitempty" jsonschema:"Pagination offset (default 0)"`
	PageSize            int    `json:"page_size,omitempty" jsonschema:"Number of users per page (1-50, default 50)"`
	OrderBy             string `json:"order_by,omitempty" jsonschema:"Field to order by: name or email"`
	OrderDir            string `json:"order_dir,omitempty" jsonschema:"Order direction: ASC or DESC"`
	SearchByField       string `json:"search_by_field,omitempty" jsonschema:"Field to search by: name or email"`
	SearchTerm          string `json:"search_term,omitempty" jsonschema:"Search term (1-100 characters)"`
	UserRole            string `json:"user_role,omitempty" jsonschema:"Filter by role: admin, editor, viewer, external, or basic"`
	IncludeUserChildren bool   `json:"include_user_children,omitempty" jsonschema:"Include merged child contributors in the response"`
}

func registerUserTools(server *mcp.Server, client *linearb.Client) {
	// search_users
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_users",
		Description: "Search users with pagination, field filtering, role filtering, and ordering.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchUsersInput) (*mcp.CallToolResult, any, error) {
		if err := oneOf("order_by", input.OrderBy, "name", "email"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		if err := oneOf("order_dir", input.OrderDir, "ASC", "DESC"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		if err := oneOf("search_by_field", input.SearchByField, "name", "email"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		if err := oneOf("user_role", input.UserRole, "admin", "editor", "viewer", "external", "basic"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		term, err := normalizeSearchTerm("search_term", input.SearchTerm)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}

		query := url.Values{}
		query.Set("offset", strconv.Itoa(clampOffset(input.Offset)))
		query.Set("page_size", strconv.Itoa(clampPageSize(input.PageSize)))
		query.Set("include_user_children", strconv.FormatBool(input.IncludeUserChildren))
		if input.OrderBy != "" {
			query.Set("order_by", input.OrderBy)
		}
		if input.OrderDir != "" {
			query.Set("order_dir", input.OrderDir)
		}
		if input.SearchByField != "" {
			query.Set("search_by_field", input.SearchByField)
		}
		if term != "" {
			query.Set("search_term", term)
		}
		if input.UserRole != "" {
			query.Set("user_role", input.UserRole)
		}

		raw, err := client.Get(ctx, "/api/v1/users", query)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}
