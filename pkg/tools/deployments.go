package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- list_deployments ---

type listDeploymentsInput struct {
	RepositoryID int64  `json:"repository_id,omitempty" jsonschema:"Filter by repository ID"`
	After        string `json:"after,omitempty" jsonschema:"Only deployments published after this date (ISO format, e.g. 2023-01-01)"`
	Before       string `json:"before,omitempty" jsonschema:"Only deployments published before this date (ISO format)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Maximum number of results (1-100, default 10)"`
	Offset       int    `json:"offset,omitempty" jsonschema:"Number of results to skip (default 0)"`
	Stage        string `json:"stage,omitempty" jsonschema:"Filter by deployment stage"`
	SortBy       string `json:"sort_by,omitempty" jsonschema:"Sort field (default published_at)"`
	SortDir      string `json:"sort_dir,omitempty" jsonschema:"Sort direction: asc or desc (default desc)"`
	CommitSHA    string `json:"commit_sha,omitempty" jsonschema:"Filter by specific commit SHA"`
}

func registerDeploymentTools(server *mcp.Server, client *linearb.Client) {
	// list_deployments
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_deployments",
		Description: "List deployments with optional filtering by repository, date range, stage, and commit SHA. Results are paginated and sorted by publish time unless overridden.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input listDeploymentsInput) (*mcp.CallToolResult, any, error) {
		if input.RepositoryID < 0 {
			return util.HandleAPIError(linearb.NewValidationError("repository_id", "must be a positive integer")), nil, nil
		}
		if err := oneOf("sort_dir", input.SortDir, "asc", "desc"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}

		query := url.Values{}
		query.Set("limit", strconv.Itoa(clampLimit(input.Limit)))
		query.Set("offset", strconv.Itoa(clampOffset(input.Offset)))
		query.Set("sort_by", defaultString(input.SortBy, "published_at"))
		query.Set("sort_dir", defaultString(input.SortDir, "desc"))
		if input.RepositoryID > 0 {
			query.Set("repository_id", strconv.FormatInt(input.RepositoryID, 10))
		}
		if input.After != "" {
			query.Set("after", input.After)
		}
		if input.Before != "" {
			query.Set("before", input.Before)
		}
		if input.Stage != "" {
			query.Set("stage", input.Stage)
		}
		if input.CommitSHA != "" {
			query.Set("commit_sha", input.CommitSHA)
		}

		raw, err := client.Get(ctx, "/api/v1/deployments", query)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
