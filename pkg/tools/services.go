package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- get_services ---

type getServicesInput struct {
	RepositoryID int64 `json:"repository_id,omitempty" jsonschema:"Filter services by repository ID"`
}

// --- get_service ---

type getServiceInput struct {
	ServiceID int64 `json:"service_id,omitempty" jsonschema:"The service ID to retrieve"`
}

func registerServiceTools(server *mcp.Server, client *linearb.Client) {
	// get_services
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_services",
		Description: "Get all services, optionally filtered by repository.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getServicesInput) (*mcp.CallToolResult, any, error) {
		if input.RepositoryID < 0 {
			return util.HandleAPIError(linearb.NewValidationError("repository_id", "must be a positive integer")), nil, nil
		}

		query := url.Values{}
		if input.RepositoryID > 0 {
			query.Set("repository_id", strconv.FormatInt(input.RepositoryID, 10))
		}

		raw, err := client.Get(ctx, "/api/v1/services/", query)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})

	// get_service
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_service",
		Description: "Get a specific service by its numeric ID.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getServiceInput) (*mcp.CallToolResult, any, error) {
		if input.ServiceID <= 0 {
			return util.HandleAPIError(linearb.NewValidationError("service_id", "must be a positive integer")), nil, nil
		}

		raw, err := client.Get(ctx, fmt.Sprintf("/api/v1/services/%d", input.ServiceID), nil)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}
