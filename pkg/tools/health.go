package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- health_check ---

type healthCheckInput struct{}

func registerHealthTools(server *mcp.Server, client *linearb.Client) {
	// health_check
	mcp.AddTool(server, &mcp.Tool{
		Name:        "health_check",
		Description: "Check the health status of the LinearB API.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input healthCheckInput) (*mcp.CallToolResult, any, error) {
		raw, err := client.Get(ctx, "/api/v1/health", nil)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}
