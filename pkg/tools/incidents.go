package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- get_incident ---

type getIncidentInput struct {
	ProviderID string `json:"provider_id,omitempty" jsonschema:"The incident provider ID to retrieve"`
}

// --- search_incidents ---

type searchIncidentsInput struct {
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (1-100, default 10)"`
	Offset   int    `json:"offset,omitempty" jsonschema:"Number of results to skip (default 0)"`
	Status   string `json:"status,omitempty" jsonschema:"Filter by incident status"`
	Severity string `json:"severity,omitempty" jsonschema:"Filter by incident severity"`
	After    string `json:"after,omitempty" jsonschema:"Only incidents after this date (ISO format)"`
	Before   string `json:"before,omitempty" jsonschema:"Only incidents before this date (ISO format)"`
}

type incidentSearchBody struct {
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
	Status   string `json:"status,omitempty"`
	Severity string `json:"severity,omitempty"`
	After    string `json:"after,omitempty"`
	Before   string `json:"before,omitempty"`
}

func registerIncidentTools(server *mcp.Server, client *linearb.Client) {
	// get_incident
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_incident",
		Description: "Get a specific incident by its provider ID.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getIncidentInput) (*mcp.CallToolResult, any, error) {
		providerID := strings.TrimSpace(input.ProviderID)
		if providerID == "" {
			return util.HandleAPIError(linearb.NewValidationError("provider_id", "is required and cannot be empty")), nil, nil
		}

		raw, err := client.Get(ctx, "/api/v1/incidents/"+url.PathEscape(providerID), nil)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})

	// search_incidents
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_incidents",
		Description: "Search incidents with optional status, severity, and date range filters.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchIncidentsInput) (*mcp.CallToolResult, any, error) {
		body := incidentSearchBody{
			Limit:    clampLimit(input.Limit),
			Offset:   clampOffset(input.Offset),
			Status:   input.Status,
			Severity: input.Severity,
			After:    input.After,
			Before:   input.Before,
		}

		raw, err := client.Post(ctx, "/api/v1/incidents/search", nil, body)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}
