package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
)

// RegisterAll registers all MCP tools with the server. Every tool is
// read-only and idempotent; there is no write path.
func RegisterAll(server *mcp.Server, client *linearb.Client) {
	registerDeploymentTools(server, client)
	registerTeamTools(server, client)
	registerUserTools(server, client)
	registerServiceTools(server, client)
	registerIncidentTools(server, client)
	registerMetricTools(server, client)
	registerHealthTools(server, client)
	registerDiscoveryTools(server)
	registerMetricsCatalogTools(server)
	registerTeamsCatalogTools(server)
}

// remoteAnnotations marks a tool that reads from the remote API.
func remoteAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// catalogAnnotations marks a tool answered entirely from local catalogs.
func catalogAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func boolPtr(b bool) *bool { return &b }
