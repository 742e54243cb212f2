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

// --- discover_api ---

type discoverAPIInput struct{}

type apiOverview struct {
	APIInfo        catalog.APIDescriptor `json:"api_info"`
	BaseURL        string                `json:"base_url"`
	TotalEndpoints int                   `json:"total_endpoints"`
	Endpoints      []catalog.Endpoint    `json:"endpoints"`
	Categories     []endpointCategory    `json:"categories"`
}

type endpointCategory struct {
	catalog.CategoryInfo
	Endpoints []string `json:"endpoints"`
}

// --- get_endpoint_details ---

type getEndpointDetailsInput struct {
	EndpointPath string `json:"endpoint_path,omitempty" jsonschema:"The API endpoint path (e.g. /api/v1/deployments)"`
	Method       string `json:"method,omitempty" jsonschema:"HTTP method (default GET)"`
}

type endpointDetails struct {
	Endpoint    string             `json:"endpoint"`
	ToolName    string             `json:"mcp_tool_name"`
	Category    string             `json:"category"`
	Summary     string             `json:"summary"`
	Description string             `json:"description"`
	Parameters  endpointParameters `json:"parameters"`
	RequestBody *catalog.BodySpec  `json:"request_body,omitempty"`
}

type endpointParameters struct {
	Query []catalog.Parameter `json:"query"`
	Path  []catalog.Parameter `json:"path"`
}

// --- get_api_categories ---

type getAPICategoriesInput struct{}

type apiCategories struct {
	TotalCategories int               `json:"total_categories"`
	TotalEndpoints  int               `json:"total_endpoints"`
	Categories      []categoryListing `json:"categories"`
}

type categoryListing struct {
	catalog.CategoryInfo
	Endpoints []endpointSummary `json:"endpoints"`
}

type endpointSummary struct {
	Tool        string `json:"tool"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// --- get_usage_examples ---

type getUsageExamplesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter examples by category (e.g. deployments, incidents, metrics_discovery)"`
	ToolName string `json:"tool_name,omitempty" jsonschema:"Get examples for a specific tool name"`
}

type categoryExamples struct {
	Category string                 `json:"category"`
	Tools    []catalog.ToolExamples `json:"tools"`
}

type allExamples struct {
	AllCategories []string               `json:"all_categories"`
	Examples      []catalog.ToolExamples `json:"examples"`
}

// discoveryCategory lists the locally served tools alongside the remote
// endpoint categories.
var discoveryCategory = categoryListing{
	CategoryInfo: catalog.CategoryInfo{Key: "discovery", Name: "Discovery", Description: "API discovery and reference tools"},
	Endpoints: []endpointSummary{
		{Tool: "discover_api", Method: "N/A", Path: "N/A", Description: "Get comprehensive API information"},
		{Tool: "get_endpoint_details", Method: "N/A", Path: "N/A", Description: "Get detailed endpoint information"},
		{Tool: "get_api_categories", Method: "N/A", Path: "N/A", Description: "Get API endpoints by categories"},
		{Tool: "get_usage_examples", Method: "N/A", Path: "N/A", Description: "Get usage examples"},
		{Tool: "get_supported_metrics", Method: "N/A", Path: "N/A", Description: "Get all supported metrics"},
		{Tool: "get_metrics_by_category", Method: "N/A", Path: "N/A", Description: "Get metrics by category"},
		{Tool: "search_metrics", Method: "N/A", Path: "N/A", Description: "Search metrics by name/description"},
		{Tool: "get_metric_examples", Method: "N/A", Path: "N/A", Description: "Get metric usage examples"},
		{Tool: "get_active_teams", Method: "N/A", Path: "N/A", Description: "Get all active teams"},
		{Tool: "get_teams_by_type", Method: "N/A", Path: "N/A", Description: "Get teams by type (engineering/qa)"},
		{Tool: "get_comparable_teams", Method: "N/A", Path: "N/A", Description: "Get comparable engineering teams"},
		{Tool: "search_teams_by_focus", Method: "N/A", Path: "N/A", Description: "Search teams by focus area"},
	},
}

func registerDiscoveryTools(server *mcp.Server) {
	// discover_api
	mcp.AddTool(server, &mcp.Tool{
		Name:        "discover_api",
		Description: "Get comprehensive API information: base URL, every available endpoint with its parameters, and endpoints grouped by category.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input discoverAPIInput) (*mcp.CallToolResult, any, error) {
		endpoints := catalog.Endpoints("")

		categories := []endpointCategory{}
		for _, c := range catalog.EndpointCategories() {
			keys := []string{}
			for _, e := range catalog.Endpoints(c.Key) {
				keys = append(keys, e.Method+" "+e.Path)
			}
			categories = append(categories, endpointCategory{CategoryInfo: c, Endpoints: keys})
		}

		info := catalog.APIInfo()
		return util.JSONResult(apiOverview{
			APIInfo:        info,
			BaseURL:        info.BaseURL,
			TotalEndpoints: len(endpoints),
			Endpoints:      endpoints,
			Categories:     categories,
		}), nil, nil
	})

	// get_endpoint_details
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_endpoint_details",
		Description: "Get detailed information about a specific API endpoint: parameters, request body shape, and the tool that serves it.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getEndpointDetailsInput) (*mcp.CallToolResult, any, error) {
		if input.EndpointPath == "" {
			return util.HandleAPIError(linearb.NewValidationError("endpoint_path", "is required")), nil, nil
		}
		method := strings.ToUpper(defaultString(input.Method, "GET"))

		endpoint, ok := catalog.EndpointByPathMethod(input.EndpointPath, method)
		if !ok {
			if methods := catalog.MethodsForPath(input.EndpointPath); len(methods) > 0 {
				return util.HandleAPIError(linearb.NewNotFoundError(fmt.Sprintf(
					"method %q not available for %q; available methods: %s",
					method, input.EndpointPath, strings.Join(methods, ", ")))), nil, nil
			}
			return util.HandleAPIError(linearb.NewNotFoundError(fmt.Sprintf(
				"endpoint %q not found; available endpoints: %s",
				input.EndpointPath, strings.Join(catalog.EndpointPaths(), ", ")))), nil, nil
		}

		params := endpointParameters{Query: []catalog.Parameter{}, Path: []catalog.Parameter{}}
		for _, p := range endpoint.Parameters {
			switch p.In {
			case "path":
				params.Path = append(params.Path, p)
			default:
				params.Query = append(params.Query, p)
			}
		}

		return util.JSONResult(endpointDetails{
			Endpoint:    endpoint.Method + " " + endpoint.Path,
			ToolName:    endpoint.Tool,
			Category:    endpoint.Category,
			Summary:     endpoint.Summary,
			Description: endpoint.Description,
			Parameters:  params,
			RequestBody: endpoint.RequestBody,
		}), nil, nil
	})

	// get_api_categories
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_api_categories",
		Description: "Get all tools organized by functional category, including the locally served discovery tools.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getAPICategoriesInput) (*mcp.CallToolResult, any, error) {
		listings := []categoryListing{}
		total := 0
		for _, c := range catalog.EndpointCategories() {
			entries := []endpointSummary{}
			for _, e := range catalog.Endpoints(c.Key) {
				entries = append(entries, endpointSummary{Tool: e.Tool, Method: e.Method, Path: e.Path, Description: e.Summary})
			}
			total += len(entries)
			listings = append(listings, categoryListing{CategoryInfo: c, Endpoints: entries})
		}
		listings = append(listings, discoveryCategory)
		total += len(discoveryCategory.Endpoints)

		return util.JSONResult(apiCategories{
			TotalCategories: len(listings),
			TotalEndpoints:  total,
			Categories:      listings,
		}), nil, nil
	})

	// get_usage_examples
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_usage_examples",
		Description: "Get ready-to-send example invocations, for all tools, one category, or one specific tool. tool_name takes precedence over category.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getUsageExamplesInput) (*mcp.CallToolResult, any, error) {
		if input.ToolName != "" {
			te, ok := catalog.ExamplesForTool(input.ToolName)
			if !ok {
				tools := []string{}
				for _, t := range catalog.UsageExamples() {
					tools = append(tools, t.Tool)
				}
				return util.HandleAPIError(linearb.NewNotFoundError(fmt.Sprintf(
					"no examples found for tool %q; available tools: %s",
					input.ToolName, strings.Join(tools, ", ")))), nil, nil
			}
			return util.JSONResult(te), nil, nil
		}

		if input.Category != "" {
			tools, ok := catalog.ExamplesForCategory(input.Category)
			if !ok {
				return util.HandleAPIError(linearb.NewNotFoundError(fmt.Sprintf(
					"category %q not found; available categories: %s",
					input.Category, strings.Join(catalog.ExampleCategories(), ", ")))), nil, nil
			}
			return util.JSONResult(categoryExamples{Category: input.Category, Tools: tools}), nil, nil
		}

		return util.JSONResult(allExamples{
			AllCategories: catalog.ExampleCategories(),
			Examples:      catalog.UsageExamples(),
		}), nil, nil
	})
}
