package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/util"
)

// --- post_metrics ---

type metricRequest struct {
	Name string `json:"name" jsonschema:"Metric name (e.g. branch.computed.cycle_time)"`
	Agg  string `json:"agg,omitempty" jsonschema:"Aggregation: p75, p50, or avg (where supported)"`
}

type timeRange struct {
	After  string `json:"after" jsonschema:"Range start date (ISO format)"`
	Before string `json:"before" jsonschema:"Range end date (ISO format)"`
}

type postMetricsInput struct {
	GroupBy          string          `json:"group_by,omitempty" jsonschema:"Grouping level (e.g. organization, team, repository)"`
	RollUp           string          `json:"roll_up,omitempty" jsonschema:"Time aggregation (e.g. 1d, 1w, 1mo, custom)"`
	RequestedMetrics []metricRequest `json:"requested_metrics,omitempty" jsonschema:"Metrics to query, each with a name and optional agg"`
	TimeRanges       []timeRange     `json:"time_ranges,omitempty" jsonschema:"Time ranges to query, each with after and before dates"`
	RepositoryIDs    []int64         `json:"repository_ids,omitempty" jsonschema:"Restrict results to these repository IDs"`
	TeamIDs          []int64         `json:"team_ids,omitempty" jsonschema:"Restrict results to these team IDs"`
}

// --- export_metrics ---

type exportMetricsInput struct {
	GroupBy          string          `json:"group_by,omitempty" jsonschema:"Grouping level (e.g. organization, team, repository)"`
	RollUp           string          `json:"roll_up,omitempty" jsonschema:"Time aggregation (e.g. 1d, 1w, 1mo, custom)"`
	RequestedMetrics []metricRequest `json:"requested_metrics,omitempty" jsonschema:"Metrics to query, each with a name and optional agg"`
	TimeRanges       []timeRange     `json:"time_ranges,omitempty" jsonschema:"Time ranges to query, each with after and before dates"`
	FileFormat       string          `json:"file_format,omitempty" jsonschema:"Export format: csv or json (default csv)"`
	RepositoryIDs    []int64         `json:"repository_ids,omitempty" jsonschema:"Restrict results to these repository IDs"`
	TeamIDs          []int64         `json:"team_ids,omitempty" jsonschema:"Restrict results to these team IDs"`
}

type measurementsBody struct {
	GroupBy          string          `json:"group_by"`
	RollUp           string          `json:"roll_up"`
	RequestedMetrics []metricRequest `json:"requested_metrics"`
	TimeRanges       []timeRange     `json:"time_ranges"`
	RepositoryIDs    []int64         `json:"repository_ids,omitempty"`
	TeamIDs          []int64         `json:"team_ids,omitempty"`
}

func registerMetricTools(server *mcp.Server, client *linearb.Client) {
	// post_metrics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "post_metrics",
		Description: "Query metrics data grouped by organization, team, or repository and rolled up over one or more time ranges. Use get_supported_metrics to discover valid metric names.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input postMetricsInput) (*mcp.CallToolResult, any, error) {
		body, err := buildMeasurementsBody(input.GroupBy, input.RollUp, input.RequestedMetrics, input.TimeRanges, input.RepositoryIDs, input.TeamIDs)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}

		raw, err := client.Post(ctx, "/api/v2/measurements", nil, body)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})

	// export_metrics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_metrics",
		Description: "Export a metrics query as a CSV or JSON file. Takes the same query shape as post_metrics plus a file_format.",
		Annotations: remoteAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input exportMetricsInput) (*mcp.CallToolResult, any, error) {
		if err := oneOf("file_format", input.FileFormat, "csv", "json"); err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		body, err := buildMeasurementsBody(input.GroupBy, input.RollUp, input.RequestedMetrics, input.TimeRanges, input.RepositoryIDs, input.TeamIDs)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}

		query := url.Values{}
		query.Set("file_format", defaultString(input.FileFormat, "csv"))

		raw, err := client.Post(ctx, "/api/v2/measurements/export", query, body)
		if err != nil {
			return util.HandleAPIError(err), nil, nil
		}
		return util.RawResult(raw), nil, nil
	})
}

// buildMeasurementsBody validates the measurements query fields shared by
// post_metrics and export_metrics.
func buildMeasurementsBody(groupBy, rollUp string, metrics []metricRequest, ranges []timeRange, repoIDs, teamIDs []int64) (measurementsBody, error) {
	if strings.TrimSpace(groupBy) == "" {
		return measurementsBody{}, linearb.NewValidationError("group_by", "is required")
	}
	if strings.TrimSpace(rollUp) == "" {
		return measurementsBody{}, linearb.NewValidationError("roll_up", "is required")
	}
	if len(metrics) == 0 {
		return measurementsBody{}, linearb.NewValidationError("requested_metrics", "is required and cannot be empty")
	}
	if len(ranges) == 0 {
		return measurementsBody{}, linearb.NewValidationError("time_ranges", "is required and cannot be empty")
	}
	return measurementsBody{
		GroupBy:          groupBy,
		RollUp:           rollUp,
		RequestedMetrics: metrics,
		TimeRanges:       ranges,
		RepositoryIDs:    repoIDs,
		TeamIDs:          teamIDs,
	}, nil
}
