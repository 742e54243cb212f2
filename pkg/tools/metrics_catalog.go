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

const metricsUsageNote = "Use these metric names in post_metrics() calls. Specify aggregation (p75, p50, avg) where supported."

// --- get_supported_metrics ---

type getSupportedMetricsInput struct{}

type supportedMetricsOutput struct {
	TotalMetrics    int                     `json:"total_metrics"`
	TotalCategories int                     `json:"total_categories"`
	Metrics         []catalog.Metric        `json:"metrics"`
	Categories      []metricCategorySummary `json:"categories"`
	UsageNote       string                  `json:"usage_note"`
}

type metricCategorySummary struct {
	catalog.CategoryInfo
	MetricCount int      `json:"metric_count"`
	Metrics     []string `json:"metrics"`
}

// --- get_metrics_by_category ---

type getMetricsByCategoryInput struct {
	Category string `json:"category,omitempty" jsonschema:"Category name: cycle_time, pull_requests, commits, releases, activity, branches, or incidents. Omit for an overview of all categories."`
}

type categoryMetricsOutput struct {
	Category     string           `json:"category"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	TotalMetrics int              `json:"total_metrics"`
	Metrics      []catalog.Metric `json:"metrics"`
}

type metricCategoriesOverview struct {
	TotalCategories int                     `json:"total_categories"`
	Categories      []metricCategorySummary `json:"categories"`
}

// --- search_metrics ---

type searchMetricsInput struct {
	SearchTerm     string `json:"search_term,omitempty" jsonschema:"Term matched against metric names and descriptions (empty matches all)"`
	Category       string `json:"category,omitempty" jsonschema:"Restrict matches to one category"`
	HasAggregation *bool  `json:"has_aggregation,omitempty" jsonschema:"Restrict to metrics with (true) or without (false) aggregation support"`
}

type searchMetricsOutput struct {
	SearchTerm   string              `json:"search_term"`
	Filters      metricSearchFilters `json:"filters"`
	TotalMatches int                 `json:"total_matches"`
	Metrics      []catalog.Metric    `json:"metrics"`
}

type metricSearchFilters struct {
	Category       string `json:"category,omitempty"`
	HasAggregation *bool  `json:"has_aggregation,omitempty"`
}

// --- get_metric_examples ---

type getMetricExamplesInput struct{}

type metricExamplesOutput struct {
	Examples         []catalog.MetricExample   `json:"examples"`
	AggregationGuide []catalog.AggregationHint `json:"aggregation_guide"`
	BestPractices    []string                  `json:"best_practices"`
}

func registerMetricsCatalogTools(server *mcp.Server) {
	// get_supported_metrics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_supported_metrics",
		Description: "Get the full reference of supported metrics: names, aggregations, descriptions, units, and categories.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getSupportedMetricsInput) (*mcp.CallToolResult, any, error) {
		metrics := catalog.Metrics()
		return util.JSONResult(supportedMetricsOutput{
			TotalMetrics:    len(metrics),
			TotalCategories: len(catalog.MetricCategories()),
			Metrics:         metrics,
			Categories:      metricCategorySummaries(),
			UsageNote:       metricsUsageNote,
		}), nil, nil
	})

	// get_metrics_by_category
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_metrics_by_category",
		Description: "Get the metrics of one category in full, or an overview of every category when no category is given.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getMetricsByCategoryInput) (*mcp.CallToolResult, any, error) {
		if input.Category == "" {
			return util.JSONResult(metricCategoriesOverview{
				TotalCategories: len(catalog.MetricCategories()),
				Categories:      metricCategorySummaries(),
			}), nil, nil
		}

		info, ok := catalog.MetricCategoryInfo(input.Category)
		if !ok {
			return util.HandleAPIError(invalidMetricCategory()), nil, nil
		}
		metrics, _ := catalog.MetricsByCategory(input.Category)
		return util.JSONResult(categoryMetricsOutput{
			Category:     info.Key,
			Name:         info.Name,
			Description:  info.Description,
			TotalMetrics: len(metrics),
			Metrics:      metrics,
		}), nil, nil
	})

	// search_metrics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_metrics",
		Description: "Search metrics by a case-insensitive substring of name or description, optionally filtered by category and aggregation support. An empty term matches everything.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchMetricsInput) (*mcp.CallToolResult, any, error) {
		if input.Category != "" {
			if _, ok := catalog.MetricCategoryInfo(input.Category); !ok {
				return util.HandleAPIError(invalidMetricCategory()), nil, nil
			}
		}

		term := strings.ToLower(strings.TrimSpace(input.SearchTerm))
		matches := catalog.SearchMetrics(term, input.Category, input.HasAggregation)
		return util.JSONResult(searchMetricsOutput{
			SearchTerm:   term,
			Filters:      metricSearchFilters{Category: input.Category, HasAggregation: input.HasAggregation},
			TotalMatches: len(matches),
			Metrics:      matches,
		}), nil, nil
	})

	// get_metric_examples
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_metric_examples",
		Description: "Get named example metrics queries ready for post_metrics, an aggregation guide, and best practices.",
		Annotations: catalogAnnotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getMetricExamplesInput) (*mcp.CallToolResult, any, error) {
		return util.JSONResult(metricExamplesOutput{
			Examples:         catalog.MetricExamples(),
			AggregationGuide: catalog.AggregationGuide(),
			BestPractices:    catalog.BestPractices(),
		}), nil, nil
	})
}

func metricCategorySummaries() []metricCategorySummary {
	out := []metricCategorySummary{}
	for _, c := range catalog.MetricCategories() {
		names := catalog.MetricNamesByCategory(c.Key)
		out = append(out, metricCategorySummary{CategoryInfo: c, MetricCount: len(names), Metrics: names})
	}
	return out
}

func invalidMetricCategory() error {
	return linearb.NewValidationError("category",
		fmt.Sprintf("must be one of: %s", strings.Join(catalog.ValidMetricCategories(), ", ")))
}
