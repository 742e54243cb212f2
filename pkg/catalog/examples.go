package catalog

import "slices"

// Example is one ready-to-send tool invocation.
type Example struct {
	Title     string         `json:"title"`
	Arguments map[string]any `json:"arguments"`
}

// ToolExamples groups the examples of one tool.
type ToolExamples struct {
	Tool        string    `json:"tool"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
}

// MetricExample is one named measurements query, with the metric names it
// exercises.
type MetricExample struct {
	Key         string         `json:"key"`
	Description string         `json:"description"`
	Arguments   map[string]any `json:"arguments"`
	MetricsUsed []string       `json:"metrics_used"`
}

// AggregationHint explains when to use one aggregation.
type AggregationHint struct {
	Aggregation string `json:"aggregation"`
	Description string `json:"description"`
}

var usageExampleTable = []ToolExamples{
	{
		Tool: "list_deployments", Category: "deployments",
		Description: "List recent deployments with filtering (read-only)",
		Examples: []Example{
			{Title: "List 10 most recent deployments", Arguments: map[string]any{"limit": 10, "sort_dir": "desc"}},
			{Title: "List deployments for specific repository", Arguments: map[string]any{"repository_id": 12345, "limit": 20}},
			{Title: "List deployments in date range", Arguments: map[string]any{"after": "2023-01-01", "before": "2023-12-31"}},
		},
	},
	{
		Tool: "search_teams_v2", Category: "teams",
		Description: "Search teams with V2 API (read-only)",
		Examples: []Example{
			{Title: "Search all teams", Arguments: map[string]any{"page_size": 50}},
			{Title: "Search teams by name", Arguments: map[string]any{"search_term": "backend", "page_size": 20}},
		},
	},
	{
		Tool: "search_users", Category: "users",
		Description: "Search users with filtering (read-only)",
		Examples: []Example{
			{Title: "Search all users", Arguments: map[string]any{"page_size": 50}},
			{Title: "Search users by name", Arguments: map[string]any{"search_by_field": "name", "search_term": "john", "order_by": "name"}},
		},
	},
	{
		Tool: "post_metrics", Category: "metrics",
		Description: "Query metrics data",
		Examples: []Example{
			{Title: "Get cycle time metrics", Arguments: map[string]any{
				"group_by":          "organization",
				"roll_up":           "1w",
				"requested_metrics": []map[string]any{{"name": "branch.computed.cycle_time", "agg": "p75"}},
				"time_ranges":       []map[string]any{{"after": "2023-01-01", "before": "2023-01-31"}},
			}},
		},
	},
	{
		Tool: "search_incidents", Category: "incidents",
		Description: "Search incidents with filtering (read-only)",
		Examples: []Example{
			{Title: "Search recent incidents", Arguments: map[string]any{"limit": 20, "after": "2023-01-01"}},
			{Title: "Search incidents by status", Arguments: map[string]any{"status": "open", "limit": 10}},
		},
	},
	{
		Tool: "get_incident", Category: "incidents",
		Description: "Get specific incident details (read-only)",
		Examples: []Example{
			{Title: "Get incident by provider ID", Arguments: map[string]any{"provider_id": "INC-001"}},
		},
	},
	{
		Tool: "get_supported_metrics", Category: "metrics_discovery",
		Description: "Get comprehensive metrics reference",
		Examples: []Example{
			{Title: "Get all supported metrics", Arguments: map[string]any{}},
		},
	},
	{
		Tool: "search_metrics", Category: "metrics_discovery",
		Description: "Search for specific metrics",
		Examples: []Example{
			{Title: "Search cycle time metrics", Arguments: map[string]any{"search_term": "cycle", "category": "cycle_time"}},
			{Title: "Find metrics with aggregation support", Arguments: map[string]any{"search_term": "time", "has_aggregation": true}},
		},
	},
	{
		Tool: "get_metrics_by_category", Category: "metrics_discovery",
		Description: "Get metrics organized by category",
		Examples: []Example{
			{Title: "Get all pull request metrics", Arguments: map[string]any{"category": "pull_requests"}},
			{Title: "Get all categories overview", Arguments: map[string]any{}},
		},
	},
	{
		Tool: "get_active_teams", Category: "teams_discovery",
		Description: "Get comprehensive active teams reference",
		Examples: []Example{
			{Title: "Get all active teams", Arguments: map[string]any{}},
		},
	},
	{
		Tool: "get_comparable_teams", Category: "teams_discovery",
		Description: "Get teams suitable for comparison",
		Examples: []Example{
			{Title: "Get engineering teams for comparison", Arguments: map[string]any{}},
		},
	},
	{
		Tool: "search_teams_by_focus", Category: "teams_discovery",
		Description: "Search teams by focus area",
		Examples: []Example{
			{Title: "Find integration teams", Arguments: map[string]any{"search_term": "integration", "comparable_only": true}},
			{Title: "Find QA teams", Arguments: map[string]any{"search_term": "automation", "team_type": "qa"}},
		},
	},
}

var metricExampleTable = []MetricExample{
	{
		Key:         "cycle_time_analysis",
		Description: "Analyze development cycle time with different aggregations",
		Arguments: map[string]any{
			"group_by": "team",
			"roll_up":  "1w",
			"requested_metrics": []map[string]any{
				{"name": "branch.computed.cycle_time", "agg": "p75"},
				{"name": "branch.time_to_pr", "agg": "p50"},
				{"name": "branch.review_time", "agg": "avg"},
			},
			"time_ranges": []map[string]any{{"after": "2023-01-01", "before": "2023-01-31"}},
		},
		MetricsUsed: []string{"branch.computed.cycle_time", "branch.time_to_pr", "branch.review_time"},
	},
	{
		Key:         "pr_quality_metrics",
		Description: "Analyze pull request quality and review patterns",
		Arguments: map[string]any{
			"group_by": "repository",
			"roll_up":  "1mo",
			"requested_metrics": []map[string]any{
				{"name": "pr.merged"},
				{"name": "pr.review_depth"},
				{"name": "pr.merged.without.review.count"},
				{"name": "pr.merged.size", "agg": "p75"},
			},
			"time_ranges": []map[string]any{{"after": "2023-01-01", "before": "2023-12-31"}},
		},
		MetricsUsed: []string{"pr.merged", "pr.review_depth", "pr.merged.without.review.count", "pr.merged.size"},
	},
	{
		Key:         "activity_overview",
		Description: "Get overview of development activity",
		Arguments: map[string]any{
			"group_by": "organization",
			"roll_up":  "1d",
			"requested_metrics": []map[string]any{
				{"name": "commit.total.count"},
				{"name": "pr.new"},
				{"name": "pr.reviews"},
				{"name": "commit.activity_days"},
			},
			"time_ranges": []map[string]any{{"after": "2023-12-01", "before": "2023-12-31"}},
		},
		MetricsUsed: []string{"commit.total.count", "pr.new", "pr.reviews", "commit.activity_days"},
	},
	{
		Key:         "code_quality_analysis",
		Description: "Analyze code quality through rework and refactor metrics",
		Arguments: map[string]any{
			"group_by": "team",
			"roll_up":  "1w",
			"requested_metrics": []map[string]any{
				{"name": "commit.activity.new_work.count"},
				{"name": "commit.activity.rework.count"},
				{"name": "commit.activity.refactor.count"},
				{"name": "commit.total_changes"},
			},
			"time_ranges": []map[string]any{{"after": "2023-01-01", "before": "2023-03-31"}},
		},
		MetricsUsed: []string{"commit.activity.new_work.count", "commit.activity.rework.count", "commit.activity.refactor.count", "commit.total_changes"},
	},
	{
		Key:         "reliability_metrics",
		Description: "Monitor system reliability and incident metrics",
		Arguments: map[string]any{
			"group_by": "organization",
			"roll_up":  "1mo",
			"requested_metrics": []map[string]any{
				{"name": "pm.mttr"},
				{"name": "pm.cfr.issues.done"},
				{"name": "releases.count"},
			},
			"time_ranges": []map[string]any{{"after": "2023-01-01", "before": "2023-12-31"}},
		},
		MetricsUsed: []string{"pm.mttr", "pm.cfr.issues.done", "releases.count"},
	},
}

var aggregationGuideTable = []AggregationHint{
	{Aggregation: "p75", Description: "75th percentile - good for understanding typical high-end performance"},
	{Aggregation: "p50", Description: "50th percentile (median) - represents typical performance"},
	{Aggregation: "avg", Description: "Average - useful for overall trends but can be skewed by outliers"},
}

var bestPracticeTable = []string{
	"Use p75 for cycle time metrics to understand realistic delivery times",
	"Use p50 for median performance analysis",
	"Combine count metrics with time-based metrics for comprehensive analysis",
	"Use appropriate roll_up periods: 1d for detailed analysis, 1w for trends, 1mo for high-level overview",
}

// UsageExamples returns every tool's examples in catalog order.
func UsageExamples() []ToolExamples {
	return slices.Clone(usageExampleTable)
}

// ExamplesForTool returns the examples of one tool.
func ExamplesForTool(tool string) (ToolExamples, bool) {
	for _, te := range usageExampleTable {
		if te.Tool == tool {
			return te, true
		}
	}
	return ToolExamples{}, false
}

// ExamplesForCategory returns the examples of every tool in one category.
// ok is false when no tool belongs to the category.
func ExamplesForCategory(category string) ([]ToolExamples, bool) {
	out := []ToolExamples{}
	for _, te := range usageExampleTable {
		if te.Category == category {
			out = append(out, te)
		}
	}
	return out, len(out) > 0
}

// ExampleCategories returns the distinct example categories in catalog
// order.
func ExampleCategories() []string {
	cats := []string{}
	for _, te := range usageExampleTable {
		if !slices.Contains(cats, te.Category) {
			cats = append(cats, te.Category)
		}
	}
	return cats
}

// MetricExamples returns the named measurements queries in catalog order.
func MetricExamples() []MetricExample {
	return slices.Clone(metricExampleTable)
}

// AggregationGuide explains the supported aggregations.
func AggregationGuide() []AggregationHint {
	return slices.Clone(aggregationGuideTable)
}

// BestPractices returns guidance for composing measurements queries.
func BestPractices() []string {
	return slices.Clone(bestPracticeTable)
}
