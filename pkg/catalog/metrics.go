// Package catalog holds the immutable reference data the discovery tools
// serve: supported metrics, active teams, the remote endpoint surface, and
// ready-to-send usage examples. Everything here is constructed once at
// process start and only ever read.
package catalog

import (
	"slices"
	"strings"
)

// Metric describes one measurement the LinearB measurements API accepts.
type Metric struct {
	Name         string   `json:"name" yaml:"name"`
	Aggregations []string `json:"aggregations" yaml:"aggregations"`
	Description  string   `json:"description" yaml:"description"`
	Units        string   `json:"units" yaml:"units"`
	Category     string   `json:"category" yaml:"category"`
}

// CategoryInfo carries the display name and description of a catalog
// grouping (metric category or endpoint category).
type CategoryInfo struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

var percentiles = []string{"p75", "p50", "avg"}

// metricTable lists every supported metric in the order the API
// documentation presents them. Names are globally unique.
var metricTable = []Metric{
	{Name: "branch.computed.cycle_time", Aggregations: percentiles, Description: "Full cycle time (Coding time + Pickup time + Review time + Time to production)", Units: "min", Category: "cycle_time"},
	{Name: "branch.time_to_pr", Aggregations: percentiles, Description: "Coding time (Time to PR)", Units: "min", Category: "cycle_time"},
	{Name: "branch.time_to_review", Aggregations: percentiles, Description: "Pickup time (Time to review)", Units: "min", Category: "cycle_time"},
	{Name: "branch.review_time", Aggregations: percentiles, Description: "Review time", Units: "min", Category: "cycle_time"},
	{Name: "branch.time_to_prod", Aggregations: percentiles, Description: "Time to production (Time to deploy)", Units: "min", Category: "cycle_time"},
	{Name: "pr.merged.size", Aggregations: percentiles, Description: "The sum of PR sizes of merged PRs", Units: "lines of code", Category: "pull_requests"},
	{Name: "pr.merged", Aggregations: []string{}, Description: "The number of PRs that got merged", Units: "count", Category: "pull_requests"},
	{Name: "pr.review_depth", Aggregations: []string{}, Description: "The sum of comments divided by the sum of PRs", Units: "lines of comments", Category: "pull_requests"},
	{Name: "commit.activity.new_work.count", Aggregations: []string{}, Description: "The total new lines of code", Units: "count", Category: "commits"},
	{Name: "commit.total_changes", Aggregations: []string{}, Description: "The total lines of code that have been replaced", Units: "lines of code", Category: "commits"},
	{Name: "commit.activity.refactor.count", Aggregations: []string{}, Description: "The total lines of code that have been replaced that are older then 25 days", Units: "lines of code", Category: "commits"},
	{Name: "commit.activity.rework.count", Aggregations: []string{}, Description: "The total lines of code that have replaced code written within the last 25 days, but outside this branch", Units: "lines of code", Category: "commits"},
	{Name: "pr.merged.without.review.count", Aggregations: []string{}, Description: "The number of PRs that got merged without review", Units: "count", Category: "pull_requests"},
	{Name: "commit.total.count", Aggregations: []string{}, Description: "The sum of commits", Units: "count", Category: "commits"},
	{Name: "pr.new", Aggregations: []string{}, Description: "The number of opened PRs", Units: "count", Category: "pull_requests"},
	{Name: "pr.reviews", Aggregations: []string{}, Description: "The number of reviews on all PRs", Units: "count", Category: "pull_requests"},
	{Name: "releases.count", Aggregations: []string{}, Description: "The number of releases", Units: "count", Category: "releases"},
	{Name: "commit.activity_days", Aggregations: []string{}, Description: "The amount of day of developer activity (commit/comment/PR/merge/review)", Units: "days", Category: "activity"},
	{Name: "branch.state.computed.done", Aggregations: []string{}, Description: "Number of branches that reached state done", Units: "count", Category: "branches"},
	{Name: "branch.state.active", Aggregations: []string{}, Description: "Number of active branches", Units: "count", Category: "branches"},
	{Name: "pm.mttr", Aggregations: []string{}, Description: "Mean time to repair", Units: "min", Category: "incidents"},
	{Name: "pm.cfr.issues.done", Aggregations: []string{}, Description: "The sum of issues that are considered as incidents that reached a done state", Units: "count", Category: "incidents"},
}

var metricCategoryTable = []CategoryInfo{
	{Key: "cycle_time", Name: "Cycle Time Metrics", Description: "Metrics related to development cycle time and flow"},
	{Key: "pull_requests", Name: "Pull Request Metrics", Description: "Metrics related to pull requests and code reviews"},
	{Key: "commits", Name: "Commit Metrics", Description: "Metrics related to commits and code changes"},
	{Key: "releases", Name: "Release Metrics", Description: "Metrics related to software releases"},
	{Key: "activity", Name: "Activity Metrics", Description: "Metrics related to developer activity"},
	{Key: "branches", Name: "Branch Metrics", Description: "Metrics related to branch states"},
	{Key: "incidents", Name: "Incident Metrics", Description: "Metrics related to incidents and reliability"},
}

// Metrics returns every supported metric in catalog order.
func Metrics() []Metric {
	return slices.Clone(metricTable)
}

// MetricCategories returns the metric category reference in catalog order.
func MetricCategories() []CategoryInfo {
	return slices.Clone(metricCategoryTable)
}

// MetricCategoryInfo looks up one metric category by key.
func MetricCategoryInfo(category string) (CategoryInfo, bool) {
	for _, c := range metricCategoryTable {
		if c.Key == category {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// ValidMetricCategories returns the category keys, for error messages.
func ValidMetricCategories() []string {
	keys := make([]string, 0, len(metricCategoryTable))
	for _, c := range metricCategoryTable {
		keys = append(keys, c.Key)
	}
	return keys
}

// MetricsByCategory returns the metrics belonging to one category. ok is
// false when the category is not part of the catalog.
func MetricsByCategory(category string) ([]Metric, bool) {
	if _, ok := MetricCategoryInfo(category); !ok {
		return nil, false
	}
	out := []Metric{}
	for _, m := range metricTable {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, true
}

// MetricNamesByCategory returns just the metric names of one category, in
// catalog order.
func MetricNamesByCategory(category string) []string {
	names := []string{}
	for _, m := range metricTable {
		if m.Category == category {
			names = append(names, m.Name)
		}
	}
	return names
}

// MetricByName looks up one metric by its exact name.
func MetricByName(name string) (Metric, bool) {
	for _, m := range metricTable {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// SearchMetrics filters the catalog by a case-insensitive substring match
// on name or description. An empty term matches everything. A non-empty
// category restricts to that category, and hasAggregation restricts to
// metrics with (true) or without (false) aggregation support; all filters
// are conjunctive.
func SearchMetrics(term, category string, hasAggregation *bool) []Metric {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []Metric{}
	for _, m := range metricTable {
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		if hasAggregation != nil && (len(m.Aggregations) > 0) != *hasAggregation {
			continue
		}
		out = append(out, m)
	}
	return out
}
