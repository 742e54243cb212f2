package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageExamples(t *testing.T) {
	all := UsageExamples()
	assert.Len(t, all, 12)

	categories := make(map[string]bool)
	for _, c := range ExampleCategories() {
		categories[c] = true
	}
	for _, te := range all {
		assert.True(t, categories[te.Category], "tool %s has unknown example category %s", te.Tool, te.Category)
		assert.NotEmpty(t, te.Examples, "tool %s has no examples", te.Tool)
		for _, ex := range te.Examples {
			assert.NotEmpty(t, ex.Title, "tool %s has an untitled example", te.Tool)
		}
	}
}

func TestExampleCategoriesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"deployments", "teams", "users", "metrics", "incidents",
		"metrics_discovery", "teams_discovery",
	}, ExampleCategories())
}

func TestExamplesForTool(t *testing.T) {
	te, ok := ExamplesForTool("post_metrics")
	require.True(t, ok)
	assert.Equal(t, "metrics", te.Category)
	assert.Len(t, te.Examples, 1)

	te, ok = ExamplesForTool("list_deployments")
	require.True(t, ok)
	assert.Len(t, te.Examples, 3)

	_, ok = ExamplesForTool("bogus_tool")
	assert.False(t, ok)
}

func TestExamplesForCategory(t *testing.T) {
	incidents, ok := ExamplesForCategory("incidents")
	require.True(t, ok)
	assert.Len(t, incidents, 2)

	discovery, ok := ExamplesForCategory("metrics_discovery")
	require.True(t, ok)
	assert.Len(t, discovery, 3)

	_, ok = ExamplesForCategory("webhooks")
	assert.False(t, ok)
}

func TestMetricExamplesReferenceRealMetrics(t *testing.T) {
	examples := MetricExamples()
	assert.Len(t, examples, 5)

	for _, ex := range examples {
		assert.NotEmpty(t, ex.MetricsUsed, "example %s lists no metrics", ex.Key)
		for _, name := range ex.MetricsUsed {
			_, ok := MetricByName(name)
			assert.True(t, ok, "example %s references unknown metric %s", ex.Key, name)
		}
	}
}

func TestAggregationGuide(t *testing.T) {
	guide := AggregationGuide()
	require.Len(t, guide, 3)

	aggs := make([]string, 0, len(guide))
	for _, hint := range guide {
		aggs = append(aggs, hint.Aggregation)
	}
	assert.Equal(t, []string{"p75", "p50", "avg"}, aggs)

	assert.Len(t, BestPractices(), 4)
}
