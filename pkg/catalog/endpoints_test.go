package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIInfo(t *testing.T) {
	info := APIInfo()
	assert.Equal(t, "LinearB Public API", info.Title)
	assert.Equal(t, "https://public-api.linearb.io", info.BaseURL)
	assert.NotEmpty(t, info.Version)
}

func TestEndpointTable(t *testing.T) {
	all := Endpoints("")
	assert.Len(t, all, 10)
	assert.Len(t, EndpointCategories(), 7)
	assert.Len(t, EndpointPaths(), 10)

	categories := make(map[string]bool)
	for _, c := range EndpointCategories() {
		categories[c.Key] = true
	}

	tools := make(map[string]bool)
	for _, e := range all {
		assert.True(t, categories[e.Category], "endpoint %s %s has unknown category %s", e.Method, e.Path, e.Category)
		assert.NotEmpty(t, e.Tool, "endpoint %s %s has no tool", e.Method, e.Path)
		assert.False(t, tools[e.Tool], "tool %s is mapped twice", e.Tool)
		tools[e.Tool] = true

		if e.Method == "POST" {
			assert.NotNil(t, e.RequestBody, "POST endpoint %s must document its body", e.Path)
		}
	}
}

func TestEndpointsByCategory(t *testing.T) {
	wantCounts := map[string]int{
		"deployments": 1,
		"teams":       1,
		"users":       1,
		"services":    2,
		"incidents":   2,
		"metrics":     2,
		"health":      1,
	}
	for category, want := range wantCounts {
		assert.Len(t, Endpoints(category), want, "category %s", category)
	}
	assert.Empty(t, Endpoints("webhooks"))
}

func TestEndpointByPathMethod(t *testing.T) {
	e, ok := EndpointByPathMethod("/api/v1/deployments", "GET")
	require.True(t, ok)
	assert.Equal(t, "list_deployments", e.Tool)

	// Method lookup is case-insensitive.
	e, ok = EndpointByPathMethod("/api/v2/measurements", "post")
	require.True(t, ok)
	assert.Equal(t, "post_metrics", e.Tool)

	_, ok = EndpointByPathMethod("/api/v1/deployments", "DELETE")
	assert.False(t, ok)

	_, ok = EndpointByPathMethod("/api/v9/nothing", "GET")
	assert.False(t, ok)
}

func TestMethodsForPath(t *testing.T) {
	assert.Equal(t, []string{"GET"}, MethodsForPath("/api/v1/deployments"))
	assert.Equal(t, []string{"POST"}, MethodsForPath("/api/v1/incidents/search"))
	assert.Empty(t, MethodsForPath("/api/v9/nothing"))
}

func TestExportMetricsEndpointShape(t *testing.T) {
	e, ok := EndpointByPathMethod("/api/v2/measurements/export", "POST")
	require.True(t, ok)

	// The export endpoint takes both a query parameter and a JSON body.
	require.Len(t, e.Parameters, 1)
	assert.Equal(t, "file_format", e.Parameters[0].Name)
	assert.Equal(t, "query", e.Parameters[0].In)
	assert.ElementsMatch(t, []string{"csv", "json"}, e.Parameters[0].Enum)

	require.NotNil(t, e.RequestBody)
	assert.NotEmpty(t, e.RequestBody.Fields)
}
