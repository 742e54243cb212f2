package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, text string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(text), v), "response is not JSON: %s", text)
}

func TestDiscoverAPI(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "discover_api", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var overview struct {
		APIInfo struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"api_info"`
		BaseURL        string `json:"base_url"`
		TotalEndpoints int    `json:"total_endpoints"`
		Endpoints      []struct {
			Path     string `json:"path"`
			Method   string `json:"method"`
			Tool     string `json:"tool"`
			Category string `json:"category"`
		} `json:"endpoints"`
		Categories []struct {
			Key       string   `json:"key"`
			Endpoints []string `json:"endpoints"`
		} `json:"categories"`
	}
	decodeJSON(t, text, &overview)

	assert.Equal(t, "LinearB Public API", overview.APIInfo.Title)
	assert.Equal(t, "https://public-api.linearb.io", overview.BaseURL)
	assert.Equal(t, 10, overview.TotalEndpoints)
	assert.Len(t, overview.Endpoints, 10)
	assert.Len(t, overview.Categories, 7)

	tools := make(map[string]bool)
	for _, e := range overview.Endpoints {
		tools[e.Tool] = true
	}
	for _, name := range []string{
		"list_deployments", "search_teams_v2", "search_users", "get_services",
		"get_service", "get_incident", "search_incidents", "post_metrics",
		"export_metrics", "health_check",
	} {
		assert.True(t, tools[name], "endpoint listing is missing tool %s", name)
	}

	assert.Equal(t, 0, stub.callCount(), "discovery must not reach the network")
}

func TestGetEndpointDetails(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_endpoint_details", map[string]any{
		"endpoint_path": "/api/v1/deployments",
	})
	require.False(t, isError, "unexpected error: %s", text)

	var details struct {
		Endpoint   string `json:"endpoint"`
		ToolName   string `json:"mcp_tool_name"`
		Category   string `json:"category"`
		Parameters struct {
			Query []struct {
				Name string `json:"name"`
			} `json:"query"`
			Path []struct {
				Name string `json:"name"`
			} `json:"path"`
		} `json:"parameters"`
	}
	decodeJSON(t, text, &details)
	assert.Equal(t, "GET /api/v1/deployments", details.Endpoint)
	assert.Equal(t, "list_deployments", details.ToolName)
	assert.Equal(t, "deployments", details.Category)
	assert.NotEmpty(t, details.Parameters.Query)
	assert.Empty(t, details.Parameters.Path)

	// Method casing is normalized.
	text, isError = callTool(t, session, "get_endpoint_details", map[string]any{
		"endpoint_path": "/api/v2/measurements",
		"method":        "post",
	})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &details)
	assert.Equal(t, "post_metrics", details.ToolName)

	// Path parameters are grouped separately from query parameters.
	text, isError = callTool(t, session, "get_endpoint_details", map[string]any{
		"endpoint_path": "/api/v1/services/{service_id}",
	})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &details)
	assert.Equal(t, "get_service", details.ToolName)
	require.Len(t, details.Parameters.Path, 1)
	assert.Equal(t, "service_id", details.Parameters.Path[0].Name)

	text, isError = callTool(t, session, "get_endpoint_details", map[string]any{
		"endpoint_path": "/api/v9/nothing",
	})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "not_found", env.Error.Kind)
	assert.Contains(t, env.Error.Message, "available endpoints")

	text, isError = callTool(t, session, "get_endpoint_details", map[string]any{
		"endpoint_path": "/api/v1/deployments",
		"method":        "DELETE",
	})
	require.True(t, isError)
	env = decodeError(t, text)
	assert.Equal(t, "not_found", env.Error.Kind)
	assert.Contains(t, env.Error.Message, "available methods")
	assert.Contains(t, env.Error.Message, "GET")

	_, isError = callTool(t, session, "get_endpoint_details", nil)
	require.True(t, isError)

	assert.Equal(t, 0, stub.callCount())
}

func TestGetAPICategories(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_api_categories", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var out struct {
		TotalCategories int `json:"total_categories"`
		TotalEndpoints  int `json:"total_endpoints"`
		Categories      []struct {
			Key       string `json:"key"`
			Endpoints []struct {
				Tool   string `json:"tool"`
				Method string `json:"method"`
				Path   string `json:"path"`
			} `json:"endpoints"`
		} `json:"categories"`
	}
	decodeJSON(t, text, &out)

	assert.Equal(t, 8, out.TotalCategories, "seven remote categories plus discovery")
	assert.Equal(t, 22, out.TotalEndpoints)
	require.Len(t, out.Categories, 8)

	last := out.Categories[len(out.Categories)-1]
	assert.Equal(t, "discovery", last.Key)
	assert.Len(t, last.Endpoints, 12)
	for _, e := range last.Endpoints {
		assert.Equal(t, "N/A", e.Method)
		assert.Equal(t, "N/A", e.Path)
	}

	assert.Equal(t, 0, stub.callCount())
}

func TestGetUsageExamples(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_usage_examples", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var all struct {
		AllCategories []string `json:"all_categories"`
		Examples      []struct {
			Tool     string `json:"tool"`
			Category string `json:"category"`
			Examples []struct {
				Title     string         `json:"title"`
				Arguments map[string]any `json:"arguments"`
			} `json:"examples"`
		} `json:"examples"`
	}
	decodeJSON(t, text, &all)
	assert.Equal(t, []string{
		"deployments", "teams", "users", "metrics", "incidents",
		"metrics_discovery", "teams_discovery",
	}, all.AllCategories)
	assert.Len(t, all.Examples, 12)

	text, isError = callTool(t, session, "get_usage_examples", map[string]any{"category": "incidents"})
	require.False(t, isError, "unexpected error: %s", text)
	var byCategory struct {
		Category string `json:"category"`
		Tools    []struct {
			Tool string `json:"tool"`
		} `json:"tools"`
	}
	decodeJSON(t, text, &byCategory)
	assert.Equal(t, "incidents", byCategory.Category)
	assert.Len(t, byCategory.Tools, 2)

	text, isError = callTool(t, session, "get_usage_examples", map[string]any{"tool_name": "post_metrics"})
	require.False(t, isError, "unexpected error: %s", text)
	var byTool struct {
		Tool     string `json:"tool"`
		Category string `json:"category"`
		Examples []struct {
			Title string `json:"title"`
		} `json:"examples"`
	}
	decodeJSON(t, text, &byTool)
	assert.Equal(t, "post_metrics", byTool.Tool)
	assert.Equal(t, "metrics", byTool.Category)
	assert.Len(t, byTool.Examples, 1)

	text, isError = callTool(t, session, "get_usage_examples", map[string]any{"tool_name": "bogus_tool"})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "not_found", env.Error.Kind)
	assert.Contains(t, env.Error.Message, "available tools")

	text, isError = callTool(t, session, "get_usage_examples", map[string]any{"category": "bogus"})
	require.True(t, isError)
	env = decodeError(t, text)
	assert.Equal(t, "not_found", env.Error.Kind)
	assert.Contains(t, env.Error.Message, "available categories")

	assert.Equal(t, 0, stub.callCount())
}

func TestGetSupportedMetrics(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_supported_metrics", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var out struct {
		TotalMetrics    int `json:"total_metrics"`
		TotalCategories int `json:"total_categories"`
		Metrics         []struct {
			Name         string   `json:"name"`
			Aggregations []string `json:"aggregations"`
			Category     string   `json:"category"`
		} `json:"metrics"`
		Categories []struct {
			Key         string   `json:"key"`
			MetricCount int      `json:"metric_count"`
			Metrics     []string `json:"metrics"`
		} `json:"categories"`
		UsageNote string `json:"usage_note"`
	}
	decodeJSON(t, text, &out)

	assert.Equal(t, 22, out.TotalMetrics)
	assert.Equal(t, 7, out.TotalCategories)
	assert.Len(t, out.Metrics, 22)
	assert.Contains(t, out.UsageNote, "post_metrics()")

	counts := make(map[string]int)
	for _, c := range out.Categories {
		counts[c.Key] = c.MetricCount
		assert.Len(t, c.Metrics, c.MetricCount)
	}
	assert.Equal(t, 5, counts["cycle_time"])
	assert.Equal(t, 6, counts["pull_requests"])
	assert.Equal(t, 5, counts["commits"])

	assert.Equal(t, 0, stub.callCount())
}

func TestGetMetricsByCategory(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_metrics_by_category", nil)
	require.False(t, isError, "unexpected error: %s", text)
	var overview struct {
		TotalCategories int `json:"total_categories"`
		Categories      []struct {
			Key string `json:"key"`
		} `json:"categories"`
	}
	decodeJSON(t, text, &overview)
	assert.Equal(t, 7, overview.TotalCategories)
	assert.Len(t, overview.Categories, 7)

	text, isError = callTool(t, session, "get_metrics_by_category", map[string]any{"category": "pull_requests"})
	require.False(t, isError, "unexpected error: %s", text)
	var single struct {
		Category     string `json:"category"`
		TotalMetrics int    `json:"total_metrics"`
		Metrics      []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"metrics"`
	}
	decodeJSON(t, text, &single)
	assert.Equal(t, "pull_requests", single.Category)
	assert.Equal(t, 6, single.TotalMetrics)
	for _, m := range single.Metrics {
		assert.Equal(t, "pull_requests", m.Category)
	}

	text, isError = callTool(t, session, "get_metrics_by_category", map[string]any{"category": "velocity"})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "category", env.Error.Field)
	assert.Contains(t, env.Error.Message, "must be one of")

	assert.Equal(t, 0, stub.callCount())
}

func TestSearchMetricsTool(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "search_metrics", map[string]any{"search_term": "Cycle"})
	require.False(t, isError, "unexpected error: %s", text)
	var out struct {
		SearchTerm   string `json:"search_term"`
		TotalMatches int    `json:"total_matches"`
		Metrics      []struct {
			Name string `json:"name"`
		} `json:"metrics"`
	}
	decodeJSON(t, text, &out)
	assert.Equal(t, "cycle", out.SearchTerm, "term is lowercased")
	require.NotZero(t, out.TotalMatches)
	names := make(map[string]bool)
	for _, m := range out.Metrics {
		names[m.Name] = true
	}
	assert.True(t, names["branch.computed.cycle_time"])

	text, isError = callTool(t, session, "search_metrics", map[string]any{"has_aggregation": true})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &out)
	assert.Equal(t, 6, out.TotalMatches)

	text, isError = callTool(t, session, "search_metrics", map[string]any{"has_aggregation": false})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &out)
	assert.Equal(t, 16, out.TotalMatches)

	text, isError = callTool(t, session, "search_metrics", nil)
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &out)
	assert.Equal(t, 22, out.TotalMatches, "empty term matches everything")

	text, isError = callTool(t, session, "search_metrics", map[string]any{"category": "velocity"})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "category", env.Error.Field)

	assert.Equal(t, 0, stub.callCount())
}

func TestGetMetricExamples(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_metric_examples", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var out struct {
		Examples []struct {
			Key         string   `json:"key"`
			MetricsUsed []string `json:"metrics_used"`
		} `json:"examples"`
		AggregationGuide []struct {
			Aggregation string `json:"aggregation"`
		} `json:"aggregation_guide"`
		BestPractices []string `json:"best_practices"`
	}
	decodeJSON(t, text, &out)
	assert.Len(t, out.Examples, 5)
	assert.Len(t, out.AggregationGuide, 3)
	assert.Len(t, out.BestPractices, 4)

	assert.Equal(t, 0, stub.callCount())
}

func TestGetActiveTeams(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_active_teams", nil)
	require.False(t, isError, "unexpected error: %s", text)
	var out struct {
		TotalTeams int `json:"total_teams"`
		TeamTypes  int `json:"team_types"`
		Teams      []struct {
			Key        string `json:"key"`
			Type       string `json:"type"`
			Comparable bool   `json:"comparable"`
		} `json:"teams"`
		Types []struct {
			Key string `json:"key"`
		} `json:"types"`
		UsageNote string `json:"usage_note"`
	}
	decodeJSON(t, text, &out)
	assert.Equal(t, 7, out.TotalTeams)
	assert.Equal(t, 2, out.TeamTypes)
	assert.Len(t, out.Teams, 7)
	assert.Len(t, out.Types, 2)
	assert.NotEmpty(t, out.UsageNote)

	text, isError = callTool(t, session, "get_active_teams", map[string]any{"team_type": "qa"})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &out)
	assert.Equal(t, 1, out.TotalTeams)
	require.Len(t, out.Teams, 1)
	assert.Equal(t, "qa_automation", out.Teams[0].Key)
	assert.False(t, out.Teams[0].Comparable)

	text, isError = callTool(t, session, "get_active_teams", map[string]any{"team_type": "ops"})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "team_type", env.Error.Field)

	assert.Equal(t, 0, stub.callCount())
}

func TestGetTeamsByType(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_teams_by_type", nil)
	require.False(t, isError, "unexpected error: %s", text)
	var overview struct {
		TotalTypes int `json:"total_types"`
		Types      []struct {
			Key       string   `json:"key"`
			TeamCount int      `json:"team_count"`
			Teams     []string `json:"teams"`
		} `json:"types"`
	}
	decodeJSON(t, text, &overview)
	assert.Equal(t, 2, overview.TotalTypes)
	counts := make(map[string]int)
	for _, tt := range overview.Types {
		counts[tt.Key] = tt.TeamCount
		assert.Len(t, tt.Teams, tt.TeamCount)
	}
	assert.Equal(t, 6, counts["engineering"])
	assert.Equal(t, 1, counts["qa"])

	text, isError = callTool(t, session, "get_teams_by_type", map[string]any{"team_type": "engineering"})
	require.False(t, isError, "unexpected error: %s", text)
	var single struct {
		TeamType   string `json:"team_type"`
		Comparable bool   `json:"comparable"`
		TotalTeams int    `json:"total_teams"`
		Teams      []struct {
			Type string `json:"type"`
		} `json:"teams"`
	}
	decodeJSON(t, text, &single)
	assert.Equal(t, "engineering", single.TeamType)
	assert.True(t, single.Comparable)
	assert.Equal(t, 6, single.TotalTeams)
	for _, team := range single.Teams {
		assert.Equal(t, "engineering", team.Type)
	}

	text, isError = callTool(t, session, "get_teams_by_type", map[string]any{"team_type": "platform"})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "team_type", env.Error.Field)

	assert.Equal(t, 0, stub.callCount())
}

func TestGetComparableTeams(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "get_comparable_teams", nil)
	require.False(t, isError, "unexpected error: %s", text)

	var out struct {
		TotalComparableTeams int `json:"total_comparable_teams"`
		Teams                []struct {
			Key        string `json:"key"`
			Comparable bool   `json:"comparable"`
		} `json:"teams"`
		ExcludedTeams []struct {
			Key string `json:"key"`
		} `json:"excluded_teams"`
		UsageNote string `json:"usage_note"`
	}
	decodeJSON(t, text, &out)
	assert.Equal(t, 6, out.TotalComparableTeams)
	assert.Len(t, out.Teams, 6)
	for _, team := range out.Teams {
		assert.True(t, team.Comparable)
	}
	require.Len(t, out.ExcludedTeams, 1)
	assert.Equal(t, "qa_automation", out.ExcludedTeams[0].Key)
	assert.NotEmpty(t, out.UsageNote)

	assert.Equal(t, 0, stub.callCount())
}

func TestSearchTeamsByFocus(t *testing.T) {
	stub := &stubTransport{}
	session := newTestSession(t, stub)

	text, isError := callTool(t, session, "search_teams_by_focus", map[string]any{
		"search_term": "automation",
		"team_type":   "qa",
	})
	require.False(t, isError, "unexpected error: %s", text)
	var out struct {
		SearchTerm   string `json:"search_term"`
		TotalMatches int    `json:"total_matches"`
		Teams        []struct {
			Key        string `json:"key"`
			Comparable bool   `json:"comparable"`
		} `json:"teams"`
	}
	decodeJSON(t, text, &out)
	assert.Equal(t, "automation", out.SearchTerm)
	assert.Equal(t, 1, out.TotalMatches)
	require.Len(t, out.Teams, 1)
	assert.Equal(t, "qa_automation", out.Teams[0].Key)

	text, isError = callTool(t, session, "search_teams_by_focus", map[string]any{
		"search_term":     "integration",
		"comparable_only": true,
	})
	require.False(t, isError, "unexpected error: %s", text)
	decodeJSON(t, text, &out)
	require.NotZero(t, out.TotalMatches)
	found := false
	for _, team := range out.Teams {
		assert.True(t, team.Comparable)
		if team.Key == "integrations_synergy" {
			found = true
		}
	}
	assert.True(t, found, "integrations_synergy should match")

	text, isError = callTool(t, session, "search_teams_by_focus", map[string]any{
		"search_term": "x",
		"team_type":   "ops",
	})
	require.True(t, isError)
	env := decodeError(t, text)
	assert.Equal(t, "validation", env.Error.Kind)
	assert.Equal(t, "team_type", env.Error.Field)

	assert.Equal(t, 0, stub.callCount())
}
