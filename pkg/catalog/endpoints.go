package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// APIDescriptor identifies the upstream API the endpoint catalog covers.
type APIDescriptor struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	BaseURL     string `json:"base_url" yaml:"base_url"`
}

// Parameter describes one query, path, or body field of an endpoint.
type Parameter struct {
	Name        string   `json:"name" yaml:"name"`
	In          string   `json:"in" yaml:"in"`
	Type        string   `json:"type" yaml:"type"`
	Required    bool     `json:"required,omitempty" yaml:"required"`
	Description string   `json:"description" yaml:"description"`
	Default     any      `json:"default,omitempty" yaml:"default"`
	Enum        []string `json:"enum,omitempty" yaml:"enum"`
	Minimum     *int     `json:"minimum,omitempty" yaml:"minimum"`
	Maximum     *int     `json:"maximum,omitempty" yaml:"maximum"`
}

// BodySpec describes the JSON request body of a POST endpoint.
type BodySpec struct {
	Description string      `json:"description" yaml:"description"`
	Fields      []Parameter `json:"fields" yaml:"fields"`
}

// Endpoint describes one remote API operation and the tool that fronts it.
type Endpoint struct {
	Path        string      `json:"path" yaml:"path"`
	Method      string      `json:"method" yaml:"method"`
	Tool        string      `json:"tool" yaml:"tool"`
	Category    string      `json:"category" yaml:"category"`
	Summary     string      `json:"summary" yaml:"summary"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters"`
	RequestBody *BodySpec   `json:"request_body,omitempty" yaml:"request_body"`
}

type endpointDocument struct {
	API        APIDescriptor  `yaml:"api"`
	Categories []CategoryInfo `yaml:"categories"`
	Endpoints  []Endpoint     `yaml:"endpoints"`
}

var endpointDoc = mustParseEndpoints(endpointsYAML)

func mustParseEndpoints(raw []byte) endpointDocument {
	var doc endpointDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("catalog: embedded endpoint document: %v", err))
	}
	return doc
}

// APIInfo returns the upstream API descriptor.
func APIInfo() APIDescriptor {
	return endpointDoc.API
}

// Endpoints returns the endpoint catalog in document order, optionally
// restricted to one category. An empty category returns everything.
func Endpoints(category string) []Endpoint {
	if category == "" {
		return slices.Clone(endpointDoc.Endpoints)
	}
	out := []Endpoint{}
	for _, e := range endpointDoc.Endpoints {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// EndpointByPathMethod looks up one endpoint by exact path and method.
// The method comparison is case-insensitive.
func EndpointByPathMethod(path, method string) (Endpoint, bool) {
	method = strings.ToUpper(method)
	for _, e := range endpointDoc.Endpoints {
		if e.Path == path && e.Method == method {
			return e, true
		}
	}
	return Endpoint{}, false
}

// EndpointCategories returns the endpoint category reference in document
// order.
func EndpointCategories() []CategoryInfo {
	return slices.Clone(endpointDoc.Categories)
}

// EndpointCategoryInfo looks up one endpoint category by key.
func EndpointCategoryInfo(category string) (CategoryInfo, bool) {
	for _, c := range endpointDoc.Categories {
		if c.Key == category {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// EndpointPaths returns the distinct endpoint paths in document order.
func EndpointPaths() []string {
	paths := []string{}
	for _, e := range endpointDoc.Endpoints {
		if !slices.Contains(paths, e.Path) {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// MethodsForPath returns the methods the catalog lists for one path.
func MethodsForPath(path string) []string {
	methods := []string{}
	for _, e := range endpointDoc.Endpoints {
		if e.Path == path {
			methods = append(methods, e.Method)
		}
	}
	return methods
}
