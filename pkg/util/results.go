// Package util provides the result and error shaping helpers shared by the
// tool handlers.
package util

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
)

// SuccessResult wraps text in a successful tool result.
func SuccessResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// RawResult returns an upstream JSON payload verbatim, without reshaping.
func RawResult(raw json.RawMessage) *mcp.CallToolResult {
	return SuccessResult(string(raw))
}

// JSONResult marshals v with indentation into a successful tool result.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return HandleAPIError(fmt.Errorf("encoding result: %w", err))
	}
	return SuccessResult(string(data))
}

type errorPayload struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind       linearb.Kind `json:"kind"`
	Field      string       `json:"field,omitempty"`
	StatusCode int          `json:"status_code,omitempty"`
	Message    string       `json:"message"`
}

// HandleAPIError converts err into a failed tool result carrying a
// structured error payload the caller can parse. Errors other than
// *linearb.Error are reported with kind api.
func HandleAPIError(err error) *mcp.CallToolResult {
	le, ok := linearb.AsError(err)
	if !ok {
		le = linearb.NewAPIError(0, err.Error())
	}
	payload := errorPayload{Error: errorBody{
		Kind:       le.Kind,
		Field:      le.Field,
		StatusCode: le.StatusCode,
		Message:    le.Message,
	}}
	data, _ := json.MarshalIndent(payload, "", "  ")
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
