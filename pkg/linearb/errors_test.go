package linearb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"config", NewConfigError("LINEARB_API_KEY is not set"), "config: LINEARB_API_KEY is not set"},
		{"validation with field", NewValidationError("limit", "must be positive"), "validation: limit must be positive"},
		{"validation without field", NewValidationError("", "bad input"), "validation: bad input"},
		{"network", NewNetworkError("timeout on GET /api/v1/health", errors.New("deadline")), "network: timeout on GET /api/v1/health"},
		{"api with status", NewAPIError(503, "upstream unavailable"), "api (status 503): upstream unavailable"},
		{"api without status", NewAPIError(0, "malformed response"), "api: malformed response"},
		{"not found", NewNotFoundError("endpoint /x not found"), "not_found: endpoint /x not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewNetworkError("network error on GET /api/v1/health", inner)
	assert.True(t, errors.Is(err, inner))

	assert.Nil(t, NewAPIError(500, "boom").Unwrap())
}

func TestAsError(t *testing.T) {
	apiErr := NewAPIError(404, "missing")
	wrapped := fmt.Errorf("calling incidents: %w", apiErr)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindAPI, got.Kind)
	assert.Equal(t, 404, got.StatusCode)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = AsError(nil)
	assert.False(t, ok)
}
