package tools

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
)

const (
	defaultLimit     = 10
	maxLimit         = 100
	defaultPageSize  = 50
	maxPageSize      = 50
	maxSearchTermLen = 100
)

// clampLimit applies the default and bounds of list limits. Zero means the
// caller did not set one.
func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLimit
	case limit < 1:
		return 1
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}

// clampPageSize applies the default and bounds of page sizes. Zero means
// the caller did not set one.
func clampPageSize(size int) int {
	switch {
	case size == 0:
		return defaultPageSize
	case size < 1:
		return 1
	case size > maxPageSize:
		return maxPageSize
	}
	return size
}

// clampOffset floors negative offsets at zero.
func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// normalizeSearchTerm trims a provided search term and enforces the 1-100
// character bound. An absent term passes through and is not sent.
func normalizeSearchTerm(field, term string) (string, error) {
	if term == "" {
		return "", nil
	}
	trimmed := strings.TrimSpace(term)
	if n := utf8.RuneCountInString(trimmed); n < 1 || n > maxSearchTermLen {
		return "", linearb.NewValidationError(field, "must be between 1 and 100 characters")
	}
	return trimmed, nil
}

// oneOf rejects provided values outside the allowed set. An absent value
// passes through and is not sent.
func oneOf(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return linearb.NewValidationError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}
