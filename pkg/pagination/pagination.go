// Copyright (c) 2026 Newswire. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters.
// Page sizes are restricted to a fixed allow-list rather than a clamped range:
// a limit outside the set is a malformed request, not a value to be corrected.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/dmlane/newswire/internal/platform/validate"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// AllowedLimits is the closed set of accepted page sizes.
var AllowedLimits = []int{5, 10, 20, 50, 100, 250}

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// FromQuery parses "page" and "limit" query parameters.
//
// # Contract
//
//   - limit: must be a member of [AllowedLimits]; anything else (including a
//     non-integer) fails with a 400. Absent means [DefaultLimit].
//   - page: positive integer; absent or non-parseable means [DefaultPage].
func FromQuery(values url.Values) (Params, error) {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || !isAllowedLimit(limit) {
			return Params{}, validate.RequiredError("limit", "Must be one of the supported page sizes")
		}
		params.Limit = limit
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err == nil && page >= 1 {
			params.Page = page
		}
	}

	return params, nil
}

// isAllowedLimit reports membership in the page-size allow-list.
func isAllowedLimit(limit int) bool {
	for _, allowed := range AllowedLimits {
		if limit == allowed {
			return true
		}
	}
	return false
}
