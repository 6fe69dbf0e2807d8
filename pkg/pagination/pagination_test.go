// Copyright (c) 2026 Newswire. All rights reserved.

package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlane/newswire/pkg/pagination"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantError bool
	}{
		{"defaults", "", 1, 10, false},
		{"allowed_limit", "limit=50", 1, 50, false},
		{"smallest_limit", "limit=5", 1, 5, false},
		{"largest_limit", "limit=250", 1, 250, false},
		{"limit_outside_allow_list", "limit=15", 0, 0, true},
		{"limit_not_a_number", "limit=ten", 0, 0, true},
		{"limit_negative", "limit=-10", 0, 0, true},
		{"explicit_page", "page=3", 3, 10, false},
		{"page_not_a_number_defaults", "page=banana", 1, 10, false},
		{"page_zero_defaults", "page=0", 1, 10, false},
		{"page_and_limit", "limit=5&page=2", 2, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			params, err := pagination.FromQuery(values)

			if tt.wantError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 10}, 0},
		{"second_page", pagination.Params{Page: 2, Limit: 5}, 5},
		{"deep_page", pagination.Params{Page: 7, Limit: 20}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}
