// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// DefaultLimit is the page size used when the request omits "limit".
	DefaultLimit = 100

	// MaxLimit is the largest page size a client may request.
	MaxLimit = 1000
)

// ListQuery is a validated, normalized list request. Nil pointer fields mean
// "no filter on this side". DateFrom after DateTo is allowed and simply
// matches nothing.
type ListQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time

	// Location and Source are matched as case-insensitive substrings.
	Location *string
	Source   *string

	// Limit is in [1, MaxLimit].
	Limit int
	// Offset is >= 0.
	Offset int
}

// NewListQuery returns a ListQuery with default pagination and no filters.
func NewListQuery() ListQuery {
	return ListQuery{Limit: DefaultLimit}
}

// ListResult is the paginated list envelope returned by list endpoints.
//
// Total is the number of rows matching the filters before pagination; Limit
// and Offset echo the request even when Data is shorter than Limit.
type ListResult struct {
	Data   []Row `json:"data"`
	Total  int   `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
