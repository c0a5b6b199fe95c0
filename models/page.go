// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Pagination limits applied to list requests.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// PageRequest holds the requested offset window of a list operation.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps the request into the supported range:
// a page below 1 becomes 1, a page size below 1 falls back to the default
// and a page size above the maximum is capped.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of records skipped before the page starts.
// It saturates at math.MaxInt instead of overflowing for huge pages.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Page is one window of users together with pagination metadata.
type Page struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Total    int    `json:"total"`
	Users    []User `json:"users"`
}

// Count returns the number of users in this page.
func (p Page) Count() int {
	return len(p.Users)
}
