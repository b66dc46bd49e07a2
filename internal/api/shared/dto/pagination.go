package dto

import "github.com/feral-file/ff-leaderboard/internal/analytics"

// Page is the envelope of a paginated result
type Page[T any] struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Items      []T `json:"items"`
}

// NewPage wraps one page of items. total is the pre-pagination count.
func NewPage[T any](items []T, total, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: analytics.TotalPages(total, pageSize),
		Items:      items,
	}
}

// EmptyPage returns a page with no items
func EmptyPage[T any](page, pageSize int) *Page[T] {
	return NewPage[T](nil, 0, page, pageSize)
}
