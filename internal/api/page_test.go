package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestPageSizeDerivation(t *testing.T) {
	tests := []struct {
		name string
		page Page[int]
		size int
	}{
		{
			name: "first page of many carries the server page size",
			page: Page[int]{Count: 95, Next: strptr("?page=2"), Results: make([]int, 25)},
			size: 25,
		},
		{
			name: "single page",
			page: Page[int]{Count: 7, Results: make([]int, 7)},
			size: 7,
		},
		{
			name: "last page is a remainder, size unknown",
			page: Page[int]{Count: 95, Previous: strptr("?page=3"), Results: make([]int, 20)},
			size: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.page.PageSize())
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		page  Page[int]
		total int
	}{
		{
			name:  "multi-page with observed size 25",
			page:  Page[int]{Count: 95, Next: strptr("?page=2"), Results: make([]int, 25)},
			total: 4,
		},
		{
			name:  "exact multiple",
			page:  Page[int]{Count: 100, Next: strptr("?page=2"), Results: make([]int, 25)},
			total: 4,
		},
		{
			name:  "single non-empty page",
			page:  Page[int]{Count: 7, Results: make([]int, 7)},
			total: 1,
		},
		{
			name:  "empty listing",
			page:  Page[int]{Count: 0, Results: nil},
			total: 0,
		},
		{
			name:  "last page alone cannot determine the size",
			page:  Page[int]{Count: 95, Previous: strptr("?page=3"), Results: make([]int, 20)},
			total: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.total, tt.page.TotalPages())
		})
	}
}

func TestListParamsValues(t *testing.T) {
	p := ListParams{
		Page:   3,
		Search: "pump",
		Status: "active",
		Extra:  url.Values{"stage": {"ongoing"}},
	}
	q := p.Values()
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "pump", q.Get("search"))
	assert.Equal(t, "active", q.Get("status"))
	assert.Equal(t, "ongoing", q.Get("stage"))

	// Zero values stay off the wire so the backend applies its defaults.
	q = ListParams{}.Values()
	assert.Empty(t, q)
}
