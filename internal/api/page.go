package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Page is the backend's list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// PageSize reports the server's page size as observed from this page.
// It is only authoritative when a next page exists; the last page of a
// multi-page listing is usually a remainder. The size is read from the
// response rather than assumed, so a server-side page size change cannot
// silently skew totals.
func (p *Page[T]) PageSize() int {
	if p.Next != nil {
		return len(p.Results)
	}
	if p.Previous == nil {
		// Single page: everything fits.
		return len(p.Results)
	}
	return 0
}

// TotalPages derives the page count from the envelope, or 0 when the
// size cannot be determined from this page alone.
func (p *Page[T]) TotalPages() int {
	if p.Previous == nil && p.Next == nil {
		if p.Count == 0 {
			return 0
		}
		return 1
	}
	size := p.PageSize()
	if size == 0 {
		return 0
	}
	return (p.Count + size - 1) / size
}

// ListParams are the query parameters accepted by every list endpoint.
// Extra carries per-resource filters on top of the shared set.
type ListParams struct {
	Page   int
	Search string
	Status string
	Extra  url.Values
}

// Values serializes the parameters, omitting zero values.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	for key, vals := range p.Extra {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// list fetches one page of a resource listing.
func list[T any](ctx context.Context, c *Client, path string, params ListParams) (*Page[T], error) {
	page, err := request[Page[T]](ctx, c, http.MethodGet, path, params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
