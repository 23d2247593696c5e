package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Resource is a stock/inventory item.
type Resource struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	Location    string `json:"location"`
	UpdatedAt   string `json:"updated_at"`
}

// ResourcePayload is the create/update body for a stock item.
type ResourcePayload struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	MinQuantity int    `json:"min_quantity,omitempty" validate:"gte=0"`
	Location    string `json:"location,omitempty"`
}

// StockAdjustment changes a resource quantity by a signed delta. The
// backend validates that stock never goes negative.
type StockAdjustment struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// ResourceService covers /api/resources/.
type ResourceService struct {
	c *Client
}

func (s *ResourceService) List(ctx context.Context, params ListParams) (*Page[Resource], error) {
	return list[Resource](ctx, s.c, "/api/resources/", params)
}

// ListLowStock lists items at or below their minimum quantity.
func (s *ResourceService) ListLowStock(ctx context.Context, params ListParams) (*Page[Resource], error) {
	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("low_stock", "true")
	return s.List(ctx, params)
}

func (s *ResourceService) Get(ctx context.Context, id int) (*Resource, error) {
	r, err := request[Resource](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/resources/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ResourceService) Create(ctx context.Context, payload ResourcePayload) (*Resource, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	r, err := request[Resource](ctx, s.c, http.MethodPost, "/api/resources/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ResourceService) Update(ctx context.Context, id int, payload ResourcePayload) (*Resource, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	r, err := request[Resource](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/resources/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Adjust applies a signed quantity change with an audit reason.
func (s *ResourceService) Adjust(ctx context.Context, id int, adj StockAdjustment) (*Resource, error) {
	if err := s.c.validatePayload(adj); err != nil {
		return nil, err
	}
	r, err := request[Resource](ctx, s.c, http.MethodPost, fmt.Sprintf("/api/resources/%d/adjust/", id), nil, adj)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ResourceService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/resources/%d/", id), nil)
}
