package api

import (
	"context"
	"fmt"
	"net/http"
)

// Firm is one of the operating entities documents and tenders are filed
// under. The console offers it as a selector; records change rarely.
type Firm struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default"`
}

// FirmService covers /api/firms/.
type FirmService struct {
	c *Client
}

func (s *FirmService) List(ctx context.Context, params ListParams) (*Page[Firm], error) {
	return list[Firm](ctx, s.c, "/api/firms/", params)
}

func (s *FirmService) Get(ctx context.Context, id int) (*Firm, error) {
	f, err := request[Firm](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/firms/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
