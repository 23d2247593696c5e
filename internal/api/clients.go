package api

import (
	"context"
	"fmt"
	"net/http"
)

// ClientRecord is a business client as returned by the backend.
type ClientRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	GSTNumber     string `json:"gst_number"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ClientPayload is the create/update body for a client record.
type ClientPayload struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	GSTNumber     string `json:"gst_number,omitempty"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ClientService covers /api/clients/.
type ClientService struct {
	c *Client
}

func (s *ClientService) List(ctx context.Context, params ListParams) (*Page[ClientRecord], error) {
	return list[ClientRecord](ctx, s.c, "/api/clients/", params)
}

func (s *ClientService) Get(ctx context.Context, id int) (*ClientRecord, error) {
	rec, err := request[ClientRecord](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/clients/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ClientService) Create(ctx context.Context, payload ClientPayload) (*ClientRecord, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	rec, err := request[ClientRecord](ctx, s.c, http.MethodPost, "/api/clients/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ClientService) Update(ctx context.Context, id int, payload ClientPayload) (*ClientRecord, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	rec, err := request[ClientRecord](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/clients/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ClientService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/clients/%d/", id), nil)
}
