package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// AMC statuses as computed by the backend.
const (
	AMCStatusActive   = "active"
	AMCStatusExpiring = "expiring"
	AMCStatusExpired  = "expired"
)

// AMC is a maintenance contract. Status is owned by the backend, derived
// from the contract dates; the console never recomputes it.
type AMC struct {
	ID              int             `json:"id"`
	Client          int             `json:"client"`
	ClientName      string          `json:"client_name"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	VisitsPlanned   int             `json:"visits_planned"`
	VisitsCompleted int             `json:"visits_completed"`
	Notes           string          `json:"notes"`
}

// AMCPayload is the create/update body for a maintenance contract.
type AMCPayload struct {
	Client        int             `json:"client" validate:"required,gt=0"`
	StartDate     string          `json:"start_date" validate:"required"`
	EndDate       string          `json:"end_date" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	VisitsPlanned int             `json:"visits_planned,omitempty" validate:"gte=0"`
	Notes         string          `json:"notes,omitempty"`
}

// AMCRenewal extends a contract for a new period.
type AMCRenewal struct {
	StartDate string          `json:"start_date" validate:"required"`
	EndDate   string          `json:"end_date" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// AMCService covers /api/amcs/.
type AMCService struct {
	c *Client
}

func (s *AMCService) List(ctx context.Context, params ListParams) (*Page[AMC], error) {
	return list[AMC](ctx, s.c, "/api/amcs/", params)
}

func (s *AMCService) Get(ctx context.Context, id int) (*AMC, error) {
	amc, err := request[AMC](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/amcs/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &amc, nil
}

func (s *AMCService) Create(ctx context.Context, payload AMCPayload) (*AMC, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	amc, err := request[AMC](ctx, s.c, http.MethodPost, "/api/amcs/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &amc, nil
}

func (s *AMCService) Update(ctx context.Context, id int, payload AMCPayload) (*AMC, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	amc, err := request[AMC](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/amcs/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &amc, nil
}

func (s *AMCService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/amcs/%d/", id), nil)
}

// Renew opens a follow-on contract period for an existing AMC.
func (s *AMCService) Renew(ctx context.Context, id int, renewal AMCRenewal) (*AMC, error) {
	if err := s.c.validatePayload(renewal); err != nil {
		return nil, err
	}
	amc, err := request[AMC](ctx, s.c, http.MethodPost, fmt.Sprintf("/api/amcs/%d/renew/", id), nil, renewal)
	if err != nil {
		return nil, err
	}
	return &amc, nil
}
