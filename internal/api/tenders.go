package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Tender is a bid record. The two security deposits are optional pairs:
// an amount plus the demand-draft date/number it was paid with.
type Tender struct {
	ID             int             `json:"id"`
	TenderNo       string          `json:"tender_no"`
	Name           string          `json:"name"`
	Authority      string          `json:"authority"`
	SubmissionDate string          `json:"submission_date"`
	OpeningDate    string          `json:"opening_date"`
	EMDAmount      decimal.Decimal `json:"emd_amount"`
	Status         string          `json:"status"`
	Result         string          `json:"result"`

	SecurityDeposit1         *decimal.Decimal `json:"security_deposit_1"`
	SecurityDeposit1DDDate   *string          `json:"security_deposit_1_dd_date"`
	SecurityDeposit1DDNumber *string          `json:"security_deposit_1_dd_number"`
	SecurityDeposit2         *decimal.Decimal `json:"security_deposit_2"`
	SecurityDeposit2DDDate   *string          `json:"security_deposit_2_dd_date"`
	SecurityDeposit2DDNumber *string          `json:"security_deposit_2_dd_number"`
}

// SecurityDeposit is one deposit with its demand-draft details.
type SecurityDeposit struct {
	Amount   decimal.Decimal `validate:"required"`
	DDDate   string          `validate:"required"`
	DDNumber string          `validate:"required"`
}

// TenderPayload is the create/update body. Deposit keys stay out of the
// serialized payload entirely when the corresponding deposit is not
// supplied, so a one-deposit update never touches the second deposit's
// fields on the backend.
type TenderPayload struct {
	TenderNo       string          `json:"tender_no" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Authority      string          `json:"authority,omitempty"`
	SubmissionDate string          `json:"submission_date,omitempty"`
	OpeningDate    string          `json:"opening_date,omitempty"`
	EMDAmount      decimal.Decimal `json:"emd_amount"`
	Status         string          `json:"status,omitempty"`
	Result         string          `json:"result,omitempty"`

	SecurityDeposit1         *decimal.Decimal `json:"security_deposit_1,omitempty"`
	SecurityDeposit1DDDate   *string          `json:"security_deposit_1_dd_date,omitempty"`
	SecurityDeposit1DDNumber *string          `json:"security_deposit_1_dd_number,omitempty"`
	SecurityDeposit2         *decimal.Decimal `json:"security_deposit_2,omitempty"`
	SecurityDeposit2DDDate   *string          `json:"security_deposit_2_dd_date,omitempty"`
	SecurityDeposit2DDNumber *string          `json:"security_deposit_2_dd_number,omitempty"`
}

// SetDeposit1 fills the first security-deposit trio from one value.
func (p *TenderPayload) SetDeposit1(d SecurityDeposit) {
	p.SecurityDeposit1 = &d.Amount
	p.SecurityDeposit1DDDate = &d.DDDate
	p.SecurityDeposit1DDNumber = &d.DDNumber
}

// SetDeposit2 fills the second security-deposit trio from one value.
func (p *TenderPayload) SetDeposit2(d SecurityDeposit) {
	p.SecurityDeposit2 = &d.Amount
	p.SecurityDeposit2DDDate = &d.DDDate
	p.SecurityDeposit2DDNumber = &d.DDNumber
}

// TenderService covers /api/tenders/.
type TenderService struct {
	c *Client
}

func (s *TenderService) List(ctx context.Context, params ListParams) (*Page[Tender], error) {
	return list[Tender](ctx, s.c, "/api/tenders/", params)
}

func (s *TenderService) Get(ctx context.Context, id int) (*Tender, error) {
	t, err := request[Tender](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/tenders/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TenderService) Create(ctx context.Context, payload TenderPayload) (*Tender, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	t, err := request[Tender](ctx, s.c, http.MethodPost, "/api/tenders/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TenderService) Update(ctx context.Context, id int, payload TenderPayload) (*Tender, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	t, err := request[Tender](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/tenders/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TenderService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/tenders/%d/", id), nil)
}
