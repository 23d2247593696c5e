package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// PayrollRecord is one employee's pay for one month. All amounts are
// computed server-side; the console only displays and approves them.
type PayrollRecord struct {
	ID           int             `json:"id"`
	Employee     int             `json:"employee"`
	EmployeeName string          `json:"employee_name"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
	Status       string          `json:"status"`
	PaidOn       *string         `json:"paid_on"`
}

// PayrollPayload is the create/update body for a payroll record.
type PayrollPayload struct {
	Employee    int             `json:"employee" validate:"required,gt=0"`
	Month       int             `json:"month" validate:"required,min=1,max=12"`
	Year        int             `json:"year" validate:"required,min=2000"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
}

// PayrollService covers /api/payroll/.
type PayrollService struct {
	c *Client
}

func (s *PayrollService) List(ctx context.Context, params ListParams) (*Page[PayrollRecord], error) {
	return list[PayrollRecord](ctx, s.c, "/api/payroll/", params)
}

// ListMonth lists records for one payroll period.
func (s *PayrollService) ListMonth(ctx context.Context, year, month int, params ListParams) (*Page[PayrollRecord], error) {
	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("year", strconv.Itoa(year))
	params.Extra.Set("month", strconv.Itoa(month))
	return s.List(ctx, params)
}

func (s *PayrollService) Get(ctx context.Context, id int) (*PayrollRecord, error) {
	rec, err := request[PayrollRecord](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/payroll/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PayrollService) Create(ctx context.Context, payload PayrollPayload) (*PayrollRecord, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	rec, err := request[PayrollRecord](ctx, s.c, http.MethodPost, "/api/payroll/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PayrollService) Update(ctx context.Context, id int, payload PayrollPayload) (*PayrollRecord, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	rec, err := request[PayrollRecord](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/payroll/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkPaid settles a record on the given date (YYYY-MM-DD).
func (s *PayrollService) MarkPaid(ctx context.Context, id int, paidOn string) (*PayrollRecord, error) {
	body := map[string]string{"status": "paid", "paid_on": paidOn}
	rec, err := request[PayrollRecord](ctx, s.c, http.MethodPatch, fmt.Sprintf("/api/payroll/%d/", id), nil, body)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PayrollService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/payroll/%d/", id), nil)
}
