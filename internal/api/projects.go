package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Project stages, matching the kanban columns of the web console.
const (
	ProjectStageEnquiry   = "enquiry"
	ProjectStageQuoted    = "quoted"
	ProjectStageOngoing   = "ongoing"
	ProjectStageCompleted = "completed"
	ProjectStageOnHold    = "on_hold"
)

// Project is a client engagement tracked on the kanban board.
type Project struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Client      int             `json:"client"`
	ClientName  string          `json:"client_name"`
	Stage       string          `json:"stage"`
	StartDate   string          `json:"start_date"`
	Deadline    string          `json:"deadline"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// ProjectPayload is the create/update body for a project.
type ProjectPayload struct {
	Name        string          `json:"name" validate:"required"`
	Client      int             `json:"client" validate:"required,gt=0"`
	Stage       string          `json:"stage,omitempty" validate:"omitempty,oneof=enquiry quoted ongoing completed on_hold"`
	StartDate   string          `json:"start_date,omitempty"`
	Deadline    string          `json:"deadline,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
}

// ProjectService covers /api/projects/.
type ProjectService struct {
	c *Client
}

func (s *ProjectService) List(ctx context.Context, params ListParams) (*Page[Project], error) {
	return list[Project](ctx, s.c, "/api/projects/", params)
}

// ListByStage filters the board down to one kanban column.
func (s *ProjectService) ListByStage(ctx context.Context, stage string, params ListParams) (*Page[Project], error) {
	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("stage", stage)
	return s.List(ctx, params)
}

func (s *ProjectService) Get(ctx context.Context, id int) (*Project, error) {
	p, err := request[Project](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/projects/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, payload ProjectPayload) (*Project, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	p, err := request[Project](ctx, s.c, http.MethodPost, "/api/projects/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Update(ctx context.Context, id int, payload ProjectPayload) (*Project, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	p, err := request[Project](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/projects/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Move changes only the stage of a project, the way a kanban card drag
// does, leaving the rest of the record untouched.
func (s *ProjectService) Move(ctx context.Context, id int, stage string) (*Project, error) {
	body := map[string]string{"stage": stage}
	p, err := request[Project](ctx, s.c, http.MethodPatch, fmt.Sprintf("/api/projects/%d/", id), nil, body)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/projects/%d/", id), nil)
}
