package api

import (
	"context"
	"fmt"
	"net/http"
)

// DocumentTemplate is a reusable office document (quotation formats,
// AMC certificates, tender cover letters) with versioned files.
type DocumentTemplate struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	CurrentVersion int    `json:"current_version"`
	UpdatedAt      string `json:"updated_at"`
}

// TemplateVersion is one uploaded file of a template.
type TemplateVersion struct {
	ID         int    `json:"id"`
	Template   int    `json:"template"`
	Version    int    `json:"version"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	UploadedAt string `json:"uploaded_at"`
}

// TemplatePayload is the create/update body for template metadata.
type TemplatePayload struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// Download is a fetched binary with its server-suggested filename.
type Download struct {
	FileName string
	Data     []byte
}

// DocumentService covers /api/documents/ including the non-JSON upload
// and download endpoints.
type DocumentService struct {
	c *Client
}

func (s *DocumentService) List(ctx context.Context, params ListParams) (*Page[DocumentTemplate], error) {
	return list[DocumentTemplate](ctx, s.c, "/api/documents/", params)
}

func (s *DocumentService) Get(ctx context.Context, id int) (*DocumentTemplate, error) {
	t, err := request[DocumentTemplate](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/documents/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DocumentService) Create(ctx context.Context, payload TemplatePayload) (*DocumentTemplate, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	t, err := request[DocumentTemplate](ctx, s.c, http.MethodPost, "/api/documents/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DocumentService) Update(ctx context.Context, id int, payload TemplatePayload) (*DocumentTemplate, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	t, err := request[DocumentTemplate](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/documents/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DocumentService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/documents/%d/", id), nil)
}

// Versions lists the upload history of a template.
func (s *DocumentService) Versions(ctx context.Context, id int) ([]TemplateVersion, error) {
	return request[[]TemplateVersion](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/documents/%d/versions/", id), nil, nil)
}

// UploadVersion pushes a new file revision of a template.
func (s *DocumentService) UploadVersion(ctx context.Context, id int, filename string, content []byte) (*TemplateVersion, error) {
	resp, err := s.c.uploadMultipart(ctx, fmt.Sprintf("/api/documents/%d/versions/", id), "file", filename, content, nil)
	if err != nil {
		return nil, err
	}
	var version TemplateVersion
	if err := decodeJSON(resp, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// DownloadVersion fetches one stored revision as raw bytes.
func (s *DocumentService) DownloadVersion(ctx context.Context, versionID int) (*Download, error) {
	data, name, err := s.c.download(ctx, http.MethodGet, fmt.Sprintf("/api/documents/versions/%d/download/", versionID), nil)
	if err != nil {
		return nil, err
	}
	return &Download{FileName: name, Data: data}, nil
}

// BulkExport fetches an archive of the latest version of the selected
// templates (all templates when ids is empty).
func (s *DocumentService) BulkExport(ctx context.Context, ids []int) (*Download, error) {
	body := map[string][]int{"ids": ids}
	data, name, err := s.c.download(ctx, http.MethodPost, "/api/documents/export/", body)
	if err != nil {
		return nil, err
	}
	return &Download{FileName: name, Data: data}, nil
}
