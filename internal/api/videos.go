package api

import (
	"context"
	"fmt"
	"net/http"
)

// TrainingVideo is an entry in the training library, ordered by rank
// ascending (rank 0 sorts first).
type TrainingVideo struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	YouTubeURL string `json:"youtube_url"`
	Rank       int    `json:"rank"`
	CreatedAt  string `json:"created_at"`
}

// VideoPayload is the create/update body. Rank deliberately has no
// omitempty: rank 0 is a meaningful position and must reach the wire.
type VideoPayload struct {
	Title      string `json:"title" validate:"required"`
	YouTubeURL string `json:"youtube_url" validate:"required,url"`
	Rank       int    `json:"rank" validate:"gte=0"`
}

// VideoService covers /api/videos/.
type VideoService struct {
	c *Client
}

// List returns the library rank-ordered.
func (s *VideoService) List(ctx context.Context, params ListParams) (*Page[TrainingVideo], error) {
	return list[TrainingVideo](ctx, s.c, "/api/videos/", params)
}

func (s *VideoService) Get(ctx context.Context, id int) (*TrainingVideo, error) {
	v, err := request[TrainingVideo](ctx, s.c, http.MethodGet, fmt.Sprintf("/api/videos/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VideoService) Create(ctx context.Context, payload VideoPayload) (*TrainingVideo, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	v, err := request[TrainingVideo](ctx, s.c, http.MethodPost, "/api/videos/", nil, payload)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VideoService) Update(ctx context.Context, id int, payload VideoPayload) (*TrainingVideo, error) {
	if err := s.c.validatePayload(payload); err != nil {
		return nil, err
	}
	v, err := request[TrainingVideo](ctx, s.c, http.MethodPut, fmt.Sprintf("/api/videos/%d/", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Reorder moves a video to a new rank; the backend shifts neighbors.
func (s *VideoService) Reorder(ctx context.Context, id, rank int) (*TrainingVideo, error) {
	body := map[string]int{"rank": rank}
	v, err := request[TrainingVideo](ctx, s.c, http.MethodPatch, fmt.Sprintf("/api/videos/%d/", id), nil, body)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VideoService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/videos/%d/", id), nil)
}
