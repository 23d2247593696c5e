package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Notification is a backend-generated alert (AMC expiry, low stock,
// tender deadlines and the like).
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Level     string `json:"level"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// NotificationService covers /api/notifications/.
type NotificationService struct {
	c *Client
}

func (s *NotificationService) List(ctx context.Context, params ListParams) (*Page[Notification], error) {
	return list[Notification](ctx, s.c, "/api/notifications/", params)
}

// ListUnread lists only notifications not yet acknowledged.
func (s *NotificationService) ListUnread(ctx context.Context, params ListParams) (*Page[Notification], error) {
	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("read", "false")
	return s.List(ctx, params)
}

// MarkRead acknowledges a single notification.
func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	body := map[string]bool{"read": true}
	return requestNoContent(ctx, s.c, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/", id), body)
}

// MarkAllRead acknowledges everything outstanding.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return requestNoContent(ctx, s.c, http.MethodPost, "/api/notifications/mark-all-read/", nil)
}

func (s *NotificationService) Delete(ctx context.Context, id int) error {
	return requestNoContent(ctx, s.c, http.MethodDelete, fmt.Sprintf("/api/notifications/%d/", id), nil)
}
