package api

import (
	"context"
	"net/http"
)

// AuthService manages the backend session.
type AuthService struct {
	c *Client
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// User is the authenticated account as reported by the backend.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsStaff   bool   `json:"is_staff"`
}

// Login authenticates against the backend. It is special-cased outside
// the generic mutating path because it must succeed before any CSRF
// cookie exists: one best-effort pre-fetch runs first, and the POST goes
// out regardless of whether it produced a token, since the backend
// accepts the first POST and sets the session cookies in its response.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*User, error) {
	if err := s.c.validatePayload(creds); err != nil {
		return nil, err
	}
	s.c.EnsureCSRFToken(ctx)
	resp, err := s.c.send(ctx, Request{Method: http.MethodPost, Path: "/api/auth/login/", Body: creds})
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the backend session and unconditionally clears the local
// csrftoken and sessionid cookies, even when the backend call fails. A
// consistent logged-out console state wins over strict teardown; the
// backend error still propagates for display.
func (s *AuthService) Logout(ctx context.Context) error {
	err := requestNoContent(ctx, s.c, http.MethodPost, "/api/auth/logout/", nil)
	s.c.cookies.Clear(CSRFCookieName)
	s.c.cookies.Clear(SessionCookieName)
	return err
}

// Me returns the currently authenticated user.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	user, err := request[User](ctx, s.c, http.MethodGet, "/api/auth/user/", nil, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LoggedIn reports whether a session cookie is present locally. The
// backend remains the authority; this only guards UI affordances.
func (s *AuthService) LoggedIn() bool {
	return s.c.cookies.Get(SessionCookieName) != ""
}
