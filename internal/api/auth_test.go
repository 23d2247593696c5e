package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoginSetsSession checks the happy path: pre-fetch obtains the CSRF
// cookie, the POST carries it, and the session cookie is captured.
func TestLoginSetsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/auth/csrf/":
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "fresh"})
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login/":
			assert.Equal(t, "fresh", r.Header.Get(CSRFHeaderName))
			var creds Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "ops", creds.Username)
			http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "sess-9"})
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 3, "username": "ops", "first_name": "Ops", "last_name": "Admin"}`))
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	user, err := c.Auth.Login(context.Background(), Credentials{Username: "ops", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ops", user.Username)
	assert.Equal(t, "sess-9", c.Cookies().Get(SessionCookieName))
	assert.True(t, c.Auth.LoggedIn())
}

// TestLoginProceedsWithoutCSRF checks that the login POST is sent even
// when the pre-fetch produced no cookie: the backend is expected to
// accept the first POST and set the cookies in its response.
func TestLoginProceedsWithoutCSRF(t *testing.T) {
	var posts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPost:
			posts++
			assert.Empty(t, r.Header.Get(CSRFHeaderName))
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "late"})
			http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "sess"})
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 1, "username": "ops"}`))
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Auth.Login(context.Background(), Credentials{Username: "ops", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 1, posts)
	assert.Equal(t, "late", c.Cookies().Get(CSRFCookieName))
}

// TestLoginRejectsEmptyCredentials checks local validation.
func TestLoginRejectsEmptyCredentials(t *testing.T) {
	c := newTestClient(t, "http://localhost:8000")
	_, err := c.Auth.Login(context.Background(), Credentials{Username: "ops"})
	assert.Error(t, err)
}

// TestLogoutClearsCookiesLocally checks the normal teardown.
func TestLogoutClearsCookiesLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	c.Cookies().SetCookies(nil, []*http.Cookie{
		{Name: CSRFCookieName, Value: "tok"},
		{Name: SessionCookieName, Value: "sess"},
	})

	require.NoError(t, c.Auth.Logout(context.Background()))
	assert.Empty(t, c.Cookies().Get(CSRFCookieName))
	assert.Empty(t, c.Cookies().Get(SessionCookieName))
	assert.False(t, c.Auth.LoggedIn())
}

// TestLogoutClearsCookiesOnBackendFailure checks that local state is
// cleared even when the backend rejects the logout, with the backend
// error still propagated.
func TestLogoutClearsCookiesOnBackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "session backend unavailable"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	c.Cookies().SetCookies(nil, []*http.Cookie{
		{Name: CSRFCookieName, Value: "tok"},
		{Name: SessionCookieName, Value: "sess"},
	})

	err := c.Auth.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, c.Cookies().Get(CSRFCookieName))
	assert.Empty(t, c.Cookies().Get(SessionCookieName))
}

// TestMe checks the current-user lookup.
func TestMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/user/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 3, "username": "ops", "email": "ops@electrocom.in"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	user, err := c.Auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops@electrocom.in", user.Email)
}
