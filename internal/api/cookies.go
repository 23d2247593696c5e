package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cookie names set by the backend session framework. The header/cookie
// naming is part of the wire contract and must not change.
const (
	CSRFCookieName    = "csrftoken"
	SessionCookieName = "sessionid"
	CSRFHeaderName    = "X-CSRFToken"
)

// CookieStore is the session state owned by the Client. It stands in for
// the browser's cookie store: the backend sets sessionid/csrftoken via
// Set-Cookie and the store mirrors them back on every request. It tracks
// a single backend host, which is all the console ever talks to.
//
// The store implements http.CookieJar so the underlying http.Client
// captures and replays cookies without any per-call plumbing, and adds
// named lookup and removal on top for CSRF mirroring and logout.
type CookieStore struct {
	mu      sync.RWMutex
	cookies map[string]storedCookie
	path    string // empty for in-memory stores
}

type storedCookie struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// NewCookieStore returns an in-memory store.
func NewCookieStore() *CookieStore {
	return &CookieStore{cookies: make(map[string]storedCookie)}
}

// OpenCookieStore returns a store backed by a JSON file so the session
// survives between console invocations. A missing file is an empty store.
func OpenCookieStore(path string) (*CookieStore, error) {
	s := &CookieStore{cookies: make(map[string]storedCookie), path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.cookies); err != nil {
		// A corrupt session file should not brick the console; start fresh.
		s.cookies = make(map[string]storedCookie)
	}
	return s, nil
}

// SetCookies records cookies from a response. Expired cookies and
// MaxAge<0 are deletions, matching browser behavior.
func (s *CookieStore) SetCookies(_ *url.URL, cookies []*http.Cookie) {
	s.mu.Lock()
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		expired := c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now()))
		if expired {
			delete(s.cookies, c.Name)
			continue
		}
		sc := storedCookie{Value: c.Value}
		if c.MaxAge > 0 {
			sc.Expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		} else if !c.Expires.IsZero() {
			sc.Expires = c.Expires
		}
		s.cookies[c.Name] = sc
	}
	s.mu.Unlock()
	s.persist()
}

// Cookies returns the live cookies for an outgoing request.
func (s *CookieStore) Cookies(_ *url.URL) []*http.Cookie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*http.Cookie, 0, len(s.cookies))
	for name, sc := range s.cookies {
		if !sc.Expires.IsZero() && sc.Expires.Before(time.Now()) {
			continue
		}
		out = append(out, &http.Cookie{Name: name, Value: sc.Value})
	}
	return out
}

// Get returns the current value of a named cookie, or "" if absent or
// expired. The CSRF token is read through here fresh before every
// mutating request rather than cached on the client.
func (s *CookieStore) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.cookies[name]
	if !ok {
		return ""
	}
	if !sc.Expires.IsZero() && sc.Expires.Before(time.Now()) {
		return ""
	}
	return sc.Value
}

// Clear removes a named cookie locally. Used by logout, which clears the
// session state regardless of whether the backend call succeeded.
func (s *CookieStore) Clear(name string) {
	s.mu.Lock()
	delete(s.cookies, name)
	s.mu.Unlock()
	s.persist()
}

func (s *CookieStore) persist() {
	if s.path == "" {
		return
	}
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cookies, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	// Session cookies are credentials; keep the file private.
	_ = os.WriteFile(s.path, data, 0o600)
}
