// Package api is the typed client for the Electrocom ERP REST backend.
// It provides one reusable request path for every backend call: session
// cookie auth, CSRF header injection on mutating verbs, JSON
// (de)serialization, and a uniform error taxonomy. Per-resource services
// (clients, AMCs, tenders, projects, resources, payroll, notifications,
// training videos, document templates, firms) are thin typed wrappers
// over that path.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCSRFPath = "/api/auth/csrf/"

// Config configures a Client.
type Config struct {
	// BaseURL is the backend root, e.g. "https://erp.example.com".
	BaseURL string
	// CSRFPath is the public endpoint fetched (best effort) to induce the
	// backend to set the csrftoken cookie when none is present yet.
	CSRFPath string
	// Cookies holds the session state. Defaults to an in-memory store.
	Cookies *CookieStore
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
	// UserAgent defaults to "erp-console/1.0".
	UserAgent string
}

// Client is the API façade. It is stateless apart from the cookie store
// it owns; every call is fire-once with no retries, timeouts, or backoff,
// which is acceptable for an interactively driven console.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	cookies    *CookieStore
	csrfPath   string
	userAgent  string
	logger     *zap.Logger
	validate   *validator.Validate

	// Per-resource services.
	Auth          *AuthService
	Clients       *ClientService
	AMCs          *AMCService
	Tenders       *TenderService
	Projects      *ProjectService
	Resources     *ResourceService
	Payroll       *PayrollService
	Notifications *NotificationService
	Videos        *VideoService
	Documents     *DocumentService
	Firms         *FirmService
}

// New creates a Client for the given backend.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", cfg.BaseURL)
	}

	cookies := cfg.Cookies
	if cookies == nil {
		cookies = NewCookieStore()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	// The store doubles as the jar so the transport captures Set-Cookie
	// and replays the session cookie without per-call plumbing.
	httpClient.Jar = cookies

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	csrfPath := cfg.CSRFPath
	if csrfPath == "" {
		csrfPath = defaultCSRFPath
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "erp-console/1.0"
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    base,
		cookies:    cookies,
		csrfPath:   csrfPath,
		userAgent:  userAgent,
		logger:     logger,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	c.Auth = &AuthService{c: c}
	c.Clients = &ClientService{c: c}
	c.AMCs = &AMCService{c: c}
	c.Tenders = &TenderService{c: c}
	c.Projects = &ProjectService{c: c}
	c.Resources = &ResourceService{c: c}
	c.Payroll = &PayrollService{c: c}
	c.Notifications = &NotificationService{c: c}
	c.Videos = &VideoService{c: c}
	c.Documents = &DocumentService{c: c}
	c.Firms = &FirmService{c: c}
	return c, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Cookies exposes the session cookie store.
func (c *Client) Cookies() *CookieStore { return c.cookies }

// Request describes one backend call. All per-resource methods reduce to
// this shape before hitting the wire.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Response is a raw backend response after error normalization.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// Do executes a request through the generic path. For mutating verbs it
// ensures (best effort, exactly one pre-fetch) that a CSRF token is
// available first. A non-2xx response comes back as an *HTTPError; the
// returned Response is only populated for 2xx.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if isMutating(req.Method) {
		c.EnsureCSRFToken(ctx)
	}
	return c.send(ctx, req)
}

// EnsureCSRFToken makes one best-effort attempt to obtain the csrftoken
// cookie if it is not already present. Failure is non-fatal: the primary
// request proceeds without a token and the backend decides.
func (c *Client) EnsureCSRFToken(ctx context.Context) {
	if c.cookies.Get(CSRFCookieName) != "" {
		return
	}
	if _, err := c.send(ctx, Request{Method: http.MethodGet, Path: c.csrfPath}); err != nil {
		c.logger.Debug("csrf pre-fetch failed, proceeding without token", zap.Error(err))
	}
}

// send is the low-level fire-once path: build URL, marshal body, attach
// headers and the current CSRF token, execute, normalize errors.
func (c *Client) send(ctx context.Context, req Request) (*Response, error) {
	u, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if isMutating(req.Method) {
		// Read fresh from the store per call; a login or pre-fetch since
		// the last request may have rotated the token.
		if token := c.cookies.Get(CSRFCookieName); token != "" {
			httpReq.Header.Set(CSRFHeaderName, token)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{URL: u.String(), Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: body}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, newHTTPError(resp)
	}

	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", httpResp.StatusCode))
	return resp, nil
}

// newHTTPError builds the error for a non-2xx response. A JSON body is
// raised with the backend-supplied fields unmodified; anything else is
// constructed from the status code alone.
func newHTTPError(resp *Response) *HTTPError {
	he := &HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	if !isJSON(resp.Header.Get("Content-Type")) {
		return he
	}
	var fields map[string]any
	if err := json.Unmarshal(resp.Body, &fields); err != nil {
		return he
	}
	he.Fields = fields
	for _, key := range []string{"message", "error", "detail"} {
		if v, ok := fields[key].(string); ok && v != "" {
			he.Message = v
			break
		}
	}
	return he
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func (c *Client) buildURL(path string, query url.Values) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u, nil
}

// request executes through the generic path and decodes a JSON result.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T
	resp, err := c.Do(ctx, Request{Method: method, Path: path, Query: query, Body: body})
	if err != nil {
		return out, err
	}
	if err := decodeJSON(resp, &out); err != nil {
		return out, err
	}
	return out, nil
}

// requestNoContent executes a call whose success response carries no
// meaningful body (DELETE, mark-read style endpoints).
func requestNoContent(ctx context.Context, c *Client, method, path string, body any) error {
	_, err := c.Do(ctx, Request{Method: method, Path: path, Body: body})
	return err
}

func decodeJSON(resp *Response, out any) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &ParseError{ContentType: resp.Header.Get("Content-Type"), Err: err}
	}
	return nil
}

func (c *Client) validatePayload(payload any) error {
	if err := c.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
