package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// uploadMultipart POSTs a file as a multipart form, outside the JSON
// request path. The CSRF token is attached like any mutating call; the
// Content-Type comes from the multipart writer, which owns the boundary.
func (c *Client) uploadMultipart(ctx context.Context, path, field, filename string, content []byte, extra map[string]string) (*Response, error) {
	c.EnsureCSRFToken(ctx)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", k, err)
		}
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", mimetype.Detect(content).String())
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("writing form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	u, err := c.buildURL(path, nil)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if token := c.cookies.Get(CSRFCookieName); token != "" {
		httpReq.Header.Set(CSRFHeaderName, token)
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
	return resp, nil
}

// download fetches a binary payload as-is, bypassing JSON parsing. Error
// responses are still normalized: a JSON error body becomes an HTTPError
// with the backend fields, anything else an HTTPError from the status.
func (c *Client) download(ctx context.Context, method, path string, body any) ([]byte, string, error) {
	var bodyReader io.Reader
	isMut := isMutating(method)
	if isMut {
		c.EnsureCSRFToken(ctx)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	u, err := c.buildURL(path, nil)
	if err != nil {
		return nil, "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	if isMut {
		if token := c.cookies.Get(CSRFCookieName); token != "" {
			httpReq.Header.Set(CSRFHeaderName, token)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", &NetworkError{URL: u.String(), Err: err}
	}
	defer httpResp.Body.Close()
	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "", &UnknownError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, "", newHTTPError(&Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: data})
	}
	return data, attachmentFilename(httpResp.Header.Get("Content-Disposition")), nil
}

// attachmentFilename pulls the suggested filename out of a
// Content-Disposition header, or returns "".
func attachmentFilename(disposition string) string {
	for _, part := range strings.Split(disposition, ";") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "filename="); ok {
			return strings.Trim(v, `"`)
		}
	}
	return ""
}
