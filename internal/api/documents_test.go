package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUploadVersionMultipart checks the upload goes out as multipart
// form data with the CSRF header and the file content intact.
func TestUploadVersionMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok"})
			w.Write([]byte(`{}`))
			return
		}
		assert.Equal(t, "/api/documents/5/versions/", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get(CSRFHeaderName))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "quotation-format.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7 stub", string(content))
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 31, "template": 5, "version": 3, "file_name": "quotation-format.pdf", "file_size": 13}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	version, err := c.Documents.UploadVersion(context.Background(), 5, "quotation-format.pdf", []byte("%PDF-1.7 stub"))
	require.NoError(t, err)
	assert.Equal(t, 3, version.Version)
	assert.Equal(t, "quotation-format.pdf", version.FileName)
}

// TestDownloadVersion checks the binary path: raw bytes returned
// untouched, filename picked from Content-Disposition.
func TestDownloadVersion(t *testing.T) {
	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x00}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/versions/31/download/", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="quotation-format-v3.pdf"`)
		w.Write(payload)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	dl, err := c.Documents.DownloadVersion(context.Background(), 31)
	require.NoError(t, err)
	assert.Equal(t, "quotation-format-v3.pdf", dl.FileName)
	assert.Equal(t, payload, dl.Data)
}

// TestDownloadErrorIsNormalized checks a JSON error body on the binary
// path still yields an HTTPError with the backend fields.
func TestDownloadErrorIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "version not found"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Documents.DownloadVersion(context.Background(), 999)
	httpErr, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "version not found", httpErr.Message)
	assert.True(t, IsNotFound(err))
}

// TestBulkExportPostsSelection checks the export request body and that
// the archive comes back with its suggested name.
func TestBulkExportPostsSelection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok"})
			w.Write([]byte(`{}`))
			return
		}
		assert.Equal(t, "/api/documents/export/", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get(CSRFHeaderName))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ids": [5, 9]}`, string(raw))
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="templates.zip"`)
		w.Write([]byte("PK"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	dl, err := c.Documents.BulkExport(context.Background(), []int{5, 9})
	require.NoError(t, err)
	assert.Equal(t, "templates.zip", dl.FileName)
	assert.Equal(t, []byte("PK"), dl.Data)
}
