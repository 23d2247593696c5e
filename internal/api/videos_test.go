package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVideoCreateSendsRankZero checks the create body carries exactly
// title, youtube_url and rank, with rank present even at zero. Dropping
// a zero rank would let the backend assign its own position.
func TestVideoCreateSendsRankZero(t *testing.T) {
	var body map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok"})
			w.Write([]byte(`{}`))
			return
		}
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1, "title": "Panel wiring basics", "youtube_url": "https://www.youtube.com/watch?v=abc123", "rank": 0}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	video, err := c.Videos.Create(context.Background(), VideoPayload{
		Title:      "Panel wiring basics",
		YouTubeURL: "https://www.youtube.com/watch?v=abc123",
		Rank:       0,
	})
	require.NoError(t, err)

	assert.Len(t, body, 3)
	assert.JSONEq(t, `0`, string(body["rank"]))
	assert.JSONEq(t, `"Panel wiring basics"`, string(body["title"]))
	assert.JSONEq(t, `"https://www.youtube.com/watch?v=abc123"`, string(body["youtube_url"]))
	assert.Equal(t, 0, video.Rank)
}

// TestVideoReorderPatchesRankOnly checks Reorder sends a single-field
// PATCH and leaves shifting neighbors to the backend.
func TestVideoReorderPatchesRankOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok"})
			w.Write([]byte(`{}`))
			return
		}
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/videos/7/", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rank": 2}`, string(raw))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "title": "Earthing checks", "youtube_url": "https://youtu.be/xyz", "rank": 2}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	video, err := c.Videos.Reorder(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, video.Rank)
}

// TestVideoCreateRejectsBadURL checks the url validator fires locally.
func TestVideoCreateRejectsBadURL(t *testing.T) {
	c := newTestClient(t, "http://localhost:8000")
	_, err := c.Videos.Create(context.Background(), VideoPayload{
		Title:      "Panel wiring basics",
		YouTubeURL: "not a url",
	})
	assert.Error(t, err)
}
