package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGemini(context.Background(), "test-key", "gemini-2.0-flash", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return g
}

func TestGemini_Complete(t *testing.T) {
	var gotPath, gotPrompt string
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.Unmarshal(body, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"No visa needed for short stays."}]}}]}`)
	})

	answer, err := g.Complete(context.Background(), "Do I need a visa for France?")
	require.NoError(t, err)
	assert.Equal(t, "No visa needed for short stays.", answer)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-2.0-flash:generateContent"), "path %q", gotPath)
	assert.Equal(t, "Do I need a visa for France?", gotPrompt)
}

func TestGemini_UpstreamError(t *testing.T) {
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := g.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generate content")
}

func TestGemini_EmptyCompletion(t *testing.T) {
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := g.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleterFunc(t *testing.T) {
	var c Completer = CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		return strings.ToUpper(prompt), nil
	})

	got, err := c.Complete(context.Background(), "paris")
	require.NoError(t, err)
	assert.Equal(t, "PARIS", got)
}
