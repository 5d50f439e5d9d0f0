package aiquiz_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/aiquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path string
	body string
}

func geminiServer(t *testing.T, status int, payload any) (*httptest.Server, *capturedRequest) {
	t.Helper()
	seen := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen.path = r.URL.Path
		seen.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func newTestProvider(t *testing.T, srv *httptest.Server) aiquiz.Provider {
	t.Helper()
	p, err := aiquiz.NewGeminiProvider(context.Background(), aiquiz.ProviderOptions{
		APIKey:     "test-key",
		Model:      "gemini-test",
		BaseURL:    srv.URL + "/",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return p
}

func candidate(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	p, err := aiquiz.NewGeminiProvider(context.Background(), aiquiz.ProviderOptions{})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, aiquiz.ErrConfiguration)
}

func TestGeminiProvider_SendPrompt(t *testing.T) {
	t.Run("ReturnsCandidateText", func(t *testing.T) {
		srv, seen := geminiServer(t, http.StatusOK, candidate("```json\n[]\n```"))
		p := newTestProvider(t, srv)

		text, err := p.SendPrompt(context.Background(), "hello prompt")
		require.NoError(t, err)
		assert.Equal(t, "```json\n[]\n```", text)
		assert.Contains(t, seen.path, "gemini-test:generateContent")
		assert.Contains(t, seen.body, "hello prompt")
	})

	t.Run("NonSuccessStatusIsRemoteCallError", func(t *testing.T) {
		srv, _ := geminiServer(t, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"code": 500, "message": "backend exploded", "status": "INTERNAL"},
		})
		p := newTestProvider(t, srv)

		_, err := p.SendPrompt(context.Background(), "hello prompt")
		assert.ErrorIs(t, err, aiquiz.ErrRemoteCall)
	})

	t.Run("NoCandidatesIsMalformed", func(t *testing.T) {
		srv, _ := geminiServer(t, http.StatusOK, map[string]any{"candidates": []any{}})
		p := newTestProvider(t, srv)

		_, err := p.SendPrompt(context.Background(), "hello prompt")
		assert.ErrorIs(t, err, aiquiz.ErrMalformedResponse)
	})
}
