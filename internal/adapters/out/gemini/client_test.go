package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carcheck/internal/adapters/out/gemini"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	t.Run("should return the first candidate text", func(t *testing.T) {
		var gotPath, gotQuery string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"# Report\n\nLooks fine."}]}}]}`))
		}))
		defer server.Close()

		client := gemini.NewClient("test-key", gemini.WithBaseURL(server.URL))

		text, err := client.Generate(context.Background(), "describe the vehicle")

		require.NoError(t, err)
		assert.Equal(t, "# Report\n\nLooks fine.", text)
		assert.Equal(t, "/models/gemini-pro:generateContent", gotPath)
		assert.Equal(t, "key=test-key", gotQuery)
		assert.Contains(t, gotBody, "contents")
	})

	t.Run("should fail permanently without an api key", func(t *testing.T) {
		client := gemini.NewClient("")

		_, err := client.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUpstreamService)
		assert.False(t, errs.IsTransientUpstream(err))
	})

	t.Run("should treat auth failures as permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"invalid key"}`, http.StatusForbidden)
		}))
		defer server.Close()

		client := gemini.NewClient("bad-key", gemini.WithBaseURL(server.URL))

		_, err := client.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUpstreamService)
		assert.False(t, errs.IsTransientUpstream(err))
	})

	t.Run("should treat rate limiting and server errors as transient", func(t *testing.T) {
		for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			client := gemini.NewClient("test-key", gemini.WithBaseURL(server.URL))
			_, err := client.Generate(context.Background(), "prompt")
			server.Close()

			require.Error(t, err)
			assert.True(t, errs.IsTransientUpstream(err), "status %d should be transient", status)
		}
	})

	t.Run("should treat a timeout as transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := gemini.NewClient("test-key",
			gemini.WithBaseURL(server.URL), gemini.WithTimeout(20*time.Millisecond))

		_, err := client.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.True(t, errs.IsTransientUpstream(err))
	})

	t.Run("should fail on a response without candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := gemini.NewClient("test-key", gemini.WithBaseURL(server.URL))

		_, err := client.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUpstreamService)
		assert.False(t, errs.IsTransientUpstream(err))
	})
}
