package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUpstreamError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
}

func TestMetaServiceGenerateMeta(t *testing.T) {
	t.Parallel()

	t.Run("returns the gateway response for valid content", func(t *testing.T) {
		t.Parallel()

		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "/@cf/meta/llama-3-8b-instruct"))
			assert.Equal(t, "Bearer gw-token", r.Header.Get("Authorization"))

			var payload struct {
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			require.Len(t, payload.Messages, 2)
			assert.Equal(t, "system", payload.Messages[0].Role)
			assert.Equal(t, "user", payload.Messages[1].Role)
			assert.Equal(t, "Post body about Go generics.", payload.Messages[1].Content)

			json.NewEncoder(w).Encode(map[string]any{
				"result":  map[string]string{"response": "A concise look at Go generics in practice."},
				"success": true,
			})
		}))
		defer gateway.Close()

		svc := NewMetaService(gateway.URL, "@cf/meta/llama-3-8b-instruct", "gw-token")

		summary, err := svc.GenerateMeta(context.Background(), "Post body about Go generics.")
		require.NoError(t, err)
		assert.Equal(t, "A concise look at Go generics in practice.", summary)
	})

	t.Run("rejects empty content before calling the gateway", func(t *testing.T) {
		t.Parallel()

		gateway := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("gateway must not be called for empty content")
		}))
		defer gateway.Close()

		svc := NewMetaService(gateway.URL, "@cf/meta/llama-3-8b-instruct", "")

		_, err := svc.GenerateMeta(context.Background(), "")
		assertValidationError(t, err)
	})

	t.Run("unconfigured gateway is an upstream failure", func(t *testing.T) {
		t.Parallel()

		svc := NewMetaService("", "@cf/meta/llama-3-8b-instruct", "")

		_, err := svc.GenerateMeta(context.Background(), "some content")
		assertUpstreamError(t, err)
	})

	t.Run("non-200 gateway status is an upstream failure", func(t *testing.T) {
		t.Parallel()

		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer gateway.Close()

		svc := NewMetaService(gateway.URL, "@cf/meta/llama-3-8b-instruct", "")

		_, err := svc.GenerateMeta(context.Background(), "some content")
		assertUpstreamError(t, err)
	})

	t.Run("empty gateway response is an upstream failure", func(t *testing.T) {
		t.Parallel()

		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"result":  map[string]string{"response": ""},
				"success": true,
			})
		}))
		defer gateway.Close()

		svc := NewMetaService(gateway.URL, "@cf/meta/llama-3-8b-instruct", "")

		_, err := svc.GenerateMeta(context.Background(), "some content")
		assertUpstreamError(t, err)
	})

	t.Run("malformed gateway body is an upstream failure", func(t *testing.T) {
		t.Parallel()

		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer gateway.Close()

		svc := NewMetaService(gateway.URL, "@cf/meta/llama-3-8b-instruct", "")

		_, err := svc.GenerateMeta(context.Background(), "some content")
		assertUpstreamError(t, err)
	})
}
