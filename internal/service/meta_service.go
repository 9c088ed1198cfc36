package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"devlog/internal/models"
	"devlog/internal/observability"
)

const metaSystemPrompt = "You are an expert SEO copywriter. Generate a concise, engaging 160-character meta description based on the provided text."

// MetaService calls the external text-generation gateway to produce SEO meta
// descriptions. The upstream is opaque: one request, no retries, failures
// surface as UPSTREAM_ERROR.
type MetaService struct {
	client     *http.Client
	gatewayURL string
	model      string
	token      string
}

// NewMetaService configures the upstream client. An empty gatewayURL leaves
// the feature disabled; calls then fail with an upstream error.
func NewMetaService(gatewayURL, model, token string) *MetaService {
	return &MetaService{
		client:     &http.Client{Timeout: 30 * time.Second},
		gatewayURL: gatewayURL,
		model:      model,
		token:      token,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type metaRequest struct {
	Messages []chatMessage `json:"messages"`
}

type metaResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
	Success bool `json:"success"`
}

// GenerateMeta asks the gateway for a meta description of content.
func (s *MetaService) GenerateMeta(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", models.NewValidationError("Content required")
	}
	if s.gatewayURL == "" {
		observability.MetaGenerations.WithLabelValues("disabled").Inc()
		return "", models.NewUpstreamError("AI generation is not configured", nil)
	}

	body, err := json.Marshal(metaRequest{
		Messages: []chatMessage{
			{Role: "system", Content: metaSystemPrompt},
			{Role: "user", Content: content},
		},
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}

	url := fmt.Sprintf("%s/%s", s.gatewayURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		observability.MetaGenerations.WithLabelValues("error").Inc()
		return "", models.NewUpstreamError("AI generation failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.MetaGenerations.WithLabelValues("error").Inc()
		return "", models.NewUpstreamError("AI generation failed",
			fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var parsed metaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		observability.MetaGenerations.WithLabelValues("error").Inc()
		return "", models.NewUpstreamError("AI generation failed", err)
	}
	if parsed.Result.Response == "" {
		observability.MetaGenerations.WithLabelValues("error").Inc()
		return "", models.NewUpstreamError("AI generation failed",
			fmt.Errorf("gateway returned an empty response"))
	}

	observability.MetaGenerations.WithLabelValues("success").Inc()
	return parsed.Result.Response, nil
}
