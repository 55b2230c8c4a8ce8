package models

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"GoHumorAI/app/analysis"
	"GoHumorAI/app/utils/restclient"
)

const (
	defaultVisionAttempts = 3
	defaultRetryPause     = 2 * time.Second
)

var _ analysis.Backend = &VisionClient{}

// VisionClient analyzes image URLs against a multimodal completion
// endpoint. Failed attempts are retried with a fixed pause in between.
type VisionClient struct {
	rest        restclient.Interface
	endpoint    string
	model       string
	apiKey      string
	maxTokens   int
	temperature float64
	maxAttempts int
	retryPause  time.Duration
}

func NewVisionClient(opts Options) *VisionClient {
	if opts.Endpoint == "" {
		opts.Endpoint = defaultEndpoint
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultVisionAttempts
	}
	if opts.RetryPause <= 0 {
		opts.RetryPause = defaultRetryPause
	}
	return &VisionClient{
		rest:        restclient.NewRestClient(opts.BaseURL, nil, opts.Timeout),
		endpoint:    opts.Endpoint,
		model:       opts.Model,
		apiKey:      opts.APIKey,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		maxAttempts: opts.MaxAttempts,
		retryPause:  opts.RetryPause,
	}
}

func (c *VisionClient) Analyze(ctx context.Context, imageRef string) (string, error) {
	if c.apiKey == "" {
		return "", analysis.ErrMissingCredential
	}

	payload := requestPayload{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: AnalysisSystemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: ImageUserPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: imageRef}},
			}},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryPause):
			}
		}

		body, status, err := c.rest.Post(ctx, c.endpoint, payload, bearerHeader(c.apiKey))
		if err != nil {
			lastErr = err
			log.Printf("⚠️ Vision attempt %d/%d failed: %v", attempt, c.maxAttempts, err)
			continue
		}
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			lastErr = &analysis.StatusError{Code: status}
			log.Printf("⚠️ Vision attempt %d/%d failed: status %d", attempt, c.maxAttempts, status)
			continue
		}

		return parseCompletion(body)
	}

	return "", fmt.Errorf("vision analysis failed after %d attempts: %w", c.maxAttempts, lastErr)
}
