package models

import (
	"context"
	"fmt"
	"net/http"

	"GoHumorAI/app/analysis"
	"GoHumorAI/app/utils/restclient"
)

var _ analysis.Backend = &TextClient{}

// TextClient analyzes freeform text against a chat completion endpoint.
// A single attempt per request; a non-2xx status surfaces as StatusError.
type TextClient struct {
	rest        restclient.Interface
	endpoint    string
	model       string
	apiKey      string
	maxTokens   int
	temperature float64
}

func NewTextClient(opts Options) *TextClient {
	if opts.Endpoint == "" {
		opts.Endpoint = defaultEndpoint
	}
	return &TextClient{
		rest:        restclient.NewRestClient(opts.BaseURL, nil, opts.Timeout),
		endpoint:    opts.Endpoint,
		model:       opts.Model,
		apiKey:      opts.APIKey,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

func (c *TextClient) Analyze(ctx context.Context, content string) (string, error) {
	if c.apiKey == "" {
		return "", analysis.ErrMissingCredential
	}

	payload := requestPayload{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: AnalysisSystemPrompt},
			{Role: "user", Content: content},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	body, status, err := c.rest.Post(ctx, c.endpoint, payload, bearerHeader(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("text completion request: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", &analysis.StatusError{Code: status}
	}

	return parseCompletion(body)
}
