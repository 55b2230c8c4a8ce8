package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultEndpoint    = "/chat/completions"
	defaultMaxTokens   = 150
	defaultTemperature = 0.7
)

// Options configures a backend client. MaxAttempts and RetryPause only
// apply to the vision client.
type Options struct {
	BaseURL     string
	Endpoint    string
	Model       string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	RetryPause  time.Duration
}

func bearerHeader(key string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + key}
}

func parseCompletion(body []byte) (string, error) {
	var resp completionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
