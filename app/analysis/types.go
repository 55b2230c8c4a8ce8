package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind classifies the content of an analysis request.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "text"
}

// Request is built once per invocation and never persisted.
type Request struct {
	ID      uuid.UUID
	Content string
	Kind    Kind
}

func NewRequest(content string) Request {
	return Request{
		ID:      uuid.New(),
		Content: content,
		Kind:    Classify(content),
	}
}

// Result carries either the analysis text or a user-readable diagnostic.
type Result struct {
	Text        string
	Succeeded   bool
	ErrorDetail string
}

// Backend analyzes a single piece of content against a remote completion API.
type Backend interface {
	Analyze(ctx context.Context, content string) (string, error)
}

var ErrMissingCredential = errors.New("api key is not configured")

// StatusError reports a non-success HTTP status from a backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}
