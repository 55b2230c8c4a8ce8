package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"GoHumorAI/app/utils"
)

const (
	DefaultMaxInputChars  = 500
	DefaultMaxOutputChars = 2000
)

type Limits struct {
	MaxInputChars  int
	MaxOutputChars int
}

func DefaultLimits() Limits {
	return Limits{
		MaxInputChars:  DefaultMaxInputChars,
		MaxOutputChars: DefaultMaxOutputChars,
	}
}

// Dispatcher routes a request to the text or vision backend and converts
// every failure into a user-readable Result. It never returns an error to
// the presentation layer.
type Dispatcher struct {
	text   Backend
	vision Backend
	limits Limits
}

func NewDispatcher(text, vision Backend, limits Limits) *Dispatcher {
	if limits.MaxInputChars <= 0 {
		limits.MaxInputChars = DefaultMaxInputChars
	}
	if limits.MaxOutputChars <= 0 {
		limits.MaxOutputChars = DefaultMaxOutputChars
	}
	return &Dispatcher{
		text:   text,
		vision: vision,
		limits: limits,
	}
}

func (d *Dispatcher) Analyze(ctx context.Context, req Request) Result {
	if req.Kind == KindText && utf8.RuneCountInString(req.Content) > d.limits.MaxInputChars {
		log.Printf("⚠️ Request %s rejected: input over %d characters", req.ID, d.limits.MaxInputChars)
		return Result{
			ErrorDetail: fmt.Sprintf("❌ That joke is too long! Keep it under %d characters", d.limits.MaxInputChars),
		}
	}

	backend := d.text
	if req.Kind == KindImage {
		backend = d.vision
	}

	text, err := backend.Analyze(ctx, req.Content)
	if err != nil {
		log.Printf("❌ Request %s (%s) failed: %v", req.ID, req.Kind, err)
		return Result{ErrorDetail: diagnostic(err)}
	}

	log.Printf("✅ Request %s (%s) analyzed", req.ID, req.Kind)
	return Result{
		Text:      utils.TruncateRunes(strings.TrimSpace(text), d.limits.MaxOutputChars),
		Succeeded: true,
	}
}

func diagnostic(err error) string {
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrMissingCredential):
		return "❌ Analysis API key is not configured"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("❌ API error (status code: %d)", statusErr.Code)
	default:
		return fmt.Sprintf("❌ Analysis failed: %v", err)
	}
}
