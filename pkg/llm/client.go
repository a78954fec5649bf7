package llm

import (
	"context"
	"fmt"
)

// TextProcessor produces the three derived artifacts for one input text.
// Each method is a single round trip to the language model provider.
type TextProcessor interface {
	Summarize(ctx context.Context, text string) (string, error)
	ExtractKeywords(ctx context.Context, text string) ([]string, error)
	AnalyzeSentiment(ctx context.Context, text string) (string, error)
}

// ProviderError wraps any failure talking to the model provider: transport
// errors, non-success API responses, or replies missing the expected fields.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error during %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
