package tilmash

import (
	"fmt"
	"strings"
)

// ProviderError indicates a single provider attempt failure (network error,
// timeout, upstream HTTP error).
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates a provider completed the exchange but returned
// no extractable completion text.
type EmptyResponseError struct {
	Detail string // Raw body excerpt when the response was not valid JSON
}

func (e *EmptyResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("empty response: %s", e.Detail)
	}
	return "empty response"
}

// FallbackError indicates every provider in the fallback chain failed. It
// carries one failure per attempted provider so callers can diagnose which
// leg failed and why.
type FallbackError struct {
	Failures []ProviderFailure
}

func (e *FallbackError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Provider + ": " + f.Message
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}
