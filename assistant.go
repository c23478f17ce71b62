package tilmash

import (
	"context"
	"errors"
)

// notConfiguredMessage is the attempt failure recorded for a provider that
// has no credential. Such providers are never contacted over the network.
const notConfiguredMessage = "not configured"

// ChatProvider is the interface for chat-completion backends.
type ChatProvider interface {
	// Complete sends a composed conversation and returns the reply text.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Name returns the engine name surfaced to callers (e.g., "GROQ").
	Name() string

	// Configured reports whether the provider has a credential.
	Configured() bool
}

// CompletionCache is the interface for optional completion caching.
type CompletionCache interface {
	// Get retrieves a cached completion. Returns empty string and false if
	// not found or expired.
	Get(key string) (string, bool)

	// Set stores a completion in the cache.
	Set(key string, value string) error
}

// Assistant composes prompts and invokes providers with ordered fallback.
// Each call is independent; the Assistant keeps no cross-request state
// beyond the optional cache.
type Assistant struct {
	primary   ChatProvider
	secondary ChatProvider
	cache     CompletionCache
}

// AssistantOption is a functional option for configuring the Assistant.
type AssistantOption func(*Assistant)

// WithCache enables completion caching. Caching is disabled by default.
func WithCache(cache CompletionCache) AssistantOption {
	return func(a *Assistant) {
		a.cache = cache
	}
}

// NewAssistant creates an Assistant that tries primary first and falls back
// to secondary.
func NewAssistant(primary, secondary ChatProvider, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		primary:   primary,
		secondary: secondary,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Complete runs the request against the primary provider and falls back to
// the secondary on any failure (missing credential, network error, timeout,
// or an unusable response). Attempts are strictly sequential; the first
// success short-circuits. When both legs fail, the returned error is a
// *FallbackError naming each provider and its failure.
func (a *Assistant) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	messages := Compose(req.Messages, req.TargetLang, req.Style)

	var key string
	if a.cache != nil {
		key = CacheKey(HashConversation(messages), req.TargetLang, req.Style)
		if cached, ok := a.cache.Get(key); ok {
			return &CompletionResult{Text: cached, Engine: EngineCache}, nil
		}
	}

	var failures []ProviderFailure
	for _, p := range []ChatProvider{a.primary, a.secondary} {
		if p == nil {
			continue
		}

		if !p.Configured() {
			failures = append(failures, ProviderFailure{Provider: p.Name(), Message: notConfiguredMessage})
			continue
		}

		text, err := p.Complete(ctx, messages)
		if err != nil {
			failures = append(failures, ProviderFailure{Provider: p.Name(), Message: attemptMessage(err)})
			continue
		}

		if a.cache != nil {
			_ = a.cache.Set(key, text) // Cache faults never fail the request
		}

		return &CompletionResult{Text: text, Engine: p.Name()}, nil
	}

	return nil, &FallbackError{Failures: failures}
}

// Primary returns the primary provider.
func (a *Assistant) Primary() ChatProvider {
	return a.primary
}

// Secondary returns the fallback provider.
func (a *Assistant) Secondary() ChatProvider {
	return a.secondary
}

// attemptMessage extracts a short failure description for the fallback
// report, without the error type prefixes.
func attemptMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Cause != nil {
			return pe.Message + ": " + pe.Cause.Error()
		}
		return pe.Message
	}

	var ee *EmptyResponseError
	if errors.As(err, &ee) {
		return ee.Error()
	}

	return err.Error()
}
