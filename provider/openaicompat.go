package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/qazaqlabs/tilmash"
)

// Engine names surfaced to callers.
const (
	EngineGroq     = "GROQ"
	EngineDeepSeek = "DEEPSEEK"
)

const (
	groqEndpoint     = "https://api.groq.com/openai/v1/chat/completions"
	deepseekEndpoint = "https://api.deepseek.com/chat/completions"

	groqDefaultModel     = "llama-3.3-70b-versatile"
	deepseekDefaultModel = "deepseek-chat"

	// The primary leg fails fast so the fallback still fits in the caller's
	// patience; the fallback leg gets a longer budget.
	groqDefaultTimeout     = 6500 * time.Millisecond
	deepseekDefaultTimeout = 8500 * time.Millisecond
)

// errorExcerptLimit caps how much of an unparseable response body is carried
// into the failure message.
const errorExcerptLimit = 300

// Config holds configuration for an OpenAI-compatible provider.
type Config struct {
	Name     string        // Engine name surfaced to callers (e.g., "GROQ")
	Endpoint string        // Chat-completions URL
	APIKey   string        // Bearer token; empty disables the provider
	Model    string        // Model name sent upstream
	Timeout  time.Duration // Hard deadline for one call
}

// OpenAICompatProvider calls one OpenAI-compatible chat-completions endpoint
// with a hard per-call deadline. Both Groq and DeepSeek speak this protocol
// with small schema differences, which the normalizer absorbs.
type OpenAICompatProvider struct {
	cfg    Config
	client *http.Client
}

// New creates a provider from an explicit Config.
func New(cfg Config) *OpenAICompatProvider {
	return &OpenAICompatProvider{
		cfg: cfg,
		// The per-call context carries the deadline; the client has none.
		client: &http.Client{},
	}
}

// NewGroq creates the primary Groq provider. Empty model or zero timeout
// select the defaults.
func NewGroq(apiKey, model string, timeout time.Duration) *OpenAICompatProvider {
	if model == "" {
		model = groqDefaultModel
	}
	if timeout <= 0 {
		timeout = groqDefaultTimeout
	}
	return New(Config{
		Name:     EngineGroq,
		Endpoint: groqEndpoint,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  timeout,
	})
}

// NewDeepSeek creates the fallback DeepSeek provider. Empty model or zero
// timeout select the defaults.
func NewDeepSeek(apiKey, model string, timeout time.Duration) *OpenAICompatProvider {
	if model == "" {
		model = deepseekDefaultModel
	}
	if timeout <= 0 {
		timeout = deepseekDefaultTimeout
	}
	return New(Config{
		Name:     EngineDeepSeek,
		Endpoint: deepseekEndpoint,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  timeout,
	})
}

// Name returns the engine name surfaced to callers.
func (p *OpenAICompatProvider) Name() string {
	return p.cfg.Name
}

// Configured reports whether an API key is present.
func (p *OpenAICompatProvider) Configured() bool {
	return p.cfg.APIKey != ""
}

// Model returns the model name sent upstream.
func (p *OpenAICompatProvider) Model() string {
	return p.cfg.Model
}

// Complete sends the composed conversation upstream and returns the
// extracted completion text.
func (p *OpenAICompatProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(openai.ChatCompletionRequest{
		Model:    p.cfg.Model,
		Messages: toWireMessages(messages),
	})
	if err != nil {
		return "", &tilmash.ProviderError{Message: "marshal request", Cause: err}
	}

	status, raw, err := p.post(ctx, body)
	if err != nil {
		return "", err
	}

	return normalize(status, raw)
}

// toWireMessages converts the conversation to the OpenAI wire format.
func toWireMessages(messages []Message) []openai.ChatCompletionMessage {
	wire := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		wire[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return wire
}

// post issues one POST bounded by the provider timeout. The deadline timer
// is released on every path. Completed exchanges are returned whatever the
// status code; only network failures and timeouts error here.
func (p *OpenAICompatProvider) post(ctx context.Context, body []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, &tilmash.ProviderError{Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("User-Agent", tilmash.UserAgent())

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, &tilmash.ProviderError{Message: "request timed out", Cause: err}
		}
		return 0, nil, &tilmash.ProviderError{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &tilmash.ProviderError{Message: "read response", Cause: err}
	}

	return resp.StatusCode, raw, nil
}

// normalize extracts a plain-text completion from a completed exchange.
// Providers expose OpenAI-compatible but not identical schemas; the ordered
// field checks let one normalizer serve both without per-provider branching.
func normalize(status int, raw []byte) (string, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Keep an excerpt of the unparseable body so the failure is
		// diagnosable.
		parsed = map[string]interface{}{"error": excerpt(raw)}
	}

	if status < 200 || status >= 300 {
		return "", &tilmash.ProviderError{Message: errorMessage(parsed, status)}
	}

	if text := extractText(parsed); text != "" {
		return text, nil
	}

	if msg, ok := parsed["error"].(string); ok && msg != "" {
		return "", &tilmash.EmptyResponseError{Detail: msg}
	}
	return "", &tilmash.EmptyResponseError{}
}

// excerpt returns at most the first 300 characters of a raw body.
func excerpt(raw []byte) string {
	if len(raw) > errorExcerptLimit {
		return string(raw[:errorExcerptLimit])
	}
	return string(raw)
}

// errorMessage picks the most specific upstream error description available:
// a nested error.message, a bare error string, or the status code.
func errorMessage(parsed map[string]interface{}, status int) string {
	switch e := parsed["error"].(type) {
	case map[string]interface{}:
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
	case string:
		if e != "" {
			return e
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

// extractText checks the chat-completion shape, the legacy completion shape,
// and a bare top-level text field, in that order. First non-empty match wins.
func extractText(parsed map[string]interface{}) string {
	if choices, ok := parsed["choices"].([]interface{}); ok && len(choices) > 0 {
		if choice, ok := choices[0].(map[string]interface{}); ok {
			if message, ok := choice["message"].(map[string]interface{}); ok {
				if content, ok := message["content"].(string); ok && content != "" {
					return content
				}
			}
			if text, ok := choice["text"].(string); ok && text != "" {
				return text
			}
		}
	}

	if text, ok := parsed["text"].(string); ok && text != "" {
		return text
	}

	return ""
}

// Verify OpenAICompatProvider implements ChatProvider
var _ ChatProvider = (*OpenAICompatProvider)(nil)
