package provider

import "context"

// MockProvider is a scriptable chat provider for testing.
type MockProvider struct {
	ProviderName string    // Name returned by Name() (default: "MOCK")
	Reply        string    // Text returned on success
	Err          error     // When set, Complete fails with this error
	Unconfigured bool      // When set, Configured() reports false
	CallCount    int       // Number of times Complete was called
	LastMessages []Message // Last conversation received
}

// NewMockProvider creates a mock provider that replies with the given text.
func NewMockProvider(name, reply string) *MockProvider {
	return &MockProvider{ProviderName: name, Reply: reply}
}

// Complete records the call and returns the scripted reply or error.
func (m *MockProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	m.CallCount++
	m.LastMessages = messages

	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// Name returns the configured provider name.
func (m *MockProvider) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "MOCK"
}

// Configured reports the scripted configuration state.
func (m *MockProvider) Configured() bool {
	return !m.Unconfigured
}

// Reset resets the call count and last conversation.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastMessages = nil
}

// Verify MockProvider implements ChatProvider
var _ ChatProvider = (*MockProvider)(nil)
