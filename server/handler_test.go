package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/qazaqlabs/tilmash"
	"github.com/qazaqlabs/tilmash/provider"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(primary, secondary tilmash.ChatProvider) *gin.Engine {
	assistant := tilmash.NewAssistant(primary, secondary)
	return NewRouter(NewHandler(assistant))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranslate_Success(t *testing.T) {
	primary := provider.NewMockProvider("GROQ", "Sәlem")
	r := newTestRouter(primary, provider.NewMockProvider("DEEPSEEK", "unused"))

	w := doRequest(r, http.MethodPost, "/api/translate",
		`{"messages":[{"role":"user","content":"Hello"}],"targetLang":"kk","style":"concise"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Text   string `json:"text"`
		Engine string `json:"engine"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if resp.Text != "Sәlem" {
		t.Errorf("Text = %q, want %q", resp.Text, "Sәlem")
	}
	if resp.Engine != "GROQ" {
		t.Errorf("Engine = %q, want GROQ", resp.Engine)
	}

	// System message prepended, caller message passed through
	if len(primary.LastMessages) != 2 {
		t.Fatalf("Provider received %d messages, want 2", len(primary.LastMessages))
	}
	if !strings.Contains(primary.LastMessages[0].Content, "Reply ONLY in Kazakh.") {
		t.Error("System message should carry the Kazakh directive")
	}
}

func TestTranslate_InvalidJSON(t *testing.T) {
	primary := provider.NewMockProvider("GROQ", "unused")
	r := newTestRouter(primary, nil)

	w := doRequest(r, http.MethodPost, "/api/translate", `{"messages": [}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if resp["error"] != "Invalid JSON" {
		t.Errorf("error = %q, want %q", resp["error"], "Invalid JSON")
	}
	if primary.CallCount != 0 {
		t.Error("No provider should be contacted on a malformed body")
	}
}

func TestTranslate_MessagesNotASequence(t *testing.T) {
	primary := provider.NewMockProvider("GROQ", "ok")
	r := newTestRouter(primary, nil)

	w := doRequest(r, http.MethodPost, "/api/translate", `{"messages":{"role":"user"},"targetLang":"ru"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200 (non-sequence degrades to empty)", w.Code)
	}
	// Only the synthesized system message reaches the provider
	if len(primary.LastMessages) != 1 {
		t.Errorf("Provider received %d messages, want 1", len(primary.LastMessages))
	}
}

func TestTranslate_TotalFailure(t *testing.T) {
	primary := provider.NewMockProvider("GROQ", "")
	primary.Err = &tilmash.ProviderError{Message: "request timed out"}
	secondary := provider.NewMockProvider("DEEPSEEK", "")
	secondary.Err = &tilmash.ProviderError{Message: "HTTP 503"}

	r := newTestRouter(primary, secondary)

	w := doRequest(r, http.MethodPost, "/api/translate", `{"messages":[],"targetLang":"kk"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	for _, want := range []string{"GROQ", "request timed out", "DEEPSEEK", "HTTP 503"} {
		if !strings.Contains(resp["error"], want) {
			t.Errorf("error %q should contain %q", resp["error"], want)
		}
	}
}

func TestPreflight(t *testing.T) {
	r := newTestRouter(provider.NewMockProvider("GROQ", "unused"), nil)

	w := doRequest(r, http.MethodOptions, "/api/translate", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("Status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Preflight body should be empty, got %q", w.Body.String())
	}

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
	for k, want := range headers {
		if got := w.Header().Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestCORSHeadersOnPost(t *testing.T) {
	r := newTestRouter(provider.NewMockProvider("GROQ", "ok"), nil)

	w := doRequest(r, http.MethodPost, "/api/translate", `{"messages":[]}`)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(provider.NewMockProvider("GROQ", "ok"), nil)

	w := doRequest(r, http.MethodPost, "/api/translate", `{"messages":[]}`)

	if id := w.Header().Get("X-Request-ID"); !strings.HasPrefix(id, "req_") {
		t.Errorf("X-Request-ID = %q, want req_ prefix", id)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(provider.NewMockProvider("GROQ", "unused"), nil)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("Body = %q", w.Body.String())
	}
}
