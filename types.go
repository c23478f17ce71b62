package tilmash

// ReplyStyle controls the tone of assistant replies.
type ReplyStyle string

const (
	// StyleConcise asks for the shortest usable answer.
	StyleConcise ReplyStyle = "concise"
	// StyleNormal uses a natural, helpful tone. This is the default.
	StyleNormal ReplyStyle = "normal"
	// StylePolite asks for polite, respectful phrasing.
	StylePolite ReplyStyle = "polite"
)

// Supported target language codes.
const (
	LangKazakh  = "kk"
	LangRussian = "ru"
	LangChinese = "zh"
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// EngineCache is the engine name reported for cached completions.
const EngineCache = "CACHE"

// Message is a single chat message. Order within a conversation is
// chronological and meaningful.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest contains the parameters for one assistant invocation.
type CompletionRequest struct {
	Messages   []Message  // Caller-supplied conversation history
	TargetLang string     // Target reply language code (e.g., "kk")
	Style      ReplyStyle // Reply tone (default: normal)
}

// CompletionResult is the outcome of a successful invocation.
type CompletionResult struct {
	Text   string // Extracted completion text, never empty
	Engine string // Name of the engine that produced it (e.g., "GROQ")
}

// ProviderFailure records one failed provider attempt during fallback.
type ProviderFailure struct {
	Provider string // Engine name of the failed attempt
	Message  string // Why the attempt failed
}
