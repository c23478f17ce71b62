package tilmash

import "encoding/json"

// Reply-language directives. The assistant must never answer in English,
// whatever the conversation language is.
const (
	directiveKazakh  = "Reply ONLY in Kazakh. Never use English."
	directiveRussian = "Reply ONLY in Russian. Never use English."
	directiveChinese = "Reply ONLY in Simplified Chinese. Never use English."
)

const persona = "You are a travel translation and phrase assistant for Kazakhstan. " +
	"Help travelers communicate in everyday situations. " +
	"Prefer short, ready-to-say phrases over long explanations."

// LanguageDirective returns the reply-language instruction for a target
// language code. Unrecognized codes fall through to Simplified Chinese.
func LanguageDirective(lang string) string {
	switch lang {
	case LangKazakh:
		return directiveKazakh
	case LangRussian:
		return directiveRussian
	default:
		return directiveChinese
	}
}

// StyleDirective returns the tone instruction for a reply style.
// Unrecognized styles get the natural default.
func StyleDirective(style ReplyStyle) string {
	switch style {
	case StyleConcise:
		return "Be concise."
	case StylePolite:
		return "Be polite."
	default:
		return "Be natural and helpful."
	}
}

// SystemPrompt builds the content of the synthesized system message: the
// assistant persona plus the language and style directives.
func SystemPrompt(lang string, style ReplyStyle) string {
	return persona + " " + LanguageDirective(lang) + " " + StyleDirective(style)
}

// Compose builds the outbound message list: exactly one synthesized system
// message followed by the caller's messages unmodified. It always succeeds.
func Compose(messages []Message, lang string, style ReplyStyle) []Message {
	out := make([]Message, 0, len(messages)+1)
	out = append(out, Message{Role: RoleSystem, Content: SystemPrompt(lang, style)})
	return append(out, messages...)
}

// DecodeMessages interprets a loosely shaped messages value from the caller.
// Anything that does not decode as a sequence of messages is treated as an
// empty conversation.
func DecodeMessages(raw json.RawMessage) []Message {
	if len(raw) == 0 {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
