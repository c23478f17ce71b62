package tilmash

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashConversation computes a SHA-256 digest over an ordered conversation.
// Roles and contents are separated by NUL bytes so reordered or merged
// messages never collide.
func HashConversation(messages []Message) string {
	h := sha256.New()
	for _, m := range messages {
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey derives the completion cache key from a conversation hash, the
// target language, and the reply style.
func CacheKey(hash, targetLang string, style ReplyStyle) string {
	return hash + ":" + targetLang + ":" + string(style)
}
