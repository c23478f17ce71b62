package tilmash

import (
	"strings"
	"testing"
)

func TestHashConversation_Deterministic(t *testing.T) {
	msgs := []Message{
		{Role: RoleSystem, Content: "You are helpful."},
		{Role: RoleUser, Content: "Hello"},
	}

	h1 := HashConversation(msgs)
	h2 := HashConversation(msgs)

	if h1 != h2 {
		t.Error("Same conversation should hash identically")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h1))
	}
}

func TestHashConversation_OrderMatters(t *testing.T) {
	a := []Message{{Role: RoleUser, Content: "one"}, {Role: RoleUser, Content: "two"}}
	b := []Message{{Role: RoleUser, Content: "two"}, {Role: RoleUser, Content: "one"}}

	if HashConversation(a) == HashConversation(b) {
		t.Error("Reordered conversations should not collide")
	}
}

func TestHashConversation_BoundariesMatter(t *testing.T) {
	a := []Message{{Role: RoleUser, Content: "ab"}, {Role: RoleUser, Content: "c"}}
	b := []Message{{Role: RoleUser, Content: "a"}, {Role: RoleUser, Content: "bc"}}

	if HashConversation(a) == HashConversation(b) {
		t.Error("Merged message contents should not collide")
	}
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("abc123", LangKazakh, StyleConcise)

	if !strings.HasPrefix(key, "abc123:") {
		t.Errorf("Key %q should start with the hash", key)
	}
	if key != "abc123:kk:concise" {
		t.Errorf("Key = %q, want %q", key, "abc123:kk:concise")
	}

	other := CacheKey("abc123", LangRussian, StyleConcise)
	if key == other {
		t.Error("Keys for different languages should differ")
	}
}
