// Package provider implements the chat-completion provider backends.
package provider

import "github.com/qazaqlabs/tilmash"

// ChatProvider is the interface for chat-completion backends.
// This is an alias to the main package interface for convenience.
type ChatProvider = tilmash.ChatProvider

// Message is an alias to the main package type.
type Message = tilmash.Message
