package llm

import (
	"context"
	"errors"
)

// Message represents a conversation turn in a provider-agnostic format.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// TokenUsage carries the upstream usage metadata for one completion.
type TokenUsage struct {
	Prompt     int
	Completion int
	Total      int
}

// Completion is the assistant text plus its token accounting.
type Completion struct {
	Text   string
	Tokens TokenUsage
}

var (
	// ErrModelUnavailable covers transport failures, upstream errors and
	// exhausted retries.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrModelResponseInvalid means the upstream answered 200 but the payload
	// lacked the expected completion field.
	ErrModelResponseInvalid = errors.New("model response invalid")
)

// Provider defines the contract for the external generative-text backend.
type Provider interface {
	// Complete sends the ordered conversation turns and returns the
	// assistant's reply. Each call is a fresh request; nothing is cached.
	Complete(ctx context.Context, turns []Message) (*Completion, error)
}
