// Package completion wraps the chat-completion provider behind a small
// interface so callers can swap in fakes.
package completion

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    Role
	Content string
}

// Request describes a single completion call. Temperature 0 means the
// provider default.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// StreamHandler receives incremental text fragments. Returning an error
// aborts the stream.
type StreamHandler func(delta string) error

// Client is the completion capability the assistants depend on.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	CompleteStream(ctx context.Context, req Request, cb StreamHandler) error
}

// System returns a system-role message.
func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

// User returns a user-role message.
func User(content string) Message { return Message{Role: RoleUser, Content: content} }

// Assistant returns an assistant-role message.
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }
