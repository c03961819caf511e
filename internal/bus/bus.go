// Package bus carries messages between channels and the gateway.
package bus

import (
	"log"
	"sync"
	"time"
)

type InboundMessage struct {
	Channel   string
	SenderID  string
	ChatID    string
	Content   string
	Timestamp time.Time
	Metadata  map[string]any
}

// SessionKey identifies the conversation a message belongs to.
func (m *InboundMessage) SessionKey() string {
	return m.Channel + ":" + m.ChatID
}

type OutboundMessage struct {
	Channel  string
	ChatID   string
	Content  string
	ReplyTo  string
	Metadata map[string]any
}

// OutboundHandler delivers an outbound message to one channel.
type OutboundHandler func(msg OutboundMessage)

// MessageBus fans inbound messages into a single queue and dispatches
// outbound messages to the subscribed channel.
type MessageBus struct {
	Inbound chan InboundMessage

	mu       sync.RWMutex
	handlers map[string]OutboundHandler
}

func NewMessageBus(bufSize int) *MessageBus {
	if bufSize <= 0 {
		bufSize = 1
	}
	return &MessageBus{
		Inbound:  make(chan InboundMessage, bufSize),
		handlers: make(map[string]OutboundHandler),
	}
}

// SubscribeOutbound registers the delivery handler for a channel name,
// replacing any previous handler.
func (b *MessageBus) SubscribeOutbound(channel string, handler OutboundHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[channel] = handler
}

// DispatchOutbound routes a message to its channel's handler. Messages
// for unsubscribed channels are dropped with a log line.
func (b *MessageBus) DispatchOutbound(msg OutboundMessage) {
	b.mu.RLock()
	handler, ok := b.handlers[msg.Channel]
	b.mu.RUnlock()

	if !ok {
		log.Printf("[bus] no outbound handler for channel %q, dropping message", msg.Channel)
		return
	}
	handler(msg)
}
