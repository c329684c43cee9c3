package whatsapp

import (
	"context"
	"strings"
)

// Sender creates a message through the provider and returns the provider's
// message SID. From and To must already be channel-qualified.
type Sender interface {
	CreateMessage(ctx context.Context, m Message) (string, error)
}

type Message struct {
	Body string `json:"body"`
	From string `json:"from"`
	To   string `json:"to"`
	Ref  string `json:"ref,omitempty"`
}

type MessageOption func(*Message)

func NewMessage(body, from, to string, opts ...MessageOption) Message {
	m := Message{
		Body: body,
		From: from,
		To:   to,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithRef attaches a client-side reference id used for log correlation.
func WithRef(ref string) MessageOption {
	return func(m *Message) {
		m.Ref = ref
	}
}

const channelPrefix = "whatsapp:"

// Address returns the channel-qualified form of a phone number, e.g.
// "+15551234567" becomes "whatsapp:+15551234567". Already qualified numbers
// pass through unchanged.
func Address(num string) string {
	if strings.HasPrefix(num, channelPrefix) {
		return num
	}
	return channelPrefix + num
}
