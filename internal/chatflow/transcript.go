package chatflow

import (
	"sync"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderBot      Sender = "bot"
	SenderTraveler Sender = "traveler"
)

// Message is one entry in the conversation log. Widget tags which interactive
// control, if any, is attached to a bot message.
type Message struct {
	ID     string     `json:"id"`
	Text   string     `json:"text"`
	Sender Sender     `json:"sender"`
	Widget WidgetKind `json:"input_widget,omitempty"`
}

// Transcript is the append-only ordered message log. Past entries are never
// edited or removed.
type Transcript struct {
	mu   sync.RWMutex
	msgs []Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(sender Sender, text string, widget WidgetKind) Message {
	msg := Message{
		ID:     uuid.New().String(),
		Text:   text,
		Sender: sender,
		Widget: widget,
	}

	t.mu.Lock()
	t.msgs = append(t.msgs, msg)
	t.mu.Unlock()

	return msg
}

func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Message(nil), t.msgs...)
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.msgs)
}
