package session

import (
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/puassist/backend/internal/model/conversation"
)

// Transcript is the append-only record of exchanged messages for one session.
// Messages are never reordered, mutated or deleted after Append; it is the
// single source of truth for rendering.
type Transcript struct {
	mu       sync.RWMutex
	messages []conversation.Message
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{messages: make([]conversation.Message, 0, 16)}
}

// Append stamps identity and creation time, then adds the message at the
// tail. The stored value owns its suggestion slice, so later caller mutation
// cannot reach appended history. Returns the message as stored.
func (t *Transcript) Append(msg conversation.Message) conversation.Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	msg.Suggestions = append([]string(nil), msg.Suggestions...)

	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()

	return msg
}

// Latest returns the tail message when one exists.
func (t *Transcript) Latest() (conversation.Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.messages) == 0 {
		return conversation.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Len reports the number of appended messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// All yields the messages in insertion order. The sequence iterates over a
// snapshot, so it is finite, restartable and unaffected by later appends.
func (t *Transcript) All() iter.Seq[conversation.Message] {
	t.mu.RLock()
	snapshot := make([]conversation.Message, len(t.messages))
	copy(snapshot, t.messages)
	t.mu.RUnlock()

	return func(yield func(conversation.Message) bool) {
		for _, msg := range snapshot {
			if !yield(msg) {
				return
			}
		}
	}
}

// TailSuggestions returns the quick-reply labels to render: exactly those
// attached to the tail message, and only while that message is an assistant
// reply. Earlier messages keep their suggestion sets but never render them;
// latest-ness is re-derived positionally instead of patching history.
func (t *Transcript) TailSuggestions() []string {
	latest, ok := t.Latest()
	if !ok || latest.Role != conversation.RoleAssistant {
		return nil
	}
	return append([]string(nil), latest.Suggestions...)
}
