package conversation

import "time"

// Role identifies who produced a message. Alternation is not enforced;
// consecutive same-role messages are legal (e.g. a retried fallback).
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable turn in a session transcript. Insertion order is
// authoritative; CreatedAt is for display only.
type Message struct {
	ID            string    `json:"id"`
	Role          Role      `json:"role"`
	Text          string    `json:"text"`
	Suggestions   []string  `json:"suggestions,omitempty"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
