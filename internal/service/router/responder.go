package router

import (
	"context"
	"errors"
)

// ErrUnavailable flattens every transport and upstream failure into one
// application-level error, so callers stay provider agnostic.
var ErrUnavailable = errors.New("responder unavailable")

// Response is the contract value returned across the routing boundary.
// Field tags match the wire protocol of POST /api/chat.
type Response struct {
	Reply         string   `json:"reply"`
	FollowUps     []string `json:"follow_ups,omitempty"`
	AttachmentURL string   `json:"pdf,omitempty"`
}

// Responder maps a raw user utterance to a reply with optional quick-reply
// suggestions and an optional resource link. Implementations must respond
// within the deadline carried by ctx.
type Responder interface {
	Respond(ctx context.Context, message string) (Response, error)
}
