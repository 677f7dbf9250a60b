package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/puassist/backend/internal/model/conversation"
	"github.com/puassist/backend/internal/service/router"
)

// Greeting opens every new session.
const Greeting = "Hi! I'm PU Admission Assistant. How can I help you today?"

// FallbackReply is appended whenever the responder cannot be reached or
// returns a malformed result. The cause is logged, never shown to the user.
const FallbackReply = "Sorry, something went wrong. Please visit the admin office."

const defaultResponseTimeout = 10 * time.Second

// Event kinds delivered to a transport listener.
const (
	EventMessage = "message"
	EventTyping  = "typing"
)

// Event notifies a transport of an engine state change.
type Event struct {
	Kind    string
	Message conversation.Message
	Typing  bool
}

// Config tunes a session engine.
type Config struct {
	// ResponseTimeout bounds each outbound routing call. Zero selects 10s.
	ResponseTimeout time.Duration
	// Greeting overrides the opening assistant message. Empty keeps the
	// default; set SkipGreeting to start with an empty transcript.
	Greeting     string
	SkipGreeting bool
	// Listener receives transcript and typing events. Optional.
	Listener func(Event)
	// Scroll lets a transport share one controller with the engine. Nil
	// creates a fresh controller.
	Scroll *ScrollController
}

// Engine drives the submit lifecycle for one widget session: it owns the
// transcript and scroll state, tracks in-flight requests, and resolves each
// outbound routing call into exactly one assistant append.
type Engine struct {
	mu         sync.Mutex
	transcript *Transcript
	scroll     *ScrollController
	responder  router.Responder
	timeout    time.Duration
	listener   func(Event)
	inFlight   int
	draft      string
	open       bool
}

// NewEngine builds an engine around the responder, seeding the greeting
// message unless the config skips it.
func NewEngine(responder router.Responder, cfg Config) *Engine {
	timeout := cfg.ResponseTimeout
	if timeout <= 0 {
		timeout = defaultResponseTimeout
	}

	scroll := cfg.Scroll
	if scroll == nil {
		scroll = NewScrollController()
	}

	e := &Engine{
		transcript: NewTranscript(),
		scroll:     scroll,
		responder:  responder,
		timeout:    timeout,
		listener:   cfg.Listener,
	}

	if !cfg.SkipGreeting {
		greeting := cfg.Greeting
		if greeting == "" {
			greeting = Greeting
		}
		msg := e.transcript.Append(conversation.Message{
			Role: conversation.RoleAssistant,
			Text: greeting,
		})
		e.notify(Event{Kind: EventMessage, Message: msg})
	}

	return e
}

// Submit runs one utterance through the full lifecycle: user append, one
// outbound routing call under a deadline, assistant append. Blank input is
// silently ignored. Submit never returns an error; failures resolve into the
// fallback message. Re-entrant calls are accepted and their resolutions
// append in completion order.
func (e *Engine) Submit(ctx context.Context, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	userMsg := e.transcript.Append(conversation.Message{
		Role: conversation.RoleUser,
		Text: trimmed,
	})

	e.mu.Lock()
	e.draft = ""
	e.inFlight++
	e.mu.Unlock()

	e.notify(Event{Kind: EventMessage, Message: userMsg})
	e.notify(Event{Kind: EventTyping, Typing: true})

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	resp, err := e.responder.Respond(callCtx, trimmed)
	cancel()

	if err == nil && strings.TrimSpace(resp.Reply) == "" {
		err = router.ErrUnavailable
	}

	var reply conversation.Message
	if err != nil {
		log.Printf("[session] responder failed for %q: %v", trimmed, err)
		reply = conversation.Message{
			Role: conversation.RoleAssistant,
			Text: FallbackReply,
		}
	} else {
		reply = conversation.Message{
			Role:          conversation.RoleAssistant,
			Text:          resp.Reply,
			Suggestions:   resp.FollowUps,
			AttachmentURL: resp.AttachmentURL,
		}
	}

	appended := e.transcript.Append(reply)

	e.mu.Lock()
	e.inFlight--
	typing := e.inFlight > 0
	e.mu.Unlock()

	e.notify(Event{Kind: EventMessage, Message: appended})
	e.notify(Event{Kind: EventTyping, Typing: typing})
}

// QuickReply submits a suggestion label as if the user had typed it.
func (e *Engine) QuickReply(ctx context.Context, label string) {
	e.Submit(ctx, label)
}

// InFlight reports whether any request is awaiting resolution; it drives the
// typing indicator.
func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight > 0
}

// SetDraft stores the uncommitted input text.
func (e *Engine) SetDraft(text string) {
	e.mu.Lock()
	e.draft = text
	e.mu.Unlock()
}

// Draft returns the uncommitted input text.
func (e *Engine) Draft() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetOpen records panel visibility.
func (e *Engine) SetOpen(open bool) {
	e.mu.Lock()
	e.open = open
	e.mu.Unlock()
}

// IsOpen reports panel visibility.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// Transcript exposes the session history.
func (e *Engine) Transcript() *Transcript {
	return e.transcript
}

// Scroll exposes the scroll controller.
func (e *Engine) Scroll() *ScrollController {
	return e.scroll
}

func (e *Engine) notify(ev Event) {
	if e.listener != nil {
		e.listener(ev)
	}
}
