package session_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/puassist/backend/internal/model/conversation"
	"github.com/puassist/backend/internal/service/router"
	"github.com/puassist/backend/internal/service/session"
)

type stubResponder struct {
	resp router.Response
	err  error
}

func (s *stubResponder) Respond(_ context.Context, _ string) (router.Response, error) {
	return s.resp, s.err
}

// gatedResponder blocks each call until released, to observe in-flight state.
type gatedResponder struct {
	started chan string
	release chan router.Response
}

func (g *gatedResponder) Respond(ctx context.Context, message string) (router.Response, error) {
	g.started <- message
	select {
	case resp := <-g.release:
		return resp, nil
	case <-ctx.Done():
		return router.Response{}, ctx.Err()
	}
}

func TestEngineSeedsGreeting(t *testing.T) {
	engine := session.NewEngine(&stubResponder{}, session.Config{})

	latest, ok := engine.Transcript().Latest()
	if !ok {
		t.Fatal("expected greeting message")
	}
	if latest.Role != conversation.RoleAssistant || latest.Text != session.Greeting {
		t.Fatalf("unexpected greeting: %+v", latest)
	}
}

func TestSubmitBlankIsNoOp(t *testing.T) {
	engine := session.NewEngine(&stubResponder{}, session.Config{SkipGreeting: true})

	engine.Submit(context.Background(), "")
	engine.Submit(context.Background(), "   ")

	if engine.Transcript().Len() != 0 {
		t.Fatalf("expected empty transcript, got %d messages", engine.Transcript().Len())
	}
	if engine.InFlight() {
		t.Fatal("expected no in-flight request")
	}
}

func TestSubmitAppendsUserMessageBeforeResolution(t *testing.T) {
	gated := &gatedResponder{
		started: make(chan string),
		release: make(chan router.Response),
	}
	engine := session.NewEngine(gated, session.Config{SkipGreeting: true})

	done := make(chan struct{})
	go func() {
		engine.Submit(context.Background(), "hello")
		close(done)
	}()

	select {
	case got := <-gated.started:
		if got != "hello" {
			t.Fatalf("unexpected outbound message: %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("responder was never called")
	}

	// The user message is already in the transcript while the call is open.
	if engine.Transcript().Len() != 1 {
		t.Fatalf("expected 1 message mid-flight, got %d", engine.Transcript().Len())
	}
	latest, _ := engine.Transcript().Latest()
	if latest.Role != conversation.RoleUser || latest.Text != "hello" {
		t.Fatalf("unexpected mid-flight tail: %+v", latest)
	}
	if !engine.InFlight() {
		t.Fatal("expected in-flight state while awaiting responder")
	}

	gated.release <- router.Response{Reply: "hi"}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submit did not resolve")
	}

	if engine.Transcript().Len() != 2 {
		t.Fatalf("expected 2 messages after resolution, got %d", engine.Transcript().Len())
	}
	if engine.InFlight() {
		t.Fatal("expected in-flight state cleared")
	}
}

func TestSubmitFallbackOnFailure(t *testing.T) {
	engine := session.NewEngine(&stubResponder{err: errors.New("boom")}, session.Config{SkipGreeting: true})

	engine.Submit(context.Background(), "fee")

	messages := slices.Collect(engine.Transcript().All())
	if len(messages) != 2 {
		t.Fatalf("expected transcript growth by 2, got %d", len(messages))
	}
	if messages[0].Role != conversation.RoleUser {
		t.Fatalf("expected user message first, got %s", messages[0].Role)
	}
	if messages[1].Role != conversation.RoleAssistant || messages[1].Text != session.FallbackReply {
		t.Fatalf("unexpected fallback message: %+v", messages[1])
	}
	if engine.InFlight() {
		t.Fatal("expected in-flight state cleared after failure")
	}
}

func TestSubmitFallbackOnEmptyReply(t *testing.T) {
	engine := session.NewEngine(&stubResponder{resp: router.Response{Reply: "  "}}, session.Config{SkipGreeting: true})

	engine.Submit(context.Background(), "fee")

	latest, _ := engine.Transcript().Latest()
	if latest.Text != session.FallbackReply {
		t.Fatalf("expected fallback for malformed reply, got %q", latest.Text)
	}
}

func TestSubmitTimeoutResolvesToFallback(t *testing.T) {
	gated := &gatedResponder{
		started: make(chan string, 1),
		release: make(chan router.Response),
	}
	engine := session.NewEngine(gated, session.Config{
		SkipGreeting:    true,
		ResponseTimeout: 20 * time.Millisecond,
	})

	engine.Submit(context.Background(), "slow question")

	latest, _ := engine.Transcript().Latest()
	if latest.Role != conversation.RoleAssistant || latest.Text != session.FallbackReply {
		t.Fatalf("expected fallback after deadline, got %+v", latest)
	}
}

func TestSubmitBindsSuggestionsAndAttachment(t *testing.T) {
	engine := session.NewEngine(&stubResponder{resp: router.Response{
		Reply:         "ok",
		FollowUps:     []string{"A", "B"},
		AttachmentURL: "/files/doc.pdf",
	}}, session.Config{SkipGreeting: true})

	engine.Submit(context.Background(), "x")

	latest, _ := engine.Transcript().Latest()
	if latest.Role != conversation.RoleAssistant || latest.Text != "ok" {
		t.Fatalf("unexpected assistant message: %+v", latest)
	}
	if latest.AttachmentURL != "/files/doc.pdf" {
		t.Fatalf("unexpected attachment: %q", latest.AttachmentURL)
	}

	suggestions := engine.Transcript().TailSuggestions()
	if len(suggestions) != 2 || suggestions[0] != "A" || suggestions[1] != "B" {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
}

func TestQuickReplyMatchesSubmit(t *testing.T) {
	stub := &stubResponder{resp: router.Response{Reply: "ok", FollowUps: []string{"A"}}}

	submitted := session.NewEngine(stub, session.Config{SkipGreeting: true})
	submitted.Submit(context.Background(), "A")

	quick := session.NewEngine(stub, session.Config{SkipGreeting: true})
	quick.QuickReply(context.Background(), "A")

	a := slices.Collect(submitted.Transcript().All())
	b := slices.Collect(quick.Transcript().All())
	if len(a) != len(b) {
		t.Fatalf("transcript shapes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Role != b[i].Role || a[i].Text != b[i].Text {
			t.Fatalf("message %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSubmitClearsDraft(t *testing.T) {
	engine := session.NewEngine(&stubResponder{resp: router.Response{Reply: "ok"}}, session.Config{SkipGreeting: true})

	engine.SetDraft("fee structure")
	engine.Submit(context.Background(), engine.Draft())

	if engine.Draft() != "" {
		t.Fatalf("expected draft cleared, got %q", engine.Draft())
	}
}

func TestEngineEventsReachListener(t *testing.T) {
	var events []session.Event
	stub := &stubResponder{resp: router.Response{Reply: "ok"}}
	engine := session.NewEngine(stub, session.Config{
		Listener: func(ev session.Event) { events = append(events, ev) },
	})

	engine.Submit(context.Background(), "hello")

	// greeting + user + typing(on) + assistant + typing(off)
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	if events[0].Kind != session.EventMessage || events[0].Message.Text != session.Greeting {
		t.Fatalf("expected greeting event first, got %+v", events[0])
	}
	if events[2].Kind != session.EventTyping || !events[2].Typing {
		t.Fatalf("expected typing-on event, got %+v", events[2])
	}
	if events[4].Kind != session.EventTyping || events[4].Typing {
		t.Fatalf("expected typing-off event, got %+v", events[4])
	}
}
