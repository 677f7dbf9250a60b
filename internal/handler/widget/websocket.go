package widget

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/puassist/backend/internal/model/conversation"
	"github.com/puassist/backend/internal/service/router"
	"github.com/puassist/backend/internal/service/session"
)

// WebSocketHandler runs one session engine per widget connection and pushes
// transcript, typing and scroll events to the embedding page.
type WebSocketHandler struct {
	responder router.Responder
	timeout   time.Duration
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler creates the widget transport.
func NewWebSocketHandler(responder router.Responder, timeout time.Duration) *WebSocketHandler {
	return &WebSocketHandler{
		responder: responder,
		timeout:   timeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the widget websocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/widget/ws", h.handleWebSocket)
}

type inboundEvent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Viewport int    `json:"viewport,omitempty"`
	Content  int    `json:"content,omitempty"`
	Open     bool   `json:"open,omitempty"`
}

type outgoingEvent struct {
	Type      string                `json:"type"`
	Message   *conversation.Message `json:"message,omitempty"`
	Typing    bool                  `json:"typing,omitempty"`
	Stick     bool                  `json:"stick,omitempty"`
	ShowJump  bool                  `json:"showJump,omitempty"`
	Target    int                   `json:"target"`
	Timestamp int64                 `json:"timestamp"`
}

// connWriter serializes writes; submit resolutions arrive from their own
// goroutines.
type connWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *connWriter) send(ev outgoingEvent) {
	ev.Timestamp = time.Now().UnixMilli()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.WriteJSON(ev); err != nil {
		log.Printf("[widget] failed to push %s event: %v", ev.Type, err)
	}
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[widget] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	writer := &connWriter{conn: conn}
	scroll := session.NewScrollController()

	engine := session.NewEngine(h.responder, session.Config{
		ResponseTimeout: h.timeout,
		Scroll:          scroll,
		Listener: func(ev session.Event) {
			writer.send(engineEvent(ev, scroll))
		},
	})

	log.Printf("[widget] session opened from %s", r.RemoteAddr)
	defer log.Printf("[widget] session closed from %s", r.RemoteAddr)

	for {
		var ev inboundEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[widget] read failed: %v", err)
			}
			return
		}
		h.dispatch(engine, writer, ev)
	}
}

// dispatch applies one inbound event. Submits run in their own goroutine so
// a slow responder never blocks the read loop; a teardown stops observing
// pending results without cancelling the outbound call.
func (h *WebSocketHandler) dispatch(engine *session.Engine, writer *connWriter, ev inboundEvent) {
	switch ev.Type {
	case "submit":
		go engine.Submit(context.Background(), ev.Text)
	case "quick_reply":
		go engine.QuickReply(context.Background(), ev.Text)
	case "draft":
		engine.SetDraft(ev.Text)
	case "open":
		engine.SetOpen(ev.Open)
	case "scroll":
		showJump := engine.Scroll().ObserveScroll(ev.Offset, ev.Viewport, ev.Content)
		writer.send(outgoingEvent{Type: "scroll", ShowJump: showJump, Target: -1})
	case "jump":
		target := engine.Scroll().JumpToBottom(ev.Viewport, ev.Content)
		writer.send(outgoingEvent{Type: "scroll", Target: target})
	default:
		log.Printf("[widget] unknown event type %q", ev.Type)
	}
}

// engineEvent converts an engine notification into its wire form. Message
// events carry the current stickiness so the page knows whether to follow.
func engineEvent(ev session.Event, scroll *session.ScrollController) outgoingEvent {
	switch ev.Kind {
	case session.EventMessage:
		msg := ev.Message
		return outgoingEvent{
			Type:    "message",
			Message: &msg,
			Stick:   scroll.AutoStick(),
			Target:  -1,
		}
	case session.EventTyping:
		return outgoingEvent{Type: "typing", Typing: ev.Typing, Target: -1}
	default:
		return outgoingEvent{Type: ev.Kind, Target: -1}
	}
}
