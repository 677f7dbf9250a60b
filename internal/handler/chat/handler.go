package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/puassist/backend/internal/service/router"
	"github.com/puassist/backend/internal/service/session"
	"github.com/puassist/backend/pkg/utils"
)

// Handler serves the chat wire protocol: POST /chat with {"message": ...}.
type Handler struct {
	responder router.Responder
}

// New creates the chat handler around the configured responder.
func New(responder router.Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := h.responder.Respond(r.Context(), payload.Message)
	if err != nil {
		// The cause stays in the log; the body still carries a JSON reply
		// for diagnostics, which clients treat like any other failure.
		log.Printf("[chat] responder failed: %v", err)
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"reply": session.FallbackReply,
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}
