package shortcut

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/puassist/backend/internal/model/shortcut"
	"github.com/puassist/backend/pkg/utils"
)

// Handler serves the permanent topic shortcuts rendered at the input area.
type Handler struct {
	shortcuts shortcut.Store
}

// New creates the shortcut handler.
func New(shortcuts shortcut.Store) *Handler {
	return &Handler{shortcuts: shortcuts}
}

// RegisterRoutes mounts the shortcut routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/shortcuts", h.handleListShortcuts)
}

func (h *Handler) handleListShortcuts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.shortcuts.List())
}
