package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	chathandler "github.com/puassist/backend/internal/handler/chat"
	shortcuthandler "github.com/puassist/backend/internal/handler/shortcut"
	"github.com/puassist/backend/internal/handler/widget"
	shortcutmodel "github.com/puassist/backend/internal/model/shortcut"
	routerservice "github.com/puassist/backend/internal/service/router"
	"github.com/puassist/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the configured responder.
func NewRouter(responder routerservice.Responder, shortcuts shortcutmodel.Store, allowedOrigins []string, responseTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	chatHandler := chathandler.New(responder)
	shortcutHandler := shortcuthandler.New(shortcuts)
	widgetHandler := widget.NewWebSocketHandler(responder, responseTimeout)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", handleHealth)
		chatHandler.RegisterRoutes(api)
		shortcutHandler.RegisterRoutes(api)
		widgetHandler.RegisterRoutes(api)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
