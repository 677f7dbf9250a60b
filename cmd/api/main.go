package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/puassist/backend/internal/config"
	"github.com/puassist/backend/internal/handler"
	"github.com/puassist/backend/internal/model/shortcut"
	routerservice "github.com/puassist/backend/internal/service/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	responder := buildResponder(ctx, cfg)
	shortcuts := shortcut.NewMemoryStore(shortcut.Seed())

	router := handler.NewRouter(responder, shortcuts, cfg.Server.AllowedOrigins, cfg.Widget.ResponseTimeout)

	startServer(ctx, cfg.Server, router)
}

// buildResponder selects the routing strategy by configuration: generative
// when model credentials are present, keyword table otherwise.
func buildResponder(ctx context.Context, cfg *config.Config) routerservice.Responder {
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize chat model: %v", err)
			log.Println("falling back to the keyword responder")
			return routerservice.NewKeywordResponder(cfg.Widget.FeePDFURL)
		}
		log.Printf("generative responder enabled (model %s)", cfg.AI.Model)
		return routerservice.NewGenerativeResponder(chatModel, cfg.Widget.ResponseTimeout, cfg.Widget.FeePDFURL)
	}

	log.Println("model credentials not configured, using keyword responder")
	return routerservice.NewKeywordResponder(cfg.Widget.FeePDFURL)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("PU assistant backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
