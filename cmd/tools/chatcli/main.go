package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/puassist/backend/internal/config"
	"github.com/puassist/backend/internal/model/conversation"
	routerservice "github.com/puassist/backend/internal/service/router"
	"github.com/puassist/backend/internal/service/session"
)

// chatcli drives a session engine from the terminal for manual testing of
// either routing strategy without the HTTP surface.
func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	strategy := flag.String("router", "keyword", "routing strategy: keyword, generative or http")
	endpoint := flag.String("endpoint", "http://localhost:8080/api/chat", "chat endpoint for -router=http")
	timeout := flag.Duration("timeout", cfg.Widget.ResponseTimeout, "per-request deadline")
	flag.Parse()

	responder, err := buildResponder(*strategy, *endpoint, *timeout, cfg)
	if err != nil {
		log.Fatalf("failed to build responder: %v", err)
	}

	engine := session.NewEngine(responder, session.Config{
		ResponseTimeout: *timeout,
		Listener:        printEvent,
	})

	fmt.Println("PU Assistant testing mode (type 'exit' to quit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		engine.Submit(context.Background(), line)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}

func buildResponder(strategy, endpoint string, timeout time.Duration, cfg *config.Config) (routerservice.Responder, error) {
	switch strategy {
	case "keyword":
		return routerservice.NewKeywordResponder(cfg.Widget.FeePDFURL), nil
	case "generative":
		chatModel, err := cfg.AI.NewChatModel(context.Background())
		if err != nil {
			return nil, err
		}
		return routerservice.NewGenerativeResponder(chatModel, timeout, cfg.Widget.FeePDFURL), nil
	case "http":
		return routerservice.NewHTTPResponder(endpoint, timeout), nil
	default:
		return nil, fmt.Errorf("unknown routing strategy %q", strategy)
	}
}

func printEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventMessage:
		if ev.Message.Role == conversation.RoleUser {
			return
		}
		fmt.Printf("\n%s\n", ev.Message.Text)
		if len(ev.Message.Suggestions) > 0 {
			fmt.Println("\nKnow more about:")
			for _, s := range ev.Message.Suggestions {
				fmt.Printf("- %s\n", s)
			}
		}
		if ev.Message.AttachmentURL != "" {
			fmt.Printf("\nRelated file: %s\n", ev.Message.AttachmentURL)
		}
	case session.EventTyping:
		if ev.Typing {
			fmt.Println("...")
		}
	}
}
