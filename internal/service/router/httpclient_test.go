package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/puassist/backend/internal/service/router"
)

func TestHTTPResponderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Message != "fee" {
			t.Fatalf("unexpected outbound message: %q", payload.Message)
		}
		json.NewEncoder(w).Encode(router.Response{
			Reply:         "ok",
			FollowUps:     []string{"A", "B"},
			AttachmentURL: "/files/doc.pdf",
		})
	}))
	defer srv.Close()

	c := router.NewHTTPResponder(srv.URL, 2*time.Second)
	resp, err := c.Respond(context.Background(), "fee")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if resp.Reply != "ok" || len(resp.FollowUps) != 2 || resp.AttachmentURL != "/files/doc.pdf" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHTTPResponderNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"reply": "oops"})
	}))
	defer srv.Close()

	c := router.NewHTTPResponder(srv.URL, 2*time.Second)
	_, err := c.Respond(context.Background(), "fee")
	if !errors.Is(err, router.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHTTPResponderMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := router.NewHTTPResponder(srv.URL, 2*time.Second)
	_, err := c.Respond(context.Background(), "fee")
	if !errors.Is(err, router.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHTTPResponderMissingReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := router.NewHTTPResponder(srv.URL, 2*time.Second)
	_, err := c.Respond(context.Background(), "fee")
	if !errors.Is(err, router.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for empty reply, got %v", err)
	}
}

func TestHTTPResponderUnreachable(t *testing.T) {
	c := router.NewHTTPResponder("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := c.Respond(context.Background(), "fee")
	if !errors.Is(err, router.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
