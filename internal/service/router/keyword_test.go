package router_test

import (
	"context"
	"strings"
	"testing"

	"github.com/puassist/backend/internal/service/router"
)

func TestKeywordRespondAdmission(t *testing.T) {
	r := router.NewKeywordResponder("")

	resp, err := r.Respond(context.Background(), "Tell me about ADMISSION")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if !strings.Contains(resp.Reply, "admission process starts in March") {
		t.Fatalf("unexpected admission reply: %q", resp.Reply)
	}
	if resp.AttachmentURL != "" {
		t.Fatalf("unexpected attachment for admission: %q", resp.AttachmentURL)
	}
	if len(resp.FollowUps) == 0 {
		t.Fatal("expected follow-up suggestions")
	}
}

func TestKeywordRespondFeeAttachesPDF(t *testing.T) {
	r := router.NewKeywordResponder("")

	resp, err := r.Respond(context.Background(), "what is the fee?")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if !strings.Contains(resp.Reply, "₹80,000") {
		t.Fatalf("unexpected fee reply: %q", resp.Reply)
	}
	if resp.AttachmentURL != router.DefaultFeePDFURL {
		t.Fatalf("expected fee PDF attachment, got %q", resp.AttachmentURL)
	}
}

func TestKeywordRespondDefaultEcho(t *testing.T) {
	r := router.NewKeywordResponder("")

	resp, err := r.Respond(context.Background(), "what's the weather like")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if resp.Reply != "I got your message: what's the weather like" {
		t.Fatalf("unexpected default reply: %q", resp.Reply)
	}
	if len(resp.FollowUps) != 0 || resp.AttachmentURL != "" {
		t.Fatalf("expected bare echo response, got %+v", resp)
	}
}

func TestKeywordRespondCustomPDFURL(t *testing.T) {
	r := router.NewKeywordResponder("https://example.edu/fees.pdf")

	resp, err := r.Respond(context.Background(), "fees please")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if resp.AttachmentURL != "https://example.edu/fees.pdf" {
		t.Fatalf("expected custom PDF URL, got %q", resp.AttachmentURL)
	}
}
