package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/puassist/backend/internal/analysis/intent"
)

// followUpMarker separates the answer body from the suggested follow-up
// questions in the model output.
const followUpMarker = "*Know more about:*"

const defaultUpstreamTimeout = 10 * time.Second

const systemPrompt = `You are PU-Assistant, the official AI helpdesk chatbot of Panjab University, Chandigarh.
Answer the student's question accurately, formally and politely.
For process questions (admission, eligibility, fees, forms) use 4-6 short bullet points; for factual questions reply in one precise sentence.
Include web links only as markdown links and never invent a URL.
If you cannot answer, reply: "Sorry, I couldn't find that information. Please contact the university administration."
After a complete answer, suggest exactly three short related questions, formatted as:
*Know more about:*
- Question 1
- Question 2
- Question 3`

// GenerativeResponder forwards the utterance to an OpenAI-compatible chat
// model as a single-turn prompt. No prior conversation context is sent; each
// request is independent and stateless.
type GenerativeResponder struct {
	chatModel model.BaseChatModel
	timeout   time.Duration
	feePDFURL string
}

// NewGenerativeResponder wraps the chat model with the upstream time budget.
// A non-positive timeout selects the default 10s bound.
func NewGenerativeResponder(chatModel model.BaseChatModel, timeout time.Duration, pdfURL string) *GenerativeResponder {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	if pdfURL == "" {
		pdfURL = DefaultFeePDFURL
	}
	return &GenerativeResponder{chatModel: chatModel, timeout: timeout, feePDFURL: pdfURL}
}

// Respond runs the single-turn completion. Upstream timeouts, error statuses
// and quota failures all surface as ErrUnavailable.
func (g *GenerativeResponder) Respond(ctx context.Context, message string) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(message),
	})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reply, followUps := splitFollowUps(out.Content)
	if reply == "" {
		return Response{}, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	resp := Response{Reply: reply, FollowUps: followUps}
	if intent.Classify(message) == intent.Fee {
		resp.AttachmentURL = g.feePDFURL
	}
	return resp, nil
}

// splitFollowUps separates the answer body from the trailing follow-up block
// and strips bullet markers from each suggested question.
func splitFollowUps(text string) (string, []string) {
	full := strings.TrimSpace(text)
	idx := strings.Index(full, followUpMarker)
	if idx < 0 {
		return full, nil
	}

	reply := strings.TrimSpace(full[:idx])

	var followUps []string
	for _, line := range strings.Split(full[idx+len(followUpMarker):], "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-• ")
		if line != "" {
			followUps = append(followUps, line)
		}
	}
	return reply, followUps
}
