package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPResponder crosses the network boundary of the wire protocol: it posts
// {"message": ...} to a remote chat endpoint and decodes the JSON reply.
// Any non-2xx status or malformed body maps to the uniform failure, so the
// engine's fallback path never inspects transport detail.
type HTTPResponder struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPResponder builds a client for the given /api/chat endpoint. The
// timeout bounds the whole exchange; a non-positive value selects 10s.
func NewHTTPResponder(endpoint string, timeout time.Duration) *HTTPResponder {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &HTTPResponder{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Respond performs the POST exchange for one utterance.
func (c *HTTPResponder) Respond(ctx context.Context, message string) (Response, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if out.Reply == "" {
		return Response{}, fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	return out, nil
}
