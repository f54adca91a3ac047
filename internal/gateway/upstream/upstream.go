// Package upstream performs the authenticated JSON calls made to Productboard and GitLab.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"productboard-gitlab-relay/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// maxErrorBody caps how much of an error response ends up in logs.
const maxErrorBody = 512

// Request describes one outbound call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any
}

// Client sends requests for a single upstream service. It does not retry.
type Client struct {
	service string
	timeout time.Duration
	http    *fiber.Client
}

// New returns a client for the named service. A zero timeout keeps the transport default.
func New(service string, timeout time.Duration) *Client {
	return &Client{
		service: service,
		timeout: timeout,
		http: &fiber.Client{
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

// Do sends req and decodes a JSON response into out when out is non-nil.
// Transport failures, non-2xx statuses and undecodable bodies are all ErrUpstream.
func (c *Client) Do(ctx context.Context, op string, req Request, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s %s: %w", entities.ErrUpstream, c.service, op, err)
	}

	var a *fiber.Agent
	switch req.Method {
	case http.MethodGet:
		a = c.http.Get(req.URL)
	case http.MethodPost:
		a = c.http.Post(req.URL)
	case http.MethodPut:
		a = c.http.Put(req.URL)
	default:
		return fmt.Errorf("%s %s: unsupported method %q", c.service, op, req.Method)
	}

	// The host client rewrites the request URI's flag on send, so the
	// setting has to live there to keep "group%2Fproject" escaped.
	if a.HostClient != nil {
		a.HostClient.DisablePathNormalizing = true
	}
	for k, v := range req.Headers {
		a.Set(k, v)
	}
	if req.Body != nil {
		a.JSON(req.Body)
	}
	if timeout := c.callTimeout(ctx); timeout > 0 {
		a.Timeout(timeout)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s %s: %w", entities.ErrUpstream, c.service, op, errors.Join(errs...))
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s: status %d: %s", entities.ErrUpstream, c.service, op, code, truncate(body))
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %w", entities.ErrUpstream, c.service, op, err)
	}
	return nil
}

// callTimeout is the configured timeout, shortened to the context deadline if one is set.
func (c *Client) callTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			left = time.Millisecond
		}
		if timeout == 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
