// Package backend is the typed client for the club's REST API. Every call takes the
// admin session explicitly and returns a Result, whatever envelope the endpoint uses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Eursukkul/club-admin/internal/session"
)

var (
	_ AuthAPI      = (*Client)(nil)
	_ EventAPI     = (*Client)(nil)
	_ MenuAPI      = (*Client)(nil)
	_ HappyHourAPI = (*Client)(nil)
	_ OfferAPI     = (*Client)(nil)
	_ GalleryAPI   = (*Client)(nil)
	_ CustomerAPI  = (*Client)(nil)
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// call performs one request and decodes the endpoint's payload with dec.
// sess may be nil for unauthenticated endpoints.
func call[T any](ctx context.Context, c *Client, sess *session.Session, method, path string, body any, dec decoder[T]) Result[T] {
	env, err := c.do(ctx, sess, method, path, body)
	if err != nil {
		return Failure[T](err)
	}
	v, err := dec(env)
	if err != nil {
		log.Printf("[Backend] %s %s: %v", method, path, err)
		return Failure[T](err)
	}
	return Success(v)
}

func (c *Client) do(ctx context.Context, sess *session.Session, method, path string, body any) (envelope, error) {
	var env envelope

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return env, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return env, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sess != nil {
		sess.Apply(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[Backend] %s %s failed: %v", method, path, err)
		return env, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Backend] %s %s read body: %v", method, path, err)
		return env, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	decodeErr := json.Unmarshal(raw, &env)
	if len(bytes.TrimSpace(raw)) == 0 {
		decodeErr = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// error, then message, then the status text. Non-JSON bodies such as proxy
		// error pages are never shown to the user.
		msg := env.failure()
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		if msg == "" {
			msg = "Request failed"
		}
		return env, &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		log.Printf("[Backend] %s %s: invalid JSON: %v", method, path, decodeErr)
		return env, fmt.Errorf("%w: invalid JSON: %v", ErrTransport, decodeErr)
	}
	if env.Success != nil && !*env.Success {
		msg := env.failure()
		if msg == "" {
			msg = "Request failed"
		}
		return env, &ServerError{Status: http.StatusBadRequest, Message: msg}
	}
	return env, nil
}
