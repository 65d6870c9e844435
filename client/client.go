package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FieldError is one field-level validation failure reported by the server.
type FieldError struct {
	Field   string
	Message string
}

// APIError is the normalized form of every non-2xx response. Message is
// always human-readable: for validation failures it is the message of the
// first offending field, and Fields carries the full set in the order the
// server reported them.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the FreshPress API. Every request path is resolved
// against the configured base URL, which already includes the /api/v1
// prefix. When the attached session holds a token it is sent as a bearer
// credential on every request.
type Client struct {
	base    string
	session *Session
	http    *http.Client
}

// New builds a client against baseURL (e.g. "http://localhost:8080/api/v1")
// using session for credentials.
func New(baseURL string, session *Session) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		session: session,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// Session exposes the attached session so callers can persist or clear
// the token after login and logout.
func (c *Client) Session() *Session {
	return c.session
}

// do performs one API request. body, when non-nil, is JSON-encoded; out,
// when non-nil, receives the decoded success payload. Any non-2xx status
// is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

// normalizeError turns an error response body into *APIError. Recognized
// shapes, in order: a validation failure with per-field messages, a body
// with a message or error string, and anything else, which falls back to a
// generic status line.
func normalizeError(status int, raw []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("Request failed: %d", status),
	}

	var envelope struct {
		Error   string          `json:"error"`
		Message string          `json:"message"`
		Fields  json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apiErr
	}

	if len(envelope.Fields) > 0 {
		fields, err := decodeOrderedFields(envelope.Fields)
		if err == nil && len(fields) > 0 {
			apiErr.Fields = fields
			apiErr.Message = fields[0].Message
			return apiErr
		}
	}

	switch {
	case envelope.Message != "":
		apiErr.Message = envelope.Message
	case envelope.Error != "":
		apiErr.Message = envelope.Error
	}
	return apiErr
}

// decodeOrderedFields parses a {"field": "message", ...} object preserving
// document order. A plain map would lose it, and the caller promotes the
// first field's message to the top-level error message.
func decodeOrderedFields(raw json.RawMessage) ([]FieldError, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("client: fields is not an object")
	}

	var fields []FieldError
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("client: unexpected token in fields")
		}

		var msg string
		if err := dec.Decode(&msg); err != nil {
			return nil, err
		}
		fields = append(fields, FieldError{Field: key, Message: msg})
	}
	return fields, nil
}
