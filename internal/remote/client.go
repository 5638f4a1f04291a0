// Package remote talks to the course's mail and validation service
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ning0612/ecorp/internal/domain"
	"github.com/Ning0612/ecorp/internal/logger"
)

const (
	// DefaultTimeout for every request
	DefaultTimeout = 5 * time.Second

	fetchPath  = "/pop3"
	submitPath = "/validate"
)

// ConnectionFailedMessage is shown for every transport failure; the fix
// (network, VPN, assistant) is the same whatever the cause
const ConnectionFailedMessage = `Failed to connect to the server.
Ensures that you are on site, or that you are using the VPN.
Otherwise, call an assistant.`

// Client wraps the remote service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client rooted at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type fetchRequest struct {
	Sciper domain.Sciper `json:"sciper"`
}

type submitRequest struct {
	Sciper domain.Sciper `json:"sciper"`
	Answer string        `json:"answer"`
}

// Fetch retrieves the email addressed to id. The body is returned as-is
// whatever the status code.
func (c *Client) Fetch(ctx context.Context, id domain.Sciper) (string, error) {
	return c.do(ctx, http.MethodGet, fetchPath, fetchRequest{Sciper: id})
}

// Submit sends the fingerprint document for validation and returns the
// server's verdict text as-is whatever the status code.
func (c *Client) Submit(ctx context.Context, id domain.Sciper, document string) (string, error) {
	return c.do(ctx, http.MethodPost, submitPath, submitRequest{Sciper: id, Answer: document})
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", connectionFailed(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := logger.With("request_id", requestID, "method", method, "path", path)
	log.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err)
		return "", connectionFailed(err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("reading response failed", "error", err)
		return "", connectionFailed(err)
	}

	log.Debug("response received", "status", resp.StatusCode, "bytes", len(text))
	return string(text), nil
}

func connectionFailed(cause error) error {
	return domain.NewError(domain.KindConnectionFailed, ConnectionFailedMessage, cause)
}
