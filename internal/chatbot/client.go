// Package chatbot provides a typed HTTP client for the task-assistant
// chat backend. All four operations are direct pass-through calls; the
// backend owns validation, ordering, and conversation storage.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultUserID is the identity used when none is configured.
	DefaultUserID = "user123"

	// DefaultTimeout bounds every request round trip.
	DefaultTimeout = 30 * time.Second

	defaultConversationLimit = 50
	defaultMessageLimit      = 100
)

// Client issues chat requests against a single backend, authenticated
// as the current user. The user identity is mutable via SetUserID and
// guarded for concurrent use; each request snapshots the identity once
// when it is built, so requests already in flight keep the identity
// they were issued with.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	userID string
}

// New creates a client for the backend at baseURL acting as userID.
// Empty or zero arguments fall back to the package defaults.
func New(baseURL, userID string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userID == "" {
		userID = DefaultUserID
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		userID:  userID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// UserID returns the current user identity.
func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// SetUserID switches the user identity for subsequent requests. The
// URL path prefix and Authorization header of every later request
// reflect the new identity.
func (c *Client) SetUserID(userID string) {
	c.mu.Lock()
	c.userID = userID
	c.mu.Unlock()
}

// SendMessage posts a message and returns the agent's response.
func (c *Client) SendMessage(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var result ChatResponse
	if err := c.do(ctx, http.MethodPost, "chat", nil, bytes.NewReader(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Conversations lists the user's conversations, most recent first as
// ordered by the backend. A zero limit means the default of 50.
func (c *Client) Conversations(ctx context.Context, limit int) ([]Conversation, error) {
	if limit == 0 {
		limit = defaultConversationLimit
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var result []Conversation
	if err := c.do(ctx, http.MethodGet, "conversations", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ConversationMessages lists the messages of one conversation in the
// order the backend returns them. A zero limit means the default of 100.
func (c *Client) ConversationMessages(ctx context.Context, conversationID int64, limit int) ([]Message, error) {
	if limit == 0 {
		limit = defaultMessageLimit
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	path := fmt.Sprintf("conversations/%d/messages", conversationID)

	var result []Message
	if err := c.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteConversation deletes a conversation and all its messages.
func (c *Client) DeleteConversation(ctx context.Context, conversationID int64) error {
	path := fmt.Sprintf("conversations/%d", conversationID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do issues one request rooted at /api/{userID}/ and decodes a 2xx
// response body into out when out is non-nil. Failures surface to the
// caller unmodified; there is no retry.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	// Snapshot the identity once so the path and header always agree.
	userID := c.UserID()

	reqURL := fmt.Sprintf("%s/api/%s/%s", c.baseURL, userID, path)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+userID)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
