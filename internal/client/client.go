// Package client is a typed client for the UniDash HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/kvstore"
)

// Keys and paths shared with the rest of the client
const (
	TokenKey  = "auth_token"
	LoginPath = "/login"
)

// Navigator moves the user to another screen
type Navigator interface {
	Redirect(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

// Redirect implements Navigator
func (f NavigatorFunc) Redirect(path string) { f(path) }

// APIError is a failure reported by the API in its response envelope
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from the API
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// envelope mirrors the API response wrapper
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Message    string             `json:"message"`
	Error      string             `json:"error"`
	Code       string             `json:"code"`
}

// Client calls the API with the token held in its store
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      kvstore.Store
	navigator  Navigator
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8080/api/v1
func New(baseURL string, store kvstore.Store, navigator Navigator, opts ...Option) *Client {
	if navigator == nil {
		navigator = NavigatorFunc(func(string) {})
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
		navigator:  navigator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends one request and decodes the envelope's data into out. Transport
// failures are returned as-is; API failures as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, ok := c.store.Get(TokenKey)
	authenticated := ok && token != ""
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// a rejected sign-in is not an expired session
	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		c.signOut()
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success || resp.StatusCode >= 400 {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message, Code: env.Code}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return &env, nil
}

// signOut clears the stored token and sends the user to the login screen
func (c *Client) signOut() {
	_ = c.store.Remove(TokenKey)
	c.navigator.Redirect(LoginPath)
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func pagination(env *envelope) models.Pagination {
	if env.Pagination == nil {
		return models.Pagination{}
	}
	return *env.Pagination
}
