// Package todoapi implements the service.Service interface against a
// JSONPlaceholder-style REST API (/users, /users/{id}, /todos?userId=).
package todoapi

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
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"todoexport/internal/config"
	"todoexport/internal/service"
)

const (
	// DefaultBaseURL is the public API the exporter talks to by default.
	DefaultBaseURL = config.DefaultBaseURL

	// APITimeout is the per-request timeout used when none is configured.
	APITimeout = 10 * time.Second

	// RequestIDHeader carries a per-request id for correlating debug logs.
	RequestIDHeader = "X-Request-Id"
)

// Client implements service.Service over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

// New creates a client from the resolved configuration.
// With cfg.Debug set, every request and response is logged through cfg.Logger.
func New(cfg *config.Config) (*Client, error) {
	httpClient := &http.Client{}
	if cfg.Debug && cfg.Logger != nil {
		httpClient.Transport = newLoggingTransport(http.DefaultTransport, cfg.Logger)
	}
	return NewWithHTTPClient(cfg, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(cfg *config.Config, httpClient *http.Client) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url: %s", base)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = APITimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: u,
		http:    httpClient,
		timeout: timeout,
		log:     logger,
	}, nil
}

// User returns the profile for id. The returned ID is always the requested
// one, whatever the payload says.
func (c *Client) User(ctx context.Context, id service.UserID) (service.UserProfile, error) {
	var payload struct {
		Username string `json:"username"`
	}
	err := c.getJSON(ctx, request{
		path:     "/users/" + id.String(),
		required: []string{"username"},
	}, &payload)
	if err != nil {
		return service.UserProfile{}, err
	}
	return service.UserProfile{ID: id, Username: payload.Username}, nil
}

// Users returns all users in API order.
func (c *Client) Users(ctx context.Context) ([]service.UserProfile, error) {
	var users []service.UserProfile
	err := c.getJSON(ctx, request{
		path:     "/users",
		required: []string{"id", "username"},
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Tasks returns the task items for id in API order.
// A blank body, "null" or "[]" all yield an empty slice.
func (c *Client) Tasks(ctx context.Context, id service.UserID) ([]service.Task, error) {
	var tasks []service.Task
	err := c.getJSON(ctx, request{
		path:     "/todos",
		query:    url.Values{"userId": {strconv.Itoa(int(id))}},
		optional: true,
	}, &tasks)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// request describes one GET against the API.
type request struct {
	path  string
	query url.Values

	// required fields must be present and non-null on the decoded object,
	// or on every element when the body is an array.
	required []string

	// optional treats an empty body as "nothing", leaving dst untouched.
	optional bool
}

// getJSON performs r and decodes the body into dst.
// All failures are returned as *service.FetchError.
func (c *Client) getJSON(ctx context.Context, r request, dst any) error {
	endpoint := c.endpoint(r)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &service.FetchError{Kind: service.ErrTransport, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &service.FetchError{Kind: service.ErrTransport, URL: endpoint, Err: wrapError(err)}
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return &service.FetchError{Kind: service.ErrNotFound, URL: endpoint, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &service.FetchError{Kind: service.ErrTransport, URL: endpoint, Err: wrapError(err)}
	}
	body = bytes.TrimSpace(body)
	c.log.Debug("fetched",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if len(body) == 0 {
		if r.optional {
			return nil
		}
		return &service.FetchError{Kind: service.ErrEmptyResponse, URL: endpoint}
	}
	if !json.Valid(body) {
		return &service.FetchError{Kind: service.ErrMalformedJSON, URL: endpoint}
	}

	field, err := missingField(body, r.required)
	if err != nil {
		return &service.FetchError{Kind: service.ErrMalformedJSON, URL: endpoint, Err: err}
	}
	if field != "" {
		return &service.FetchError{Kind: service.ErrMissingField, URL: endpoint, Field: field}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &service.FetchError{Kind: service.ErrMalformedJSON, URL: endpoint, Err: err}
	}
	return nil
}

func (c *Client) endpoint(r request) string {
	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}
	return u.String()
}

// missingField returns the first required field absent from body.
// body must be valid JSON. A null document is missing everything; other
// scalars are left for the final decode to reject.
func missingField(body []byte, required []string) (string, error) {
	if len(required) == 0 {
		return "", nil
	}

	switch body[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return "", err
		}
		return firstMissing(obj, required), nil
	case '[':
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return "", err
		}
		for _, obj := range items {
			if f := firstMissing(obj, required); f != "" {
				return f, nil
			}
		}
	case 'n':
		return required[0], nil
	}
	return "", nil
}

func firstMissing(obj map[string]json.RawMessage, required []string) string {
	for _, f := range required {
		v, ok := obj[f]
		if !ok || string(v) == "null" {
			return f
		}
	}
	return ""
}

// wrapError gives timeouts a readable message while keeping the cause.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}
	return err
}
