package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every API call the client makes.
const DefaultTimeout = 10 * time.Second

// ErrInsecureURL is returned when the API URL uses plain HTTP to a
// non-localhost host without the insecure override.
var ErrInsecureURL = errors.New("api: refusing plain HTTP to a non-localhost host (use --insecure to override)")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the unquote API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	insecure bool
	timeout  time.Duration
}

// WithInsecure permits plain HTTP to hosts other than localhost.
func WithInsecure(insecure bool) Option {
	return func(o *clientOptions) { o.insecure = insecure }
}

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// NewClient validates baseURL and builds a client.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	o := clientOptions{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid API URL %q: %w", baseURL, err)
	}
	switch u.Scheme {
	case "https":
	case "http":
		if !o.insecure && !isLocalhost(u.Hostname()) {
			return nil, ErrInsecureURL
		}
	default:
		return nil, fmt.Errorf("api: unsupported scheme %q in API URL", u.Scheme)
	}

	return &Client{
		baseURL: u.String(),
		http:    &http.Client{Timeout: o.timeout},
	}, nil
}

func isLocalhost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// TodayPuzzle fetches the puzzle for the current UTC day.
func (c *Client) TodayPuzzle(ctx context.Context) (*Puzzle, error) {
	var p Puzzle
	if err := c.get(ctx, "/game/today", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RandomPuzzle fetches a random historical puzzle.
func (c *Client) RandomPuzzle(ctx context.Context) (*Puzzle, error) {
	var p Puzzle
	if err := c.get(ctx, "/game/random", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PuzzleFor fetches the puzzle for a YYYY-MM-DD date or an encoded
// game id; the server dispatches on the shape.
func (c *Client) PuzzleFor(ctx context.Context, idOrDate string) (*Puzzle, error) {
	var p Puzzle
	if err := c.get(ctx, "/game/"+url.PathEscape(idOrDate), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CheckSolution submits a solution for a game id.
func (c *Client) CheckSolution(ctx context.Context, gameID string, req CheckRequest) (*CheckResult, error) {
	var res CheckResult
	if err := c.post(ctx, "/game/"+url.PathEscape(gameID)+"/check", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RegisterPlayer mints a new player and returns its claim code.
func (c *Client) RegisterPlayer(ctx context.Context) (string, error) {
	var res RegisterResult
	if err := c.post(ctx, "/players", nil, &res); err != nil {
		return "", err
	}
	return res.ClaimCode, nil
}

// Stats fetches aggregates for a claim code.
func (c *Client) Stats(ctx context.Context, claimCode string) (*PlayerStats, error) {
	var s PlayerStats
	if err := c.get(ctx, "/players/"+url.PathEscape(claimCode)+"/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body ErrorBody
		if data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
			if json.Unmarshal(data, &body) == nil && body.Error != "" {
				apiErr.Message = body.Error
				apiErr.Code = body.Code
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}
