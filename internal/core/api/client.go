// Package api is the client side of the comment and note backend.
package api

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

	"github.com/rs/zerolog"
)

// DefaultBaseURL is where the backend listens in a local setup.
const DefaultBaseURL = "http://localhost:5000/api"

// Operation names, used for logs and metrics labels.
const (
	OpFetchVideo    = "fetch_video"
	OpFetchComments = "fetch_comments"
	OpCreateComment = "create_comment"
	OpCreateReply   = "create_reply"
	OpCreateNote    = "create_note"
	OpSearchNotes   = "search_notes"
)

// Client is the remote contract the page depends on.
type Client interface {
	FetchVideo(ctx context.Context, videoID string) (Video, error)
	FetchComments(ctx context.Context, videoID string) ([]Comment, error)
	CreateComment(ctx context.Context, videoID, text string) (Comment, error)
	CreateReply(ctx context.Context, videoID, commentID, text string) (Snippet, error)
	CreateNote(ctx context.Context, content string, tags []string) (Note, error)
	SearchNotes(ctx context.Context, term string) ([]Note, error)
}

// Observer is notified after every request. status is 0 when the request
// never produced a response.
type Observer interface {
	ObserveRequest(op string, status int, elapsed time.Duration)
}

// HTTPClient implements Client over HTTP with JSON bodies.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	userAgent string
	observer  Observer
	log       zerolog.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.userAgent = ua }
}

// WithObserver registers a request observer.
func WithObserver(o Observer) Option {
	return func(c *HTTPClient) { c.observer = o }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient creates a client rooted at baseURL, e.g. "http://localhost:5000/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No timeout: requests run until the backend answers or ctx is cancelled.
		http: &http.Client{},
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) FetchVideo(ctx context.Context, videoID string) (Video, error) {
	var out Video
	q := url.Values{"videoId": {videoID}}
	err := c.do(ctx, OpFetchVideo, http.MethodGet, "/video", q, nil, &out)
	return out, err
}

func (c *HTTPClient) FetchComments(ctx context.Context, videoID string) ([]Comment, error) {
	var out []Comment
	path := "/video/" + url.PathEscape(videoID) + "/comments"
	if err := c.do(ctx, OpFetchComments, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, videoID, text string) (Comment, error) {
	var out Comment
	path := "/video/" + url.PathEscape(videoID) + "/comment"
	err := c.do(ctx, OpCreateComment, http.MethodPost, path, nil, TextRequest{Text: text}, &out)
	return out, err
}

func (c *HTTPClient) CreateReply(ctx context.Context, videoID, commentID, text string) (Snippet, error) {
	var out ReplyResponse
	path := "/video/" + url.PathEscape(videoID) + "/comment/" + url.PathEscape(commentID) + "/reply"
	if err := c.do(ctx, OpCreateReply, http.MethodPost, path, nil, TextRequest{Text: text}, &out); err != nil {
		return Snippet{}, err
	}
	return out.Snippet, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, content string, tags []string) (Note, error) {
	if tags == nil {
		tags = []string{}
	}

	var out Note
	err := c.do(ctx, OpCreateNote, http.MethodPost, "/notes", nil, NoteRequest{Content: content, Tags: tags}, &out)
	return out, err
}

func (c *HTTPClient) SearchNotes(ctx context.Context, term string) ([]Note, error) {
	var out []Note
	q := url.Values{"search": {term}}
	if err := c.do(ctx, OpSearchNotes, http.MethodGet, "/notes", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request and decodes a 2xx JSON body into out. Every non-2xx
// status is a *StatusError regardless of what the body says.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any) (err error) {
	target := c.baseURL + path
	if query != nil {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		bits, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(bits)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	status := 0
	defer func() {
		elapsed := time.Since(start)
		if c.observer != nil {
			c.observer.ObserveRequest(op, status, elapsed)
		}
		c.log.Debug().
			Ctx(ctx).
			Str("op", op).
			Str("method", method).
			Str("url", target).
			Int("status", status).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("api request")
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Op:         op,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       string(excerpt),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
