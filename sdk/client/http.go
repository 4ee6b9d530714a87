// Package client provides REST access to the Qist Market admin API. Every
// request carries the bearer token of the current session when one exists;
// there is no automatic retry and a 401 is surfaced to the caller as an
// error, never acted on here.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// TokenSource supplies the bearer token attached to outgoing requests. It is
// read on every call so login/logout take effect immediately.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource backed by a fixed string.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client is the single point of outbound communication with the admin API.
type Client struct {
	base   string
	http   *resty.Client
	tokens TokenSource
}

type Option func(*Client)

// WithToken sets a fixed Authorization token.
func WithToken(tok string) Option {
	return func(c *Client) { c.tokens = StaticToken(tok) }
}

// WithTokenSource sets a dynamic token source, typically the session manager.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithHTTPClient replaces the underlying http.Client (tests, custom TLS).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = resty.NewWithClient(hc) }
}

// New returns a Client for the given base URL.
func New(base string, opts ...Option) *Client {
	c := &Client{base: strings.TrimSuffix(base, "/"), http: resty.New()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx).SetHeader("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			r.SetAuthToken(tok)
		}
	}
	return r
}

// errorBody is the shape the backend uses for error responses.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func restyErr(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	return sdk.NewAPIError(resp.StatusCode(), body.Message, body.Errors)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	r := c.req(ctx)
	if q != nil {
		r.SetQueryParamsFromValues(q)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Get(c.base + path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return restyErr(resp)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	r := c.req(ctx)
	if body != nil {
		r.SetBody(body)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Execute(method, c.base+path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return restyErr(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

// list fetches one page of a resource using the shared pagination contract.
func list[T any](ctx context.Context, c *Client, path string, q sdk.ListQuery) (sdk.PageResult[T], error) {
	var out sdk.PageResult[T]
	if err := c.get(ctx, path, q.Values(), &out); err != nil {
		return sdk.PageResult[T]{}, err
	}
	return out, nil
}

// bulk posts an id list to an action endpoint. Empty selections are rejected
// before any network traffic.
func (c *Client) bulk(ctx context.Context, path string, ids []string) error {
	if len(ids) == 0 {
		return sdk.ErrNothingSelected
	}
	return c.post(ctx, path, map[string]any{"ids": ids}, nil)
}
