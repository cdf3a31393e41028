// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// Package api implements the client SDK for an AIStore cluster: a shared
// request dispatcher (Client) plus bucket and object handles layered on
// top of it.
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

	"github.com/google/uuid"

	"github.com/timoha/aistore/pkg/apierr"
	"github.com/timoha/aistore/pkg/cmn"
	"github.com/timoha/aistore/pkg/logger"
)

// errBodyLimit caps how much of an error response is read into the
// returned error message.
const errBodyLimit = 4 * 1024

// Config holds configuration for connecting to a cluster gateway.
type Config struct {
	// Endpoint is the gateway's base URL, e.g. "http://localhost:8080".
	Endpoint string
	// Timeout bounds a whole request including body transfer.
	// Zero means no client-side timeout.
	Timeout time.Duration
	// MaxIdleConns sizes the connection pool. Defaults to 100.
	MaxIdleConns int
	// HTTPClient overrides the built-in client. When set, Timeout and
	// MaxIdleConns are ignored.
	HTTPClient *http.Client
}

// Client dispatches HTTP requests to a single cluster gateway. All bucket
// and object handles created from it share its connection pool. Client is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a dispatcher for the given gateway endpoint.
func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", cfg.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q (expecting http(s)://host:port)", cfg.Endpoint)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		maxIdle := cfg.MaxIdleConns
		if maxIdle == 0 {
			maxIdle = 100
		}
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdle,
				MaxIdleConnsPerHost: maxIdle / 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: httpClient,
	}, nil
}

// Endpoint returns the gateway base URL the client was created with.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// ReqArgs describes a single request below the API version prefix.
type ReqArgs struct {
	Method string
	// Path is relative to /v1, e.g. "objects/images/cat.png". It is sent
	// verbatim, without additional escaping.
	Path   string
	Query  url.Values
	Header http.Header
	Body   io.Reader
	// ContentLength is set on the request when the body size is known
	// up front, so uploads are not sent chunked.
	ContentLength int64
}

// Request executes one request and returns the live response. A non-2xx
// status is drained, closed and converted into an *apierr.Error; transport
// failures come back wrapped, unretried. On success the caller owns the
// response body.
func (c *Client) Request(ctx context.Context, args *ReqArgs) (*http.Response, error) {
	reqURL := c.baseURL + "/" + cmn.APIVersion + "/" + args.Path
	if len(args.Query) > 0 {
		reqURL += "?" + args.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, args.Method, reqURL, args.Body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", args.Method, args.Path, err)
	}
	for k, vs := range args.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if args.ContentLength > 0 {
		req.ContentLength = args.ContentLength
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	logger.Ctx(ctx).Debug().
		Str("method", args.Method).
		Str("url", reqURL).
		Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", args.Method, args.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrMsg(resp.Body)
		resp.Body.Close()
		return nil, &apierr.Error{
			Status:  resp.StatusCode,
			Method:  args.Method,
			Path:    args.Path,
			Message: msg,
		}
	}
	return resp, nil
}

// do executes a request whose response body is not interesting and makes
// sure the connection is returned to the pool.
func (c *Client) do(ctx context.Context, args *ReqArgs) (http.Header, error) {
	resp, err := c.Request(ctx, args)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Header, nil
}

// doJSON executes a request and decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, args *ReqArgs, out any) error {
	resp, err := c.Request(ctx, args)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", args.Method, args.Path, err)
	}
	return nil
}

// jsonBody marshals v into a request body and matching header.
func jsonBody(v any) (io.Reader, http.Header, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal request body: %w", err)
	}
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	return bytes.NewReader(b), hdr, nil
}

// readErrMsg extracts the cluster's error message from a failed response.
// Gateways reply with either plain text or {"message": "..."}.
func readErrMsg(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, errBodyLimit))
	if err != nil || len(b) == 0 {
		return ""
	}
	var wrapped struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Message != "" {
		return wrapped.Message
	}
	return strings.TrimSpace(string(b))
}
