package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client issues requests against a Paymodel gateway. Every request carries
// the payer identity in the X-Payer header. Each call owns its own
// request/response lifecycle, so a Client is safe for concurrent use.
// The zero value is not usable; construct with New.
type Client struct {
	baseURL string
	payer   string
	http    *http.Client
}

// New constructs a transport bound to the given gateway endpoint and payer
// address. A nil httpClient means http.DefaultClient; the transport itself
// adds no timeouts, retries, or redirect handling on top of it.
func New(baseURL, payer string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		payer:   payer,
		http:    httpClient,
	}
}

// Get issues a GET request and returns the raw JSON body together with the
// response headers.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, http.Header, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, nil, err
	}
	return c.do(req)
}

// Post issues a POST request with a JSON-serialized body and returns the raw
// JSON response body together with the response headers.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, http.Header, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, nil, err
	}
	return c.do(req)
}

// PostStream issues a POST request and returns the response body unread,
// left open for incremental consumption. The caller owns the returned reader
// and must close it. Non-2xx responses are drained, mapped to *APIError, and
// closed before returning.
func (c *Client) PostStream(ctx context.Context, path string, body any) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("gateway stream request", zap.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer closeBody(resp.Body)
		raw, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			zap.L().Debug("failed to read gateway error body", zap.Error(readErr))
		}
		return nil, newAPIError(resp.Status, raw)
	}

	return resp.Body, nil
}

// newRequest builds a request with the identity header set. POST bodies are
// serialized as JSON and flagged with the matching content type.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(PayerHeader, c.payer)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (json.RawMessage, http.Header, error) {
	zap.L().Debug("gateway request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request %s failed: %w", req.URL.Path, err)
	}
	defer closeBody(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, newAPIError(resp.Status, raw)
	}

	return raw, resp.Header, nil
}

func closeBody(rc io.ReadCloser) {
	if err := rc.Close(); err != nil {
		zap.L().Error("failed to close response body", zap.Error(err))
	}
}
