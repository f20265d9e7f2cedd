// Package httpx is a small fluent client for outgoing HTTP calls.
//
//	resp, err := httpx.Post(url).
//	    BasicAuth(key, secret).
//	    Body(map[string]any{"amount": 50000}).
//	    Timeout(10 * time.Second).
//	    Send(ctx)
//
//	var out GatewayOrder
//	err = resp.JSON(&out)
//
// There is deliberately no retry support: failed upstream calls surface
// immediately to the caller.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultClient is the shared client for all outgoing requests. Tests can
// swap its Transport to intercept calls.
var DefaultClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Request is a fluent HTTP request builder.
type Request struct {
	method  string
	url     string
	headers map[string]string
	user    string
	pass    string
	hasAuth bool
	body    any
	timeout time.Duration
}

// Get starts a GET request.
func Get(url string) *Request { return newRequest(http.MethodGet, url) }

// Post starts a POST request.
func Post(url string) *Request { return newRequest(http.MethodPost, url) }

func newRequest(method, url string) *Request {
	return &Request{
		method:  method,
		url:     url,
		headers: map[string]string{"Accept": "application/json"},
		timeout: 30 * time.Second,
	}
}

// Header adds a single header to the request.
func (r *Request) Header(key, value string) *Request {
	r.headers[key] = value
	return r
}

// BasicAuth sets HTTP basic-auth credentials.
func (r *Request) BasicAuth(user, pass string) *Request {
	r.user, r.pass, r.hasAuth = user, pass, true
	return r
}

// Body sets the request body. v is marshalled to JSON; pass []byte to send
// raw bytes.
func (r *Request) Body(v any) *Request {
	r.body = v
	return r
}

// Timeout sets the overall request timeout.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// Send executes the request.
func (r *Request) Send(ctx context.Context) (*Response, error) {
	var body io.Reader
	if r.body != nil {
		switch v := r.body.(type) {
		case []byte:
			body = bytes.NewReader(v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("httpx: marshal body: %w", err)
			}
			body = bytes.NewReader(b)
			r.headers["Content-Type"] = "application/json"
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("httpx: build request: %w", err)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if r.hasAuth {
		req.SetBasicAuth(r.user, r.pass)
	}

	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpx: send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Headers: resp.Header, Raw: raw}, nil
}

// Response wraps the HTTP response with convenience methods.
type Response struct {
	StatusCode int
	Headers    http.Header
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest any) error {
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("httpx: decode JSON: %w", err)
	}
	return nil
}

// Throw returns an error when the response status is not 2xx.
func (r *Response) Throw() error {
	if !r.OK() {
		return fmt.Errorf("httpx: request failed with status %d: %s", r.StatusCode, string(r.Raw))
	}
	return nil
}
