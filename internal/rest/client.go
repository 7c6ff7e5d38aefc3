// Package rest pairs a transport with a response policy and is the only
// call surface the vendor clients use.
package rest

import (
	"context"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/internal/response"
)

// Client sends requests through one transport and classifies every response
// with one policy.
type Client struct {
	transport *http.Client
	policy    response.Policy
}

// New binds transport to policy.
func New(transport *http.Client, policy response.Policy) *Client {
	return &Client{
		transport: transport,
		policy:    policy,
	}
}

// Transport returns the underlying transport.
func (c *Client) Transport() *http.Client {
	return c.transport
}

// Call performs req and decodes the outcome into out. A nil out marks a void
// operation.
func (c *Client) Call(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return err
	}

	return c.policy.Decode(resp, out)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Call(ctx, &http.Request{Method: nethttp.MethodGet, Path: path, Query: query}, out)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Call(ctx, &http.Request{Method: nethttp.MethodPost, Path: path, Body: body}, out)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Call(ctx, &http.Request{Method: nethttp.MethodPut, Path: path, Body: body}, out)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Call(ctx, &http.Request{Method: nethttp.MethodPatch, Path: path, Body: body}, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Call(ctx, &http.Request{Method: nethttp.MethodDelete, Path: path}, out)
}
