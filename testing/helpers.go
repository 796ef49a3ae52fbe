// Package testing provides test utilities for turbo.
package testing

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/zoobzio/turbo"
)

// RequestBuilder provides a fluent interface for building dispatch requests.
type RequestBuilder struct {
	method  string
	path    string
	body    io.Reader
	headers map[string]string
	params  map[string]string
	query   map[string]string
	ctx     context.Context
}

// NewRequestBuilder creates a new RequestBuilder with the given method and path.
func NewRequestBuilder(method, path string) *RequestBuilder {
	return &RequestBuilder{
		method:  method,
		path:    path,
		headers: make(map[string]string),
		params:  make(map[string]string),
		query:   make(map[string]string),
		ctx:     context.Background(),
	}
}

// WithBody sets the request body from a reader.
func (b *RequestBuilder) WithBody(body io.Reader) *RequestBuilder {
	b.body = body
	return b
}

// WithHeader adds a header to the request.
func (b *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	b.headers[key] = value
	return b
}

// WithPathParam adds a router-matched path parameter.
func (b *RequestBuilder) WithPathParam(key, value string) *RequestBuilder {
	b.params[key] = value
	return b
}

// WithQueryParam adds a router-extracted query parameter.
func (b *RequestBuilder) WithQueryParam(key, value string) *RequestBuilder {
	b.query[key] = value
	return b
}

// WithContext sets the request context.
func (b *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	b.ctx = ctx
	return b
}

// Build creates the turbo.Request.
func (b *RequestBuilder) Build() *turbo.Request {
	httpReq := httptest.NewRequest(b.method, b.path, b.body)
	httpReq = httpReq.WithContext(b.ctx)
	for key, value := range b.headers {
		httpReq.Header.Set(key, value)
	}

	req := turbo.NewRequest(httpReq)
	for key, value := range b.params {
		req.Params.Path[key] = value
	}
	for key, value := range b.query {
		req.Params.Query[key] = value
	}
	return req
}

// Serve is a convenience function that drives one request through a service
// (an Endpoint or any unit satisfying the transport contract).
func Serve(svc turbo.Service, method, path string) (*turbo.Response, error) {
	return svc.Call(context.Background(), NewRequestBuilder(method, path).Build())
}
