// Package turbo adapts typed handler functions into uniform, type-erased
// endpoint services that a router can store and drive through one fixed
// contract. Transport, routing, and concrete extraction live elsewhere.
package turbo

import (
	"context"
	"errors"
	"net/http"

	"github.com/zoobzio/capitan"
)

// Endpoint is one registered route target: an optional HTTP method filter
// plus one type-erased request processor.
//
// Endpoint uses a builder-like pattern for configuration. Every builder call
// replaces a field and returns the endpoint for chaining; once handed to a
// router the endpoint is treated as read-only. An unconfigured Endpoint is
// still valid: its fixed behavior is to respond 404 with an empty body.
type Endpoint struct {
	method  string // empty matches any method
	handler Service
}

// New creates an endpoint which matches any request and responds 404 until a
// handler is bound. Never fails.
func New() *Endpoint {
	notFound := NewHandler(func(_ context.Context, _ NoArgs) (*Response, error) {
		return NewResponse(http.StatusNotFound), nil
	})
	return &Endpoint{
		handler: newEndpointService(NewExtract[NoArgs, *Response](noArgsExtractor{}, notFound)),
	}
}

// Method creates an endpoint restricted to the given HTTP method.
func Method(method string) *Endpoint {
	return New().SetMethod(method)
}

// Get creates an endpoint for HTTP GET requests.
func Get() *Endpoint {
	return Method(http.MethodGet)
}

// Post creates an endpoint for HTTP POST requests.
func Post() *Endpoint {
	return Method(http.MethodPost)
}

// Put creates an endpoint for HTTP PUT requests.
func Put() *Endpoint {
	return Method(http.MethodPut)
}

// Patch creates an endpoint for HTTP PATCH requests.
func Patch() *Endpoint {
	return Method(http.MethodPatch)
}

// Delete creates an endpoint for HTTP DELETE requests.
func Delete() *Endpoint {
	return Method(http.MethodDelete)
}

// Head creates an endpoint for HTTP HEAD requests.
func Head() *Endpoint {
	return Method(http.MethodHead)
}

// Options creates an endpoint for HTTP OPTIONS requests.
func Options() *Endpoint {
	return Method(http.MethodOptions)
}

// SetMethod assigns the endpoint to an HTTP method and returns the endpoint
// for chaining. Last write wins.
func (e *Endpoint) SetMethod(method string) *Endpoint {
	e.method = method
	return e
}

// Method returns the endpoint's method filter; empty means any method.
func (e *Endpoint) Method() string {
	return e.method
}

// Matches reports whether the endpoint accepts the given HTTP method.
func (e *Endpoint) Matches(method string) bool {
	return e.method == "" || e.method == method
}

// To replaces the endpoint's handler with a freshly erased service around
// inner and returns the endpoint for chaining. inner is typically an Extract
// pipeline built with Handle or HandleFunc, but any Service whose failures
// carry the request (*RecoverableError) works.
func (e *Endpoint) To(inner Service) *Endpoint {
	e.handler = newEndpointService(inner)

	if in, ok := inner.(Inspectable); ok {
		info := in.Info()
		capitan.Emit(context.Background(), HandlerBound,
			MethodKey.Field(e.method),
			ArgsTypeKey.Field(info.Args),
			OutputTypeKey.Field(info.Output),
		)
	} else {
		capitan.Emit(context.Background(), HandlerBound, MethodKey.Field(e.method))
	}

	return e
}

// Ready implements Service by forwarding to the bound handler.
func (e *Endpoint) Ready(ctx context.Context) error {
	return e.handler.Ready(ctx)
}

// Call implements Service by forwarding to the bound handler, so a router
// can hold []*Endpoint and drive every entry through the identical contract.
func (e *Endpoint) Call(ctx context.Context, req *Request) (*Response, error) {
	return e.handler.Call(ctx, req)
}

// Handle adapts fn, with ex supplying its argument bundle, into a unit the
// builder's To accepts. One concrete Extract/Handler pair is generated per
// distinct signature at binding time; after To the types are erased.
func Handle[T any, U Responder](ex Extractor[T], fn func(context.Context, T) (U, error)) Service {
	return NewExtract(ex, NewHandler(fn))
}

// HandleFunc adapts a handler that takes no request-derived arguments.
func HandleFunc[U Responder](fn func(context.Context) (U, error)) Service {
	return Handle[NoArgs, U](noArgsExtractor{}, func(ctx context.Context, _ NoArgs) (U, error) {
		return fn(ctx)
	})
}

// endpointService presents any inner unit as the plain Service contract and
// keeps inner failures away from the transport: request-time errors degrade
// to a fallback response, only readiness errors escape.
type endpointService struct {
	inner    Service
	fallback func(req *Request, err error) *Response
}

func newEndpointService(inner Service) *endpointService {
	return &endpointService{
		inner:    inner,
		fallback: fallbackResponse,
	}
}

// Ready forwards the inner readiness check. A recoverable inner failure is
// unwrapped to its bare cause; readiness failures have no response to attach
// the request to.
func (s *endpointService) Ready(ctx context.Context) error {
	err := s.inner.Ready(ctx)
	var rerr *RecoverableError
	if errors.As(err, &rerr) {
		return rerr.Err
	}
	return err
}

// Call forwards one request to the inner unit. Success passes through
// unchanged. Any inner failure is swallowed and converted into the fallback
// response; Call never returns a non-nil error.
func (s *endpointService) Call(ctx context.Context, req *Request) (*Response, error) {
	resp, err := s.inner.Call(ctx, req)
	if err == nil {
		return resp, nil
	}

	capitan.Warn(ctx, RequestRecovered,
		MethodKey.Field(req.Request.Method),
		PathKey.Field(req.URL.Path),
		ErrorKey.Field(err.Error()),
	)

	var rerr *RecoverableError
	if errors.As(err, &rerr) && rerr.Request != nil {
		req = rerr.Request
	}
	return s.fallback(req, err), nil
}

// Info implements Inspectable when the inner unit does.
func (s *endpointService) Info() HandlerInfo {
	if in, ok := s.inner.(Inspectable); ok {
		return in.Info()
	}
	return HandlerInfo{}
}

// fallbackResponse is the single mapping point from a request-time failure
// to the response the client receives.
// TODO: map error kinds to proper status codes; every failure currently
// degrades to an empty-body success.
func fallbackResponse(_ *Request, _ error) *Response {
	return NewResponse(http.StatusOK)
}
