package turbo

import "net/http"

// Response is the wire-level response value dispatch produces. It is a plain
// value type; writing it to a transport connection happens outside this
// layer (Write is provided for servers that want it).
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse returns an empty-body response with the given status code.
func NewResponse(status int) *Response {
	return &Response{
		StatusCode: status,
		Header:     make(http.Header),
	}
}

// WithBody sets the response body and returns the response for chaining.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

// WithHeader sets a response header and returns the response for chaining.
func (r *Response) WithHeader(key, value string) *Response {
	r.Header.Set(key, value)
	return r
}

// ToResponse implements Responder.
func (r *Response) ToResponse() *Response {
	return r
}

// Write flushes the response to w. Headers are written before the status
// line, then the body if present.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(r.StatusCode)
	if len(r.Body) > 0 {
		if _, err := w.Write(r.Body); err != nil {
			return err
		}
	}
	return nil
}

// Responder converts a handler's typed return value into a wire response.
// Handlers return any type implementing it; *Response implements it as the
// identity. Serialization for specific output types is the application's
// concern, not this layer's.
type Responder interface {
	ToResponse() *Response
}
