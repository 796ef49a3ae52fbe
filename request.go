package turbo

import "net/http"

// Request is the incoming-request value this layer dispatches on. It embeds
// the transport's request for direct access and carries the parameters the
// surrounding router matched. Everything beyond that is opaque here; deriving
// typed handler arguments from it is the Extractor's job.
type Request struct {
	*http.Request
	Params *Params
}

// Params holds router-extracted request parameters.
type Params struct {
	Path  map[string]string // Path parameters (e.g., /users/{id})
	Query map[string]string // Query parameters (e.g., ?page=1)
}

// NewRequest wraps r for dispatch with empty parameters. Routers that match
// path segments fill Params before handing the request to an Endpoint.
func NewRequest(r *http.Request) *Request {
	return &Request{
		Request: r,
		Params: &Params{
			Path:  make(map[string]string),
			Query: make(map[string]string),
		},
	}
}

// NoArgs is the argument bundle for handlers that take nothing from the
// request. Used by HandleFunc and the default not-found handler.
type NoArgs struct{}
