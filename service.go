package turbo

import "context"

// Service is the fixed transport contract every endpoint-level unit exposes.
// The router holds a homogeneous collection of Services and drives each
// request through exactly these two operations, without knowing the original
// handler signature behind them.
//
// Each Call is an independent computation: no state is shared between
// concurrent invocations, the runtime drives each one in its own goroutine,
// and cancellation is the context's. Exactly one attempt per request;
// nothing here retries.
type Service interface {
	// Ready reports whether the unit can accept a request. A nil return
	// means a Call may follow. Readiness failures do not corrupt the unit;
	// a later Ready may succeed.
	Ready(ctx context.Context) error

	// Call processes one request and resolves to a response or an error.
	Call(ctx context.Context, req *Request) (*Response, error)
}

// RecoverableError pairs a failure with the request that produced it, so an
// outer adapter can still answer the client. Extraction pipelines fail with
// this type; the erased endpoint service recovers it into a fallback
// response instead of letting it reach the transport.
type RecoverableError struct {
	Request *Request
	Err     error
}

func (e *RecoverableError) Error() string {
	return e.Err.Error()
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}
