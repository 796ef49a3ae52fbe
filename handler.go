package turbo

import (
	"context"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// Handler adapts one user-supplied function to the extracted argument bundle
// it declares. It owns the function exclusively, is instantiated once per
// binding, and carries type metadata for diagnostics. T is the argument
// bundle an Extractor produces; U is the typed result the Responder
// capability converts to a wire response.
type Handler[T any, U Responder] struct {
	fn func(context.Context, T) (U, error)

	// Type metadata from sentinel.
	ArgsMeta   sentinel.ModelMetadata
	OutputMeta sentinel.ModelMetadata
}

// NewHandler wraps fn. Any mismatch between the argument types fn declares
// and what extraction can produce is a compile-time concern in the
// Extractor's type parameter; nothing can fail here at runtime.
func NewHandler[T any, U Responder](fn func(context.Context, T) (U, error)) *Handler[T, U] {
	return &Handler[T, U]{
		fn:         fn,
		ArgsMeta:   scanMeta[T](),
		OutputMeta: scanMeta[U](),
	}
}

// Invoke calls the wrapped function with an already-extracted bundle.
func (h *Handler[T, U]) Invoke(ctx context.Context, args T) (U, error) {
	return h.fn(ctx, args)
}

// Info implements Inspectable.
func (h *Handler[T, U]) Info() HandlerInfo {
	return HandlerInfo{
		Args:   h.ArgsMeta.TypeName,
		Output: h.OutputMeta.TypeName,
	}
}

// HandlerInfo names the argument and output types a handler declares.
// Serializable so callers can surface it in diagnostics or documentation.
type HandlerInfo struct {
	Args   string `json:"args" yaml:"args"`
	Output string `json:"output" yaml:"output"`
}

// Inspectable exposes handler type metadata when a unit carries it. Erased
// services implement it optionally; callers must not rely on its presence.
type Inspectable interface {
	Info() HandlerInfo
}

// scanMeta returns sentinel metadata for T. Sentinel models struct types
// only, so non-struct and pointer shapes fall back to the bare type name.
func scanMeta[T any]() sentinel.ModelMetadata {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return sentinel.ModelMetadata{TypeName: t.String()}
	}
	return sentinel.Scan[T]()
}
