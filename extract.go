package turbo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
)

// Extractor produces the typed argument bundle a handler declares, or fails
// with an extraction error. How any particular request part is parsed is the
// implementation's concern; this layer only consumes the contract.
type Extractor[T any] interface {
	Extract(ctx context.Context, req *Request) (T, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc[T any] func(ctx context.Context, req *Request) (T, error)

// Extract implements Extractor.
func (f ExtractorFunc[T]) Extract(ctx context.Context, req *Request) (T, error) {
	return f(ctx, req)
}

// noArgsExtractor supplies the empty bundle for handlers that take nothing
// from the request.
type noArgsExtractor struct{}

func (noArgsExtractor) Extract(_ context.Context, _ *Request) (NoArgs, error) {
	return NoArgs{}, nil
}

// Extract pairs one Handler with the extraction capability for its argument
// type. It satisfies Service, but its failures carry the original request
// back out as *RecoverableError so the erased endpoint service can still
// answer the client. Stateless beyond the pair it owns; a pure
// transformation, not a store.
type Extract[T any, U Responder] struct {
	extractor Extractor[T]
	handler   *Handler[T, U]
	validator *validator.Validate
}

// NewExtract wraps handler with ex. The pair is owned exclusively.
func NewExtract[T any, U Responder](ex Extractor[T], handler *Handler[T, U]) *Extract[T, U] {
	return &Extract[T, U]{
		extractor: ex,
		handler:   handler,
		validator: validator.New(),
	}
}

// Ready implements Service. The pipeline holds no resources and is always
// ready; readiness failures can only come from units composed around it.
func (x *Extract[T, U]) Ready(_ context.Context) error {
	return nil
}

// Call implements Service: extract, validate, invoke, validate output,
// convert. Every failure short-circuits and carries req back out.
func (x *Extract[T, U]) Call(ctx context.Context, req *Request) (*Response, error) {
	args, err := x.extractor.Extract(ctx, req)
	if err != nil {
		capitan.Error(ctx, ExtractFailed,
			ArgsTypeKey.Field(x.handler.ArgsMeta.TypeName),
			ErrorKey.Field(err.Error()),
		)
		return nil, &RecoverableError{Request: req, Err: fmt.Errorf("extract %s: %w", x.handler.ArgsMeta.TypeName, err)}
	}

	if err := x.validateStruct(args); err != nil {
		capitan.Warn(ctx, ArgsInvalid,
			ArgsTypeKey.Field(x.handler.ArgsMeta.TypeName),
			ErrorKey.Field(err.Error()),
		)
		return nil, &RecoverableError{Request: req, Err: fmt.Errorf("validate %s: %w", x.handler.ArgsMeta.TypeName, err)}
	}

	capitan.Debug(ctx, HandlerExecuting,
		ArgsTypeKey.Field(x.handler.ArgsMeta.TypeName),
		OutputTypeKey.Field(x.handler.OutputMeta.TypeName),
	)

	out, err := x.handler.Invoke(ctx, args)
	if err != nil {
		capitan.Error(ctx, HandlerError,
			OutputTypeKey.Field(x.handler.OutputMeta.TypeName),
			ErrorKey.Field(err.Error()),
		)
		return nil, &RecoverableError{Request: req, Err: err}
	}

	if err := x.validateStruct(out); err != nil {
		capitan.Warn(ctx, OutputInvalid,
			OutputTypeKey.Field(x.handler.OutputMeta.TypeName),
			ErrorKey.Field(err.Error()),
		)
		return nil, &RecoverableError{Request: req, Err: fmt.Errorf("validate %s: %w", x.handler.OutputMeta.TypeName, err)}
	}

	resp := out.ToResponse()
	if resp == nil {
		return nil, &RecoverableError{Request: req, Err: fmt.Errorf("%s: nil response", x.handler.OutputMeta.TypeName)}
	}

	capitan.Info(ctx, HandlerSuccess,
		OutputTypeKey.Field(x.handler.OutputMeta.TypeName),
		StatusCodeKey.Field(resp.StatusCode),
	)

	return resp, nil
}

// Info implements Inspectable.
func (x *Extract[T, U]) Info() HandlerInfo {
	return x.handler.Info()
}

// validateStruct runs struct validation on v. Non-struct bundles (and nil
// pointers) pass untouched; validator only models structs.
func (x *Extract[T, U]) validateStruct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return x.validator.Struct(rv.Interface())
}
