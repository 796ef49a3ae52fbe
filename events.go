package turbo

import "github.com/zoobzio/capitan"

// Binding signals.
var (
	// HandlerBound is emitted when a handler is bound to an endpoint via To.
	// Fields: MethodKey, ArgsTypeKey, OutputTypeKey (when the inner unit
	// carries type metadata).
	HandlerBound = capitan.NewSignal("http.endpoint.bound", "Handler bound to endpoint replacing previous processor")
)

// Dispatch signals.
var (
	// ExtractFailed is emitted when argument extraction fails.
	// Fields: ArgsTypeKey, ErrorKey.
	ExtractFailed = capitan.NewSignal("http.extract.failed", "Request argument extraction failed")

	// ArgsInvalid is emitted when the extracted argument bundle fails validation.
	// Fields: ArgsTypeKey, ErrorKey.
	ArgsInvalid = capitan.NewSignal("http.extract.args.invalid", "Extracted argument bundle failed validation")

	// HandlerExecuting is emitted when handler execution begins.
	// Fields: ArgsTypeKey, OutputTypeKey.
	HandlerExecuting = capitan.NewSignal("http.handler.executing", "Handler execution started for incoming request")

	// HandlerSuccess is emitted when a handler returns successfully.
	// Fields: OutputTypeKey, StatusCodeKey.
	HandlerSuccess = capitan.NewSignal("http.handler.success", "Handler completed successfully and returned response")

	// HandlerError is emitted when a handler returns an error.
	// Fields: OutputTypeKey, ErrorKey.
	HandlerError = capitan.NewSignal("http.handler.error", "Handler returned error during execution")

	// OutputInvalid is emitted when handler output fails validation.
	// Fields: OutputTypeKey, ErrorKey.
	OutputInvalid = capitan.NewSignal("http.handler.output.invalid", "Handler output failed validation, internal error")

	// RequestRecovered is emitted when a request-time failure is degraded to
	// the fallback response instead of reaching the transport.
	// Fields: MethodKey, PathKey, ErrorKey.
	RequestRecovered = capitan.NewSignal("http.endpoint.recovered", "Request-time failure degraded to fallback response")
)

// Event field keys (primitive types only).
var (
	// Request fields.
	MethodKey = capitan.NewStringKey("method")
	PathKey   = capitan.NewStringKey("path")

	// Handler fields.
	ArgsTypeKey   = capitan.NewStringKey("args_type")
	OutputTypeKey = capitan.NewStringKey("output_type")
	StatusCodeKey = capitan.NewIntKey("status_code")
	ErrorKey      = capitan.NewStringKey("error")
)
