package turbo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fixedBody is a typed handler result with its own response conversion.
type fixedBody struct {
	Text string
}

func (b fixedBody) ToResponse() *Response {
	return NewResponse(http.StatusOK).WithBody([]byte(b.Text))
}

// nameArgs is an argument bundle extracted from the query string.
type nameArgs struct {
	Name string `validate:"required"`
}

var nameExtractor = ExtractorFunc[nameArgs](func(_ context.Context, req *Request) (nameArgs, error) {
	return nameArgs{Name: req.Params.Query["name"]}, nil
})

// stubService lets tests control both channels of the transport contract.
type stubService struct {
	readyErr error
	resp     *Response
	callErr  error
}

func (s *stubService) Ready(_ context.Context) error {
	return s.readyErr
}

func (s *stubService) Call(_ context.Context, _ *Request) (*Response, error) {
	return s.resp, s.callErr
}

func dispatchRequest(method, target string) *Request {
	return NewRequest(httptest.NewRequest(method, target, nil))
}

func TestNew_DefaultNotFound(t *testing.T) {
	ep := New()

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodPost, "/anything"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
	if len(resp.Body) != 0 {
		t.Errorf("expected empty body, got %q", resp.Body)
	}
}

func TestVerbConstructors(t *testing.T) {
	tests := []struct {
		name string
		ep   *Endpoint
		want string
	}{
		{"Get", Get(), http.MethodGet},
		{"Post", Post(), http.MethodPost},
		{"Put", Put(), http.MethodPut},
		{"Patch", Patch(), http.MethodPatch},
		{"Delete", Delete(), http.MethodDelete},
		{"Head", Head(), http.MethodHead},
		{"Options", Options(), http.MethodOptions},
		{"Method", Method("TRACE"), "TRACE"},
	}

	for _, tt := range tests {
		if got := tt.ep.Method(); got != tt.want {
			t.Errorf("%s: expected method %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestNew_NoMethodFilter(t *testing.T) {
	if got := New().Method(); got != "" {
		t.Errorf("expected no method filter, got %q", got)
	}
}

func TestSetMethod_LastWriteWins(t *testing.T) {
	ep := Get().SetMethod(http.MethodPut).SetMethod(http.MethodDelete)
	if got := ep.Method(); got != http.MethodDelete {
		t.Errorf("expected %q, got %q", http.MethodDelete, got)
	}
}

func TestMatches(t *testing.T) {
	if !New().Matches(http.MethodGet) || !New().Matches(http.MethodPost) {
		t.Error("unfiltered endpoint should match any method")
	}

	ep := Post()
	if !ep.Matches(http.MethodPost) {
		t.Error("POST endpoint should match POST")
	}
	if ep.Matches(http.MethodGet) {
		t.Error("POST endpoint should not match GET")
	}
}

func TestTo_FixedBody(t *testing.T) {
	ep := Get().To(HandleFunc(func(_ context.Context) (fixedBody, error) {
		return fixedBody{Text: "hello world"}, nil
	}))

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodGet, "/hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "hello world" {
		t.Errorf("expected body %q, got %q", "hello world", resp.Body)
	}
}

func TestTo_ReturnsSameEndpoint(t *testing.T) {
	ep := New()
	if got := ep.To(HandleFunc(func(_ context.Context) (*Response, error) {
		return NewResponse(http.StatusOK), nil
	})); got != ep {
		t.Error("To should return the endpoint it configured")
	}
}

func TestCall_SuccessPassesThroughUnchanged(t *testing.T) {
	want := NewResponse(http.StatusTeapot).WithBody([]byte("short and stout"))
	ep := New().To(HandleFunc(func(_ context.Context) (*Response, error) {
		return want, nil
	}))

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodGet, "/teapot"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != want {
		t.Error("success result should be forwarded without transformation")
	}
}

func TestCall_ExtractionFailureRecovered(t *testing.T) {
	ep := New().To(Handle(ExtractorFunc[nameArgs](func(_ context.Context, _ *Request) (nameArgs, error) {
		return nameArgs{}, ErrBadRequest
	}), func(_ context.Context, _ nameArgs) (fixedBody, error) {
		t.Error("handler must not run when extraction fails")
		return fixedBody{}, nil
	}))

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodGet, "/fail"))
	if err != nil {
		t.Fatalf("extraction failure must not escape, got %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("expected empty fallback body, got %q", resp.Body)
	}
}

func TestCall_HandlerErrorRecovered(t *testing.T) {
	ep := Get().To(HandleFunc(func(_ context.Context) (*Response, error) {
		return nil, ErrInternalServer
	}))

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodGet, "/boom"))
	if err != nil {
		t.Fatalf("handler failure must not escape, got %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("expected empty fallback body, got %q", resp.Body)
	}
}

func TestCall_PlainInnerErrorAlsoDegrades(t *testing.T) {
	ep := New().To(&stubService{callErr: errors.New("wire torn")})

	resp, err := ep.Call(context.Background(), dispatchRequest(http.MethodGet, "/torn"))
	if err != nil {
		t.Fatalf("request-time failure must not escape, got %v", err)
	}
	if resp == nil || len(resp.Body) != 0 {
		t.Errorf("expected empty fallback response, got %+v", resp)
	}
}

func TestReady_UnwrapsRecoverable(t *testing.T) {
	req := dispatchRequest(http.MethodGet, "/pending")
	ep := New().To(&stubService{
		readyErr: &RecoverableError{Request: req, Err: ErrServiceUnavailable},
	})

	err := ep.Ready(context.Background())
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}

	var rerr *RecoverableError
	if errors.As(err, &rerr) {
		t.Error("readiness error should discard the request context")
	}
}

func TestReady_PassesPlainErrorUnchanged(t *testing.T) {
	cause := errors.New("listener gone")
	ep := New().To(&stubService{readyErr: cause})

	if err := ep.Ready(context.Background()); !errors.Is(err, cause) {
		t.Errorf("expected %v, got %v", cause, err)
	}
}

func TestReady_NilWhenConfigured(t *testing.T) {
	if err := New().Ready(context.Background()); err != nil {
		t.Errorf("default endpoint should be ready, got %v", err)
	}
}

func TestTypeErasure_HeterogeneousCollection(t *testing.T) {
	greet := Get().To(Handle(nameExtractor, func(_ context.Context, args nameArgs) (fixedBody, error) {
		return fixedBody{Text: "hello " + args.Name}, nil
	}))
	status := Post().To(HandleFunc(func(_ context.Context) (*Response, error) {
		return NewResponse(http.StatusAccepted), nil
	}))

	endpoints := []*Endpoint{greet, status}

	greetReq := dispatchRequest(http.MethodGet, "/greet")
	greetReq.Params.Query["name"] = "gopher"

	resp, err := endpoints[0].Call(context.Background(), greetReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != "hello gopher" {
		t.Errorf("expected %q, got %q", "hello gopher", resp.Body)
	}

	resp, err = endpoints[1].Call(context.Background(), dispatchRequest(http.MethodPost, "/status"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("expected status 202, got %d", resp.StatusCode)
	}
}

func TestEndpointService_Info(t *testing.T) {
	ep := Get().To(Handle(nameExtractor, func(_ context.Context, _ nameArgs) (fixedBody, error) {
		return fixedBody{}, nil
	}))

	in, ok := ep.handler.(Inspectable)
	if !ok {
		t.Fatal("erased service should forward type metadata")
	}
	info := in.Info()
	if info.Args != "nameArgs" {
		t.Errorf("expected args type %q, got %q", "nameArgs", info.Args)
	}
	if info.Output != "fixedBody" {
		t.Errorf("expected output type %q, got %q", "fixedBody", info.Output)
	}
}
