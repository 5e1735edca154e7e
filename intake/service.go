// Package intake receives remote voice requests over HTTP (connect or plain
// JSON) and MQTT, runs them through the validation cascade, and dispatches
// the accepted ones. Declined requests are dropped silently: callers only
// ever see a bool.
package intake

import (
	"context"

	"github.com/tailored-agentic-units/speechgate/credentials"
	"github.com/tailored-agentic-units/speechgate/dispatch"
	"github.com/tailored-agentic-units/speechgate/observability"
	"github.com/tailored-agentic-units/speechgate/request"
	"github.com/tailored-agentic-units/speechgate/validation"
)

// Intake event types.
const (
	EventDispatched    observability.EventType = "intake.dispatched"
	EventDispatchError observability.EventType = "intake.dispatch.error"
	EventDecodeError   observability.EventType = "intake.decode.error"
)

// Option configures a Service.
type Option func(*Service)

// WithDispatcher sets the downstream consumer of accepted requests. The
// default is dispatch.Discard.
func WithDispatcher(d dispatch.Dispatcher) Option {
	return func(s *Service) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

// WithProfile sets the server-side credentials applied under every request.
func WithProfile(p *request.Credentials) Option {
	return func(s *Service) { s.profile = p }
}

// WithObserver sets the diagnostic sink.
func WithObserver(o observability.Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// Service is the shared entry point behind every transport.
type Service struct {
	validator  *validation.Validator
	dispatcher dispatch.Dispatcher
	profile    *request.Credentials
	observer   observability.Observer
}

// NewService creates a Service around v. A nil v uses the default validator.
func NewService(v *validation.Validator, opts ...Option) *Service {
	if v == nil {
		v = validation.New(nil)
	}

	s := &Service{
		validator:  v,
		dispatcher: dispatch.Discard,
		observer:   observability.NoOpObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Receive performs the thin intake check: the request exists and carries an
// utterance and a request id.
func (s *Service) Receive(ctx context.Context, d *request.Descriptor) bool {
	return s.validator.ValidateContent(ctx, d)
}

// Submit fills blank credentials from the profile, runs the full cascade and
// dispatches the request when it is accepted. It reports false for a
// declined request and for a failed dispatch.
func (s *Service) Submit(ctx context.Context, d *request.Descriptor) bool {
	d = credentials.Apply(s.profile, d)

	if !s.validator.ValidateParcel(ctx, d) {
		return false
	}

	if err := s.dispatcher.Dispatch(ctx, d); err != nil {
		observability.Emit(ctx, s.observer, EventDispatchError, observability.LevelError, "intake.Submit", map[string]any{
			"request_id": d.RequestID,
			"error":      err.Error(),
		})
		return false
	}

	observability.Emit(ctx, s.observer, EventDispatched, observability.LevelVerbose, "intake.Submit", map[string]any{
		"request_id": d.RequestID,
	})
	return true
}

// SubmitJSON decodes body and submits it. A body that is not a descriptor is
// declined like any other invalid request.
func (s *Service) SubmitJSON(ctx context.Context, source string, body []byte) bool {
	d, err := request.Decode(body)
	if err != nil {
		observability.Emit(ctx, s.observer, EventDecodeError, observability.LevelWarning, source, map[string]any{
			"error": err.Error(),
			"bytes": len(body),
		})
		return false
	}
	return s.Submit(ctx, d)
}
