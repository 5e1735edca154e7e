// Package gateway composes the validation cascade, credential profiles,
// dispatch, and the intake transports into one runnable server.
//
// The gateway initializes from configuration via New. Functional options
// replace config-created subsystems, mainly for tests.
//
//	g, err := gateway.New(&cfg)
//	err = g.Run(ctx)
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tailored-agentic-units/speechgate/credentials"
	"github.com/tailored-agentic-units/speechgate/dispatch"
	"github.com/tailored-agentic-units/speechgate/intake"
	"github.com/tailored-agentic-units/speechgate/observability"
	"github.com/tailored-agentic-units/speechgate/request"
	"github.com/tailored-agentic-units/speechgate/validation"
)

// Gateway event types.
const (
	EventStart observability.EventType = "gateway.start"
	EventStop  observability.EventType = "gateway.stop"
	EventError observability.EventType = "gateway.error"
)

const shutdownTimeout = 10 * time.Second

// Option configures a Gateway. Options run before config-driven
// initialization and suppress the subsystem they set.
type Option func(*Gateway)

// WithObserver overrides the observer named in Config.Observer. Metrics are
// recorded regardless.
func WithObserver(o observability.Observer) Option {
	return func(g *Gateway) { g.observer = o }
}

// WithDispatcher overrides the config-created dispatcher. The gateway does
// not close an injected dispatcher.
func WithDispatcher(d dispatch.Dispatcher) Option {
	return func(g *Gateway) { g.dispatcher = d }
}

// WithRegistry overrides the private metrics registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(g *Gateway) { g.registry = r }
}

// WithProfile overrides the credential profile resolved from Config.Credentials.
func WithProfile(p *request.Credentials) Option {
	return func(g *Gateway) { g.profile = p }
}

// Gateway is the running voice request gateway.
type Gateway struct {
	config        Config
	observer      observability.Observer
	dispatcher    dispatch.Dispatcher
	closeDispatch func() error
	registry      *prometheus.Registry
	profile       *request.Credentials
	validator     *validation.Validator
	service       *intake.Service
	handler       http.Handler
}

// New creates a Gateway from configuration.
func New(cfg *Config, opts ...Option) (*Gateway, error) {
	if err := cfg.Intake.Validate(); err != nil {
		return nil, err
	}

	g := &Gateway{config: *cfg}

	for _, opt := range opts {
		opt(g)
	}

	if g.observer == nil {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to create observer: %w", err)
		}
		g.observer = obs
	}

	if g.registry == nil {
		g.registry = prometheus.NewRegistry()
	}
	metrics := observability.NewMetricsObserver(g.registry, cfg.MetricsNamespace)
	g.observer = observability.NewMultiObserver(g.observer, metrics)

	if g.profile == nil {
		profile, err := credentials.Resolve(context.Background(), &cfg.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials: %w", err)
		}
		g.profile = profile
	}

	g.closeDispatch = func() error { return nil }
	if g.dispatcher == nil {
		d, closeFn, err := dispatch.New(&cfg.Dispatch)
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatcher: %w", err)
		}
		g.dispatcher = d
		g.closeDispatch = closeFn
	}

	g.validator = validation.New(&cfg.Validation, validation.WithObserver(g.observer))
	g.service = intake.NewService(g.validator,
		intake.WithDispatcher(g.dispatcher),
		intake.WithProfile(g.profile),
		intake.WithObserver(g.observer),
	)
	g.handler = intake.NewRouter(g.service, intake.WithGatherer(g.registry))

	return g, nil
}

// Validator returns the configured validation cascade.
func (g *Gateway) Validator() *validation.Validator {
	return g.validator
}

// Service returns the intake service shared by every transport.
func (g *Gateway) Service() *intake.Service {
	return g.service
}

// Handler returns the HTTP handler serving every HTTP transport.
func (g *Gateway) Handler() http.Handler {
	return g.handler
}

// Run serves HTTP, and MQTT when configured, until ctx is done. It then shuts
// the listeners down and closes the dispatcher.
func (g *Gateway) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if err := g.closeDispatch(); err != nil {
			observability.Emit(ctx, g.observer, EventError, observability.LevelError, "gateway.Run", map[string]any{
				"stage": "dispatch.close",
				"error": err.Error(),
			})
		}
	}()

	server := &http.Server{
		Addr:              g.config.Intake.Addr,
		Handler:           g.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// One slot per listener so neither goroutine blocks after Run returns.
	errc := make(chan error, 2)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http server: %w", err)
		}
	}()

	// The broker may be unreachable for a long time; HTTP serves meanwhile.
	if g.config.Intake.MQTT.Enabled() {
		sub := intake.NewSubscriber(g.config.Intake.MQTT, g.service, g.observer)
		go func() {
			if err := sub.Start(ctx); err != nil && ctx.Err() == nil {
				errc <- err
			}
		}()
	}

	observability.Emit(ctx, g.observer, EventStart, observability.LevelInfo, "gateway.Run", map[string]any{
		"addr": g.config.Intake.Addr,
		"mqtt": g.config.Intake.MQTT.Enabled(),
	})

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("http shutdown: %w", err)
	}

	observability.Emit(ctx, g.observer, EventStop, observability.LevelInfo, "gateway.Run", nil)
	return runErr
}
