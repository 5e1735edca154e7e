// Package dispatch hands accepted requests to whatever performs the provider
// calls. The gateway itself never talks to a provider.
package dispatch

import (
	"context"
	"errors"

	"github.com/tailored-agentic-units/speechgate/request"
)

// ErrNilDescriptor is returned when a dispatcher is handed nothing to send.
var ErrNilDescriptor = errors.New("nil descriptor")

// Dispatcher forwards an accepted descriptor downstream.
type Dispatcher interface {
	Dispatch(ctx context.Context, d *request.Descriptor) error
}

// Func adapts a function to Dispatcher.
type Func func(ctx context.Context, d *request.Descriptor) error

func (f Func) Dispatch(ctx context.Context, d *request.Descriptor) error {
	return f(ctx, d)
}

// Discard drops every accepted request.
var Discard Dispatcher = Func(func(context.Context, *request.Descriptor) error { return nil })

// Config selects the downstream sink. An empty Brokers list means Discard.
type Config struct {
	Brokers []string `json:"brokers,omitempty" yaml:"brokers,omitempty"`
	Topic   string   `json:"topic,omitempty" yaml:"topic,omitempty"`
}

const defaultTopic = "speechgate.requests"

// DefaultConfig returns a configuration that discards accepted requests.
func DefaultConfig() Config {
	return Config{Topic: defaultTopic}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if len(source.Brokers) > 0 {
		c.Brokers = source.Brokers
	}
	if source.Topic != "" {
		c.Topic = source.Topic
	}
}

// New creates a Dispatcher from configuration. The returned close function
// releases any connections and is never nil.
func New(cfg *Config) (Dispatcher, func() error, error) {
	if len(cfg.Brokers) == 0 {
		return Discard, func() error { return nil }, nil
	}

	k, err := NewKafkaDispatcher(cfg.Brokers, cfg.Topic)
	if err != nil {
		return nil, nil, err
	}
	return k, k.Close, nil
}
