package intake

import (
	"context"
	"fmt"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/tailored-agentic-units/speechgate/observability"
)

// MQTT event types.
const (
	EventMQTTConnectionLost observability.EventType = "intake.mqtt.connection_lost"
	EventMQTTMessage        observability.EventType = "intake.mqtt.message"
)

// RequestTopic returns the topic descriptors are published on.
func RequestTopic(prefix string) string {
	return strings.TrimRight(prefix, "/") + "/request"
}

// Subscriber feeds descriptors published on <prefix>/request into a Service.
type Subscriber struct {
	cfg      MQTTConfig
	svc      *Service
	observer observability.Observer
	client   paho.Client
}

// NewSubscriber creates a subscriber. Start connects it.
func NewSubscriber(cfg MQTTConfig, svc *Service, obs observability.Observer) *Subscriber {
	if obs == nil {
		obs = observability.NoOpObserver{}
	}
	return &Subscriber{cfg: cfg, svc: svc, observer: obs}
}

// Start connects to the broker and subscribes. It blocks until the first
// connection succeeds or ctx is done; the connection is closed when ctx is
// done.
func (s *Subscriber) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(s.cfg.BrokerURL).
		SetClientID(s.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
		opts.SetPassword(s.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		observability.Emit(ctx, s.observer, EventMQTTConnectionLost, observability.LevelError, "intake.mqtt", map[string]any{
			"broker": s.cfg.BrokerURL,
			"error":  err.Error(),
		})
	})

	// Resubscribe on every (re)connect; the session is not persistent.
	opts.SetOnConnectHandler(func(c paho.Client) {
		c.Subscribe(RequestTopic(s.cfg.TopicPrefix), s.cfg.QoS, s.handle)
	})

	s.client = paho.NewClient(opts)

	// With connect retry the token only completes once the broker answers.
	token := s.client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt connect %s: %w", s.cfg.BrokerURL, err)
		}
	case <-ctx.Done():
		go s.client.Disconnect(0)
		return fmt.Errorf("mqtt connect %s: %w", s.cfg.BrokerURL, ctx.Err())
	}

	go func() {
		<-ctx.Done()
		s.client.Disconnect(250)
	}()

	return nil
}

func (s *Subscriber) handle(_ paho.Client, msg paho.Message) {
	ctx := context.Background()

	accepted := s.svc.SubmitJSON(ctx, "intake.mqtt", msg.Payload())

	observability.Emit(ctx, s.observer, EventMQTTMessage, observability.LevelVerbose, "intake.mqtt", map[string]any{
		"topic":    msg.Topic(),
		"accepted": accepted,
	})
}
