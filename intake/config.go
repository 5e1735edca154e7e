package intake

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid intake config")

const (
	defaultAddr        = ":8080"
	defaultTopicPrefix = "speechgate"
	defaultClientID    = "speechgate"
)

var validate = validator.New()

// Config holds the listener settings of every transport.
type Config struct {
	Addr string     `json:"addr,omitempty" yaml:"addr,omitempty" validate:"required,hostname_port"`
	MQTT MQTTConfig `json:"mqtt" yaml:"mqtt"`
}

// MQTTConfig enables the MQTT subscriber when BrokerURL is set.
type MQTTConfig struct {
	BrokerURL   string `json:"broker_url,omitempty" yaml:"broker_url,omitempty" validate:"omitempty,url"`
	ClientID    string `json:"client_id,omitempty" yaml:"client_id,omitempty" validate:"required_with=BrokerURL"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty"`
	Password    string `json:"password,omitempty" yaml:"password,omitempty" validate:"excluded_without=Username"`
	TopicPrefix string `json:"topic_prefix,omitempty" yaml:"topic_prefix,omitempty" validate:"required_with=BrokerURL,excludesall=+#"`
	QoS         byte   `json:"qos,omitempty" yaml:"qos,omitempty" validate:"lte=2"`
}

// Enabled reports whether a broker is configured.
func (c *MQTTConfig) Enabled() bool {
	return c.BrokerURL != ""
}

// DefaultConfig returns the default listener settings. MQTT is disabled.
func DefaultConfig() Config {
	return Config{
		Addr: defaultAddr,
		MQTT: MQTTConfig{
			ClientID:    defaultClientID,
			TopicPrefix: defaultTopicPrefix,
			QoS:         1,
		},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}

	m, s := &c.MQTT, &source.MQTT
	if s.BrokerURL != "" {
		m.BrokerURL = s.BrokerURL
	}
	if s.ClientID != "" {
		m.ClientID = s.ClientID
	}
	if s.Username != "" {
		m.Username = s.Username
	}
	if s.Password != "" {
		m.Password = s.Password
	}
	if s.TopicPrefix != "" {
		m.TopicPrefix = s.TopicPrefix
	}
	if s.QoS > 0 {
		m.QoS = s.QoS
	}
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
