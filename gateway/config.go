package gateway

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/speechgate/credentials"
	"github.com/tailored-agentic-units/speechgate/dispatch"
	"github.com/tailored-agentic-units/speechgate/intake"
	"github.com/tailored-agentic-units/speechgate/validation"
)

const (
	defaultObserver         = "slog"
	defaultMetricsNamespace = "speechgate"
)

// Config holds initialization parameters for all gateway subsystems.
// Each section delegates to that subsystem's Merge.
type Config struct {
	Validation       validation.Config  `json:"validation" yaml:"validation"`
	Intake           intake.Config      `json:"intake" yaml:"intake"`
	Dispatch         dispatch.Config    `json:"dispatch" yaml:"dispatch"`
	Credentials      credentials.Config `json:"credentials" yaml:"credentials"`
	Observer         string             `json:"observer,omitempty" yaml:"observer,omitempty"`
	MetricsNamespace string             `json:"metrics_namespace,omitempty" yaml:"metrics_namespace,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Validation:       validation.DefaultConfig(),
		Intake:           intake.DefaultConfig(),
		Dispatch:         dispatch.DefaultConfig(),
		Credentials:      credentials.DefaultConfig(),
		Observer:         defaultObserver,
		MetricsNamespace: defaultMetricsNamespace,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Validation.Merge(&source.Validation)
	c.Intake.Merge(&source.Intake)
	c.Dispatch.Merge(&source.Dispatch)
	c.Credentials.Merge(&source.Credentials)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.MetricsNamespace != "" {
		c.MetricsNamespace = source.MetricsNamespace
	}
}

// LoadConfig reads a JSON or YAML config file (by extension), merges it with
// defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
