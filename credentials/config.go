package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tailored-agentic-units/speechgate/request"
)

// Config selects where the server-side profile comes from. Sources are
// layered in order: environment, File, then the named Profile from Dir.
// Later sources win field by field.
type Config struct {
	File     string   `json:"file,omitempty" yaml:"file,omitempty"`
	Dir      string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	Profile  string   `json:"profile,omitempty" yaml:"profile,omitempty"`
	EnvFiles []string `json:"env_files,omitempty" yaml:"env_files,omitempty"`
	Env      bool     `json:"env,omitempty" yaml:"env,omitempty"`
}

// DefaultConfig returns a configuration with no profile sources.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.File != "" {
		c.File = source.File
	}
	if source.Dir != "" {
		c.Dir = source.Dir
	}
	if source.Profile != "" {
		c.Profile = source.Profile
	}
	if len(source.EnvFiles) > 0 {
		c.EnvFiles = source.EnvFiles
	}
	if source.Env {
		c.Env = true
	}
}

// Enabled reports whether any source is configured.
func (c *Config) Enabled() bool {
	return c.File != "" || c.Profile != "" || c.Env || len(c.EnvFiles) > 0
}

// Resolve builds the profile described by cfg. It returns nil when no source
// is configured.
func Resolve(ctx context.Context, cfg *Config) (*request.Credentials, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	profile := &request.Credentials{}

	if len(cfg.EnvFiles) > 0 {
		if err := LoadEnvFile(cfg.EnvFiles...); err != nil {
			return nil, err
		}
	}
	if cfg.Env || len(cfg.EnvFiles) > 0 {
		profile.Merge(FromEnv(os.LookupEnv))
	}

	if cfg.File != "" {
		c, err := Load(cfg.File)
		if err != nil {
			return nil, err
		}
		profile.Merge(c)
	}

	if cfg.Profile != "" {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("%w: %s: no profile directory", ErrProfileNotFound, cfg.Profile)
		}
		c, err := loadProfile(ctx, NewFileStore(cfg.Dir), cfg.Profile)
		if err != nil {
			return nil, err
		}
		profile.Merge(c)
	}

	return profile, nil
}

// loadProfile names the available profiles when name is not among them.
func loadProfile(ctx context.Context, store Store, name string) (*request.Credentials, error) {
	c, err := store.Load(ctx, name)
	if err == nil || !errors.Is(err, ErrProfileNotFound) {
		return c, err
	}

	names, listErr := store.List(ctx)
	if listErr != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w (no profiles available)", err)
	}
	return nil, fmt.Errorf("%w (have %s)", err, strings.Join(names, ", "))
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}
