package validation

import "strings"

const (
	defaultPlaceholderPrefix = "_your_"
	defaultNuanceNLUHost     = "nlu.nuancemobility.net"
)

// Config holds the tunables of the validation cascade.
type Config struct {
	// PlaceholderPrefix marks template values that were never filled in.
	PlaceholderPrefix string `json:"placeholder_prefix,omitempty" yaml:"placeholder_prefix,omitempty"`

	// NuanceNLUHost must appear in the Nuance NLU server URI when Nuance is
	// the language model.
	NuanceNLUHost string `json:"nuance_nlu_host,omitempty" yaml:"nuance_nlu_host,omitempty"`

	// Messages renders rejection reasons for diagnostics.
	Messages Messages `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() Config {
	return Config{
		PlaceholderPrefix: defaultPlaceholderPrefix,
		NuanceNLUHost:     defaultNuanceNLUHost,
		Messages:          DefaultMessages(),
	}
}

// Merge applies non-zero values from source into c. Messages merge per kind.
func (c *Config) Merge(source *Config) {
	if source.PlaceholderPrefix != "" {
		c.PlaceholderPrefix = source.PlaceholderPrefix
	}
	if source.NuanceNLUHost != "" {
		c.NuanceNLUHost = source.NuanceNLUHost
	}
	if len(source.Messages) > 0 {
		merged := make(Messages, len(c.Messages)+len(source.Messages))
		for k, v := range c.Messages {
			merged[k] = v
		}
		for k, v := range source.Messages {
			if v != "" {
				merged[k] = v
			}
		}
		c.Messages = merged
	}
}

// Messages maps each rejection kind to a human-readable template. Templates
// may reference {axis}, {provider}, {field} and {host}.
type Messages map[Kind]string

// DefaultMessages returns the English catalog.
func DefaultMessages() Messages {
	return Messages{
		KindMissingDescriptor:                 "The remote request was empty",
		KindEmptyUtterance:                    "The utterance supplied with the request was invalid",
		KindEmptyRequestID:                    "The request id supplied with the request was invalid",
		KindInvalidAction:                     "The requested action is not supported",
		KindInvalidSynthesisProvider:          "The requested text to speech provider is not supported",
		KindInvalidRecognitionOrLanguageModel: "The requested voice recognition provider or language model is not supported",
		KindMissingCredential:                 "The {provider} {field} required for {axis} is missing or a placeholder",
		KindInvalidURIHost:                    "The {provider} {field} required for {axis} must address {host}",
	}
}

// Format renders the reason for r. Unknown kinds fall back to r.Error().
func (m Messages) Format(r *Rejection, host string) string {
	tmpl, ok := m[r.Kind]
	if !ok || tmpl == "" {
		return r.Error()
	}
	return strings.NewReplacer(
		"{axis}", string(r.Axis),
		"{provider}", r.Provider,
		"{field}", r.Field,
		"{host}", host,
	).Replace(tmpl)
}
