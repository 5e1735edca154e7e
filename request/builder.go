package request

import "github.com/google/uuid"

// Option configures a Descriptor built by New.
type Option func(*Descriptor)

func WithRequestID(id string) Option {
	return func(d *Descriptor) { d.RequestID = id }
}

func WithAction(a Action) Option {
	return func(d *Descriptor) { d.Action = a }
}

func WithTTS(t TTS) Option {
	return func(d *Descriptor) { d.TTS = t }
}

func WithVR(v VR) Option {
	return func(d *Descriptor) { d.VR = v }
}

func WithLanguageModel(m LanguageModel) Option {
	return func(d *Descriptor) { d.LanguageModel = m }
}

// WithCredentials replaces the descriptor's credential set.
func WithCredentials(c Credentials) Option {
	return func(d *Descriptor) { d.Credentials = c }
}

// New builds a descriptor that speaks the utterance with the on-device
// providers. Options override the defaults. When no request id is supplied
// a UUIDv7 is assigned.
func New(utterance string, opts ...Option) *Descriptor {
	d := &Descriptor{
		Utterance:     utterance,
		Action:        ActionSpeakOnly,
		TTS:           TTSLocal,
		VR:            VRNative,
		LanguageModel: LanguageModelLocal,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.RequestID == "" {
		d.RequestID = uuid.Must(uuid.NewV7()).String()
	}

	return d
}
