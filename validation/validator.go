// Package validation decides whether a remote voice request may be handed to
// its speech, synthesis and language understanding providers.
//
// The cascade runs four stages in order and stops at the first failure:
// shape (a descriptor exists), content (utterance and request id), selections
// (action and providers belong to their enumerations) and credentials (every
// selected provider has real, non-placeholder credentials). The verdict is a
// single bool; the reason is reported to the injected Observer only.
//
//	v := validation.New(nil, validation.WithObserver(obs))
//	if !v.ValidateParcel(ctx, d) {
//		return // decline silently
//	}
package validation

import (
	"context"
	"errors"

	"github.com/tailored-agentic-units/speechgate/observability"
	"github.com/tailored-agentic-units/speechgate/request"
)

// Validation event types.
const (
	EventAccept observability.EventType = "validation.accept"
	EventReject observability.EventType = "validation.reject"
	EventStage  observability.EventType = "validation.stage"
)

// Option configures a Validator.
type Option func(*Validator)

// WithObserver sets the diagnostic sink. The default discards events.
func WithObserver(o observability.Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observer = o
		}
	}
}

// Validator runs the validation cascade. It holds no per-request state and
// is safe for concurrent use.
type Validator struct {
	config   Config
	tables   *tables
	observer observability.Observer
}

// New creates a Validator. cfg is merged over DefaultConfig; nil uses the
// defaults.
func New(cfg *Config, opts ...Option) *Validator {
	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}

	v := &Validator{
		config:   c,
		tables:   newTables(&c),
		observer: observability.NoOpObserver{},
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Config returns the effective configuration.
func (v *Validator) Config() Config {
	return v.config
}

type stage struct {
	name  string
	check func(v *Validator, d *request.Descriptor) *Rejection
}

var (
	shapeStage       = stage{name: "shape", check: (*Validator).checkShape}
	contentStage     = stage{name: "content", check: (*Validator).checkContent}
	selectionsStage  = stage{name: "selections", check: (*Validator).checkSelections}
	credentialsStage = stage{name: "credentials", check: (*Validator).checkCredentials}
)

// ValidateContent reports whether d exists and carries an utterance and a
// request id. Used by the intake layer before deeper processing.
func (v *Validator) ValidateContent(ctx context.Context, d *request.Descriptor) bool {
	return v.CheckContent(ctx, d) == nil
}

// ValidateParcel runs the full cascade. A false verdict means the request
// must be declined without any provider call.
func (v *Validator) ValidateParcel(ctx context.Context, d *request.Descriptor) bool {
	return v.CheckParcel(ctx, d) == nil
}

// CheckContent is ValidateContent returning the first *Rejection.
func (v *Validator) CheckContent(ctx context.Context, d *request.Descriptor) error {
	return v.run(ctx, "validation.ValidateContent", d, shapeStage, contentStage)
}

// CheckParcel is ValidateParcel returning the first *Rejection.
func (v *Validator) CheckParcel(ctx context.Context, d *request.Descriptor) error {
	return v.run(ctx, "validation.ValidateParcel", d, shapeStage, contentStage, selectionsStage, credentialsStage)
}

func (v *Validator) run(ctx context.Context, source string, d *request.Descriptor, stages ...stage) error {
	for _, s := range stages {
		if r := s.check(v, d); r != nil {
			v.emitReject(ctx, source, s.name, d, r)
			return r
		}
		observability.Emit(ctx, v.observer, EventStage, observability.LevelVerbose, source, map[string]any{
			"stage":      s.name,
			"request_id": d.RequestID,
		})
	}

	observability.Emit(ctx, v.observer, EventAccept, observability.LevelInfo, source, map[string]any{
		"request_id":     d.RequestID,
		"action":         d.Action.String(),
		"tts":            d.TTS.String(),
		"vr":             d.VR.String(),
		"language_model": d.LanguageModel.String(),
	})
	return nil
}

func (v *Validator) emitReject(ctx context.Context, source, stageName string, d *request.Descriptor, r *Rejection) {
	data := map[string]any{
		"stage":  stageName,
		"kind":   string(r.Kind),
		"reason": v.config.Messages.Format(r, v.config.NuanceNLUHost),
	}
	if d != nil {
		data["request_id"] = d.RequestID
	}
	if r.Axis != "" {
		data["axis"] = string(r.Axis)
	}
	if r.Provider != "" {
		data["provider"] = r.Provider
	}
	if r.Field != "" {
		data["field"] = r.Field
	}

	observability.Emit(ctx, v.observer, EventReject, observability.LevelWarning, source, data)
}

func (v *Validator) checkShape(d *request.Descriptor) *Rejection {
	if d == nil {
		return reject(KindMissingDescriptor)
	}
	return nil
}

func (v *Validator) checkContent(d *request.Descriptor) *Rejection {
	if IsNaked(d.Utterance) {
		return reject(KindEmptyUtterance)
	}
	if IsNaked(d.RequestID) {
		return reject(KindEmptyRequestID)
	}
	return nil
}

func (v *Validator) checkSelections(d *request.Descriptor) *Rejection {
	switch d.Action {
	case request.ActionSpeakOnly, request.ActionSpeakListen:
	default:
		return reject(KindInvalidAction)
	}

	switch d.TTS {
	case request.TTSLocal, request.TTSNetworkNuance:
	default:
		return reject(KindInvalidSynthesisProvider)
	}

	switch d.VR {
	case request.VRNative, request.VRGoogleCloud, request.VRGoogleChromium, request.VRNuance,
		request.VRMicrosoft, request.VRWit, request.VRIBM, request.VRRemote:
		return nil
	}

	// No usable recognition provider: the request may still name an NLU
	// pipeline through the language model.
	switch d.LanguageModel {
	case request.LanguageModelLocal, request.LanguageModelNuance, request.LanguageModelMicrosoft,
		request.LanguageModelIBM, request.LanguageModelAPIAI, request.LanguageModelRemote:
		return nil
	}
	return reject(KindInvalidRecognitionOrLanguageModel)
}

func (v *Validator) checkCredentials(d *request.Descriptor) *Rejection {
	sweeps := []struct {
		axis      Axis
		predicate Predicate
	}{
		{AxisSynthesis, v.tables.forTTS(d.TTS)},
		{AxisRecognition, v.tables.forVR(d.VR)},
		{AxisLanguageModel, v.tables.forLanguageModel(d.LanguageModel)},
	}

	for _, s := range sweeps {
		if err := s.predicate.Check(s.axis, d); err != nil {
			var r *Rejection
			if errors.As(err, &r) {
				return r
			}
			return &Rejection{Kind: KindMissingCredential, Axis: s.axis, Err: err}
		}
	}
	return nil
}

var defaultValidator = New(nil)

// ValidateContent runs Validator.ValidateContent with the default
// configuration and no diagnostics.
func ValidateContent(ctx context.Context, d *request.Descriptor) bool {
	return defaultValidator.ValidateContent(ctx, d)
}

// ValidateParcel runs Validator.ValidateParcel with the default configuration
// and no diagnostics.
func ValidateParcel(ctx context.Context, d *request.Descriptor) bool {
	return defaultValidator.ValidateParcel(ctx, d)
}
