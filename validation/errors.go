package validation

import (
	"errors"
	"strings"
)

// Kind classifies why a descriptor was rejected.
type Kind string

const (
	KindMissingDescriptor                 Kind = "missing_descriptor"
	KindEmptyUtterance                    Kind = "empty_utterance"
	KindEmptyRequestID                    Kind = "empty_request_id"
	KindInvalidAction                     Kind = "invalid_action"
	KindInvalidSynthesisProvider          Kind = "invalid_synthesis_provider"
	KindInvalidRecognitionOrLanguageModel Kind = "invalid_recognition_or_language_model"
	KindMissingCredential                 Kind = "missing_credential"
	KindInvalidURIHost                    Kind = "invalid_uri_host"
)

// Sentinel errors, one per Kind. A *Rejection unwraps to the sentinel of its
// kind so callers can use errors.Is.
var (
	ErrMissingDescriptor                 = errors.New("missing descriptor")
	ErrEmptyUtterance                    = errors.New("empty utterance")
	ErrEmptyRequestID                    = errors.New("empty request id")
	ErrInvalidAction                     = errors.New("invalid action")
	ErrInvalidSynthesisProvider          = errors.New("invalid synthesis provider")
	ErrInvalidRecognitionOrLanguageModel = errors.New("invalid recognition provider or language model")
	ErrMissingCredential                 = errors.New("missing credential")
	ErrInvalidURIHost                    = errors.New("invalid uri host")
)

var kindErrors = map[Kind]error{
	KindMissingDescriptor:                 ErrMissingDescriptor,
	KindEmptyUtterance:                    ErrEmptyUtterance,
	KindEmptyRequestID:                    ErrEmptyRequestID,
	KindInvalidAction:                     ErrInvalidAction,
	KindInvalidSynthesisProvider:          ErrInvalidSynthesisProvider,
	KindInvalidRecognitionOrLanguageModel: ErrInvalidRecognitionOrLanguageModel,
	KindMissingCredential:                 ErrMissingCredential,
	KindInvalidURIHost:                    ErrInvalidURIHost,
}

// Axis is one of the three independent provider selections.
type Axis string

const (
	AxisSynthesis     Axis = "synthesis"
	AxisRecognition   Axis = "recognition"
	AxisLanguageModel Axis = "language_model"
)

// Rejection is the first failing check of a validation run. Axis, Provider
// and Field are set for credential failures only.
type Rejection struct {
	Kind     Kind
	Axis     Axis
	Provider string
	Field    string
	Err      error // cause reported by a predicate that is not itself a Rejection
}

func (r *Rejection) Error() string {
	var b strings.Builder
	b.WriteString("rejected: ")
	if sentinel, ok := kindErrors[r.Kind]; ok {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(string(r.Kind))
	}
	if r.Axis != "" {
		b.WriteString(": " + string(r.Axis))
	}
	if r.Provider != "" {
		b.WriteString(": " + r.Provider)
		if r.Field != "" {
			b.WriteString("." + r.Field)
		}
	}
	if r.Err != nil {
		b.WriteString(": " + r.Err.Error())
	}
	return b.String()
}

func (r *Rejection) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindErrors[r.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if r.Err != nil {
		errs = append(errs, r.Err)
	}
	return errs
}

func reject(kind Kind) *Rejection {
	return &Rejection{Kind: kind}
}
