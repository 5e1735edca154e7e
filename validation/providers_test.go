package validation

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/speechgate/request"
)

func TestTables_Complete(t *testing.T) {
	cfg := DefaultConfig()
	tb := newTables(&cfg)

	for i := range request.TTSCount {
		if tb.synthesis[i] == nil {
			t.Errorf("no predicate for tts %s", request.TTS(i))
		}
	}
	for i := range request.VRCount {
		if tb.recognition[i] == nil {
			t.Errorf("no predicate for vr %s", request.VR(i))
		}
	}
	for i := range request.LanguageModelCount {
		if tb.languageModel[i] == nil {
			t.Errorf("no predicate for language model %s", request.LanguageModel(i))
		}
	}
}

func TestTables_MustBeCompletePanics(t *testing.T) {
	cfg := DefaultConfig()
	tb := newTables(&cfg)
	tb.recognition[request.VRWit] = nil

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing predicate")
		}
	}()
	tb.mustBeComplete()
}

func TestTables_OutOfRangeResolvesToUnknown(t *testing.T) {
	cfg := DefaultConfig()
	tb := newTables(&cfg)
	d := &request.Descriptor{}

	if err := tb.forTTS(request.TTS(99)).Check(AxisSynthesis, d); !errors.Is(err, ErrInvalidSynthesisProvider) {
		t.Errorf("tts: got %v, want ErrInvalidSynthesisProvider", err)
	}
	if err := tb.forVR(request.VR(-1)).Check(AxisRecognition, d); err != nil {
		t.Errorf("vr: got %v, want nil", err)
	}
	if err := tb.forLanguageModel(request.LanguageModel(99)).Check(AxisLanguageModel, d); !errors.Is(err, ErrInvalidRecognitionOrLanguageModel) {
		t.Errorf("language model: got %v, want ErrInvalidRecognitionOrLanguageModel", err)
	}
}

func TestCheckCredentials_WrapsForeignErrors(t *testing.T) {
	cause := errors.New("token revoked")

	v := New(nil)
	v.tables.recognition[request.VRWit] = PredicateFunc(func(Axis, *request.Descriptor) error { return cause })

	r := v.checkCredentials(&request.Descriptor{TTS: request.TTSLocal, VR: request.VRWit})
	if r == nil {
		t.Fatal("got nil, want rejection")
	}
	if r.Kind != KindMissingCredential || r.Axis != AxisRecognition {
		t.Errorf("got %s/%s, want missing_credential/recognition", r.Kind, r.Axis)
	}
	if !errors.Is(r, cause) || !errors.Is(r, ErrMissingCredential) {
		t.Errorf("got %v, want both cause and ErrMissingCredential in chain", r)
	}
}
