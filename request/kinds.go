package request

import "strings"

// Action is the interaction the caller asks for.
type Action int

const (
	ActionUnknown Action = iota
	ActionSpeakOnly
	ActionSpeakListen

	// ActionCount is the number of Action variants, including the sentinel.
	ActionCount = int(iota)
)

var actionNames = [ActionCount]string{
	ActionUnknown:     "UNKNOWN",
	ActionSpeakOnly:   "SPEAK_ONLY",
	ActionSpeakListen: "SPEAK_LISTEN",
}

// TTS selects the speech synthesis provider.
type TTS int

const (
	TTSUnknown TTS = iota
	TTSLocal
	TTSNetworkNuance

	TTSCount = int(iota)
)

var ttsNames = [TTSCount]string{
	TTSUnknown:       "UNKNOWN",
	TTSLocal:         "LOCAL",
	TTSNetworkNuance: "NETWORK_NUANCE",
}

// VR selects the voice recognition provider.
type VR int

const (
	VRUnknown VR = iota
	VRNative
	VRGoogleCloud
	VRGoogleChromium
	VRNuance
	VRMicrosoft
	VRWit
	VRIBM
	VRRemote

	VRCount = int(iota)
)

var vrNames = [VRCount]string{
	VRUnknown:        "UNKNOWN",
	VRNative:         "NATIVE",
	VRGoogleCloud:    "GOOGLE_CLOUD",
	VRGoogleChromium: "GOOGLE_CHROMIUM",
	VRNuance:         "NUANCE",
	VRMicrosoft:      "MICROSOFT",
	VRWit:            "WIT",
	VRIBM:            "IBM",
	VRRemote:         "REMOTE",
}

// LanguageModel selects the natural language understanding provider.
type LanguageModel int

const (
	LanguageModelUnknown LanguageModel = iota
	LanguageModelLocal
	LanguageModelNuance
	LanguageModelMicrosoft
	LanguageModelIBM
	LanguageModelAPIAI
	LanguageModelWit
	LanguageModelRemote

	LanguageModelCount = int(iota)
)

var languageModelNames = [LanguageModelCount]string{
	LanguageModelUnknown:   "UNKNOWN",
	LanguageModelLocal:     "LOCAL",
	LanguageModelNuance:    "NUANCE",
	LanguageModelMicrosoft: "MICROSOFT",
	LanguageModelIBM:       "IBM",
	LanguageModelAPIAI:     "API_AI",
	LanguageModelWit:       "WIT",
	LanguageModelRemote:    "REMOTE",
}

func (a Action) String() string        { return nameOf(actionNames[:], int(a)) }
func (t TTS) String() string           { return nameOf(ttsNames[:], int(t)) }
func (v VR) String() string            { return nameOf(vrNames[:], int(v)) }
func (m LanguageModel) String() string { return nameOf(languageModelNames[:], int(m)) }

// ParseAction returns the Action named s, or ActionUnknown.
func ParseAction(s string) Action { return Action(indexOf(actionNames[:], s)) }

// ParseTTS returns the TTS provider named s, or TTSUnknown.
func ParseTTS(s string) TTS { return TTS(indexOf(ttsNames[:], s)) }

// ParseVR returns the VR provider named s, or VRUnknown.
func ParseVR(s string) VR { return VR(indexOf(vrNames[:], s)) }

// ParseLanguageModel returns the language model named s, or LanguageModelUnknown.
func ParseLanguageModel(s string) LanguageModel {
	return LanguageModel(indexOf(languageModelNames[:], s))
}

func (a Action) MarshalText() ([]byte, error)        { return []byte(a.String()), nil }
func (t TTS) MarshalText() ([]byte, error)           { return []byte(t.String()), nil }
func (v VR) MarshalText() ([]byte, error)            { return []byte(v.String()), nil }
func (m LanguageModel) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Unrecognised names decode to the Unknown sentinel rather than failing, so a
// descriptor always carries a member of its enumeration.

func (a *Action) UnmarshalText(b []byte) error {
	*a = ParseAction(string(b))
	return nil
}

func (t *TTS) UnmarshalText(b []byte) error {
	*t = ParseTTS(string(b))
	return nil
}

func (v *VR) UnmarshalText(b []byte) error {
	*v = ParseVR(string(b))
	return nil
}

func (m *LanguageModel) UnmarshalText(b []byte) error {
	*m = ParseLanguageModel(string(b))
	return nil
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return names[0]
	}
	return names[i]
}

func indexOf(names []string, s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return i
		}
	}
	return 0
}
