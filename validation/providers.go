package validation

import (
	"fmt"

	"github.com/tailored-agentic-units/speechgate/request"
)

// tables maps every variant on each axis to its credential predicate.
// Arrays are sized by the enumeration counts so a new variant without an
// entry is caught by newTables.
type tables struct {
	synthesis     [request.TTSCount]Predicate
	recognition   [request.VRCount]Predicate
	languageModel [request.LanguageModelCount]Predicate
}

func newTables(cfg *Config) *tables {
	p := providerPredicates(cfg)

	t := &tables{
		synthesis: [request.TTSCount]Predicate{
			request.TTSUnknown:       rejectAs(KindInvalidSynthesisProvider),
			request.TTSLocal:         Satisfied,
			request.TTSNetworkNuance: p.nuance,
		},
		recognition: [request.VRCount]Predicate{
			// Unknown recognition is covered by the language model fallback.
			request.VRUnknown:        Satisfied,
			request.VRNative:         Satisfied,
			request.VRGoogleCloud:    p.googleCloud,
			request.VRGoogleChromium: p.googleChromium,
			request.VRNuance:         p.nuance,
			request.VRMicrosoft:      p.microsoft,
			request.VRWit:            p.wit,
			request.VRIBM:            p.ibm,
			request.VRRemote:         p.remote,
		},
		languageModel: [request.LanguageModelCount]Predicate{
			request.LanguageModelUnknown:   rejectAs(KindInvalidRecognitionOrLanguageModel),
			request.LanguageModelLocal:     Satisfied,
			request.LanguageModelNuance:    p.nuance,
			request.LanguageModelMicrosoft: p.microsoft,
			request.LanguageModelIBM:       p.ibm,
			request.LanguageModelAPIAI:     p.apiAI,
			request.LanguageModelWit:       p.wit,
			request.LanguageModelRemote:    p.remote,
		},
	}

	t.mustBeComplete()
	return t
}

func (t *tables) mustBeComplete() {
	for i, p := range t.synthesis {
		if p == nil {
			panic(fmt.Sprintf("validation: no credential predicate for tts %s", request.TTS(i)))
		}
	}
	for i, p := range t.recognition {
		if p == nil {
			panic(fmt.Sprintf("validation: no credential predicate for vr %s", request.VR(i)))
		}
	}
	for i, p := range t.languageModel {
		if p == nil {
			panic(fmt.Sprintf("validation: no credential predicate for language model %s", request.LanguageModel(i)))
		}
	}
}

// Out of range values resolve to the Unknown sentinel of their axis.

func (t *tables) forTTS(v request.TTS) Predicate {
	if int(v) < 0 || int(v) >= request.TTSCount {
		v = request.TTSUnknown
	}
	return t.synthesis[v]
}

func (t *tables) forVR(v request.VR) Predicate {
	if int(v) < 0 || int(v) >= request.VRCount {
		v = request.VRUnknown
	}
	return t.recognition[v]
}

func (t *tables) forLanguageModel(v request.LanguageModel) Predicate {
	if int(v) < 0 || int(v) >= request.LanguageModelCount {
		v = request.LanguageModelUnknown
	}
	return t.languageModel[v]
}

func rejectAs(kind Kind) Predicate {
	return PredicateFunc(func(Axis, *request.Descriptor) error { return reject(kind) })
}

type providers struct {
	nuance         Predicate
	googleCloud    Predicate
	googleChromium Predicate
	microsoft      Predicate
	ibm            Predicate
	wit            Predicate
	remote         Predicate
	apiAI          Predicate
}

func providerPredicates(cfg *Config) providers {
	prefix := cfg.PlaceholderPrefix

	nuance := requirements{provider: "nuance", prefix: prefix}
	nuanceSession := All(
		nuance.text("app_key", func(d *request.Descriptor) string { return d.Credentials.Nuance.AppKey }),
		nuance.uri("server_uri", "", func(d *request.Descriptor) string { return d.Credentials.Nuance.ServerURI }),
	)
	nuanceNLU := All(
		nuance.text("context_tag", func(d *request.Descriptor) string { return d.Credentials.Nuance.ContextTag }),
		nuance.uri("server_uri_nlu", cfg.NuanceNLUHost, func(d *request.Descriptor) string { return d.Credentials.Nuance.ServerURINLU }),
	)

	google := requirements{provider: "google_cloud", prefix: prefix}
	chromium := requirements{provider: "google_chromium", prefix: prefix}

	microsoft := requirements{provider: "microsoft", prefix: prefix}
	luis := All(
		microsoft.text("luis_app_id", func(d *request.Descriptor) string { return d.Credentials.Microsoft.LuisAppID }),
		microsoft.text("luis_subscription_id", func(d *request.Descriptor) string { return d.Credentials.Microsoft.LuisSubscriptionID }),
	)

	ibm := requirements{provider: "ibm", prefix: prefix}
	wit := requirements{provider: "wit", prefix: prefix}
	remote := requirements{provider: "remote", prefix: prefix}
	apiAI := requirements{provider: "api_ai", prefix: prefix}

	return providers{
		// The same Nuance predicate serves every axis. Synthesis credentials
		// are required whenever Nuance speaks; the NLU credentials take
		// precedence over recognition credentials when Nuance is also the
		// language model.
		nuance: All(
			When(ttsIs(request.TTSNetworkNuance), nuanceSession),
			Either(languageModelIs(request.LanguageModelNuance),
				nuanceNLU,
				When(vrIs(request.VRNuance), nuanceSession),
			),
		),
		googleCloud: All(
			google.text("access_token", func(d *request.Descriptor) string { return d.Credentials.GoogleCloud.AccessToken }),
			google.positive("access_expiry", func(d *request.Descriptor) int64 { return d.Credentials.GoogleCloud.AccessExpiry }),
		),
		googleChromium: chromium.text("api_key", func(d *request.Descriptor) string { return d.Credentials.GoogleChromium.APIKey }),
		// LUIS credentials are only required when Microsoft is the language
		// model; recognition-only selection never checks them.
		microsoft: All(
			microsoft.text("oxford_key_1", func(d *request.Descriptor) string { return d.Credentials.Microsoft.OxfordKey1 }),
			microsoft.text("oxford_key_2", func(d *request.Descriptor) string { return d.Credentials.Microsoft.OxfordKey2 }),
			When(languageModelIs(request.LanguageModelMicrosoft), luis),
		),
		ibm: All(
			ibm.text("username", func(d *request.Descriptor) string { return d.Credentials.IBM.Username }),
			ibm.text("password", func(d *request.Descriptor) string { return d.Credentials.IBM.Password }),
		),
		wit: wit.text("server_access_token", func(d *request.Descriptor) string { return d.Credentials.Wit.ServerAccessToken }),
		remote: All(
			remote.text("access_token", func(d *request.Descriptor) string { return d.Credentials.Remote.AccessToken }),
			remote.uri("server_uri", "", func(d *request.Descriptor) string { return d.Credentials.Remote.ServerURI }),
		),
		apiAI: apiAI.text("client_access_token", func(d *request.Descriptor) string { return d.Credentials.APIAI.ClientAccessToken }),
	}
}
