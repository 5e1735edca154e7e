// Package request defines the remote request descriptor consumed by the
// validation cascade: the utterance, its correlation id, the provider
// selections on each axis, and the credentials those providers need.
//
// Descriptors are built once by the intake layer and never mutated afterwards.
//
//	d := request.New("turn on the lights",
//		request.WithAction(request.ActionSpeakOnly),
//		request.WithVR(request.VRNative),
//	)
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrDecode is returned by Decode when a payload is not a descriptor.
var ErrDecode = errors.New("decode descriptor")

// Descriptor is a single outbound voice assistant request.
type Descriptor struct {
	Utterance     string        `json:"utterance" yaml:"utterance"`
	RequestID     string        `json:"request_id" yaml:"request_id"`
	Action        Action        `json:"action" yaml:"action"`
	TTS           TTS           `json:"tts" yaml:"tts"`
	VR            VR            `json:"vr" yaml:"vr"`
	LanguageModel LanguageModel `json:"language_model" yaml:"language_model"`
	Credentials   Credentials   `json:"credentials" yaml:"credentials"`
}

// Credentials holds one group of fields per provider family. URI-typed fields
// are carried in their string form and parsed by the validator.
type Credentials struct {
	Nuance         NuanceCredentials         `json:"nuance" yaml:"nuance"`
	GoogleCloud    GoogleCloudCredentials    `json:"google_cloud" yaml:"google_cloud"`
	GoogleChromium GoogleChromiumCredentials `json:"google_chromium" yaml:"google_chromium"`
	Microsoft      MicrosoftCredentials      `json:"microsoft" yaml:"microsoft"`
	IBM            IBMCredentials            `json:"ibm" yaml:"ibm"`
	Wit            WitCredentials            `json:"wit" yaml:"wit"`
	Remote         RemoteCredentials         `json:"remote" yaml:"remote"`
	APIAI          APIAICredentials          `json:"api_ai" yaml:"api_ai"`
}

type NuanceCredentials struct {
	AppKey       string `json:"app_key,omitempty" yaml:"app_key,omitempty"`
	ServerURI    string `json:"server_uri,omitempty" yaml:"server_uri,omitempty"`
	ContextTag   string `json:"context_tag,omitempty" yaml:"context_tag,omitempty"`
	ServerURINLU string `json:"server_uri_nlu,omitempty" yaml:"server_uri_nlu,omitempty"`
}

type GoogleCloudCredentials struct {
	AccessToken  string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	AccessExpiry int64  `json:"access_expiry,omitempty" yaml:"access_expiry,omitempty"` // epoch millis
}

type GoogleChromiumCredentials struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// MicrosoftCredentials pairs the Oxford speech keys with the LUIS
// application used when Microsoft is also the language model.
type MicrosoftCredentials struct {
	OxfordKey1         string `json:"oxford_key_1,omitempty" yaml:"oxford_key_1,omitempty"`
	OxfordKey2         string `json:"oxford_key_2,omitempty" yaml:"oxford_key_2,omitempty"`
	LuisAppID          string `json:"luis_app_id,omitempty" yaml:"luis_app_id,omitempty"`
	LuisSubscriptionID string `json:"luis_subscription_id,omitempty" yaml:"luis_subscription_id,omitempty"`
}

type IBMCredentials struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

type WitCredentials struct {
	ServerAccessToken string `json:"server_access_token,omitempty" yaml:"server_access_token,omitempty"`
}

type RemoteCredentials struct {
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	ServerURI   string `json:"server_uri,omitempty" yaml:"server_uri,omitempty"`
}

type APIAICredentials struct {
	ClientAccessToken string `json:"client_access_token,omitempty" yaml:"client_access_token,omitempty"`
}

// Decode parses a JSON descriptor. Unknown enumeration names decode to their
// Unknown sentinel; only structurally invalid JSON fails.
func Decode(body []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &d, nil
}

// Merge applies non-naked values from source into c. Source wins wherever it
// carries a value; whitespace-only fields count as absent.
func (c *Credentials) Merge(source *Credentials) {
	mergeString(&c.Nuance.AppKey, source.Nuance.AppKey)
	mergeString(&c.Nuance.ServerURI, source.Nuance.ServerURI)
	mergeString(&c.Nuance.ContextTag, source.Nuance.ContextTag)
	mergeString(&c.Nuance.ServerURINLU, source.Nuance.ServerURINLU)

	mergeString(&c.GoogleCloud.AccessToken, source.GoogleCloud.AccessToken)
	if source.GoogleCloud.AccessExpiry > 0 {
		c.GoogleCloud.AccessExpiry = source.GoogleCloud.AccessExpiry
	}

	mergeString(&c.GoogleChromium.APIKey, source.GoogleChromium.APIKey)

	mergeString(&c.Microsoft.OxfordKey1, source.Microsoft.OxfordKey1)
	mergeString(&c.Microsoft.OxfordKey2, source.Microsoft.OxfordKey2)
	mergeString(&c.Microsoft.LuisAppID, source.Microsoft.LuisAppID)
	mergeString(&c.Microsoft.LuisSubscriptionID, source.Microsoft.LuisSubscriptionID)

	mergeString(&c.IBM.Username, source.IBM.Username)
	mergeString(&c.IBM.Password, source.IBM.Password)

	mergeString(&c.Wit.ServerAccessToken, source.Wit.ServerAccessToken)

	mergeString(&c.Remote.AccessToken, source.Remote.AccessToken)
	mergeString(&c.Remote.ServerURI, source.Remote.ServerURI)

	mergeString(&c.APIAI.ClientAccessToken, source.APIAI.ClientAccessToken)
}

func mergeString(dst *string, src string) {
	if strings.TrimSpace(src) != "" {
		*dst = src
	}
}
