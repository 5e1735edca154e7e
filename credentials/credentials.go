// Package credentials supplies server-side credential profiles. A profile
// fills the credential fields a client left blank, so deployments can keep
// provider secrets out of every request.
//
// Profiles come from a single JSON or YAML file, a directory of named profile
// files, or the process environment (optionally seeded from .env files).
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/speechgate/request"
)

// Sentinel errors for profile loading.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrLoadFailed      = errors.New("load failed")
	ErrFormat          = errors.New("unsupported profile format")
)

// Load reads a profile file. The format is chosen by extension: .json,
// .yaml or .yml.
func Load(path string) (*request.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes profile data in the format named by ext.
func Parse(ext string, data []byte) (*request.Credentials, error) {
	var c request.Credentials

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	return &c, nil
}

// LoadEnvFile loads .env files into the process environment. Variables that
// are already set are not overridden. With no paths, ./.env is loaded.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("%w: env file: %v", ErrLoadFailed, err)
	}
	return nil
}

// Environment variables read by FromEnv.
const (
	EnvNuanceAppKey           = "NUANCE_APP_KEY"
	EnvNuanceServerURI        = "NUANCE_SERVER_URI"
	EnvNuanceContextTag       = "NUANCE_CONTEXT_TAG"
	EnvNuanceServerURINLU     = "NUANCE_SERVER_URI_NLU"
	EnvGoogleCloudAccessToken = "GOOGLE_CLOUD_ACCESS_TOKEN"
	EnvGoogleCloudExpiry      = "GOOGLE_CLOUD_ACCESS_EXPIRY"
	EnvGoogleChromiumAPIKey   = "GOOGLE_CHROMIUM_API_KEY"
	EnvOxfordKey1             = "OXFORD_KEY_1"
	EnvOxfordKey2             = "OXFORD_KEY_2"
	EnvLuisAppID              = "LUIS_APP_ID"
	EnvLuisSubscriptionID     = "LUIS_SUBSCRIPTION_ID"
	EnvIBMUsername            = "IBM_SERVICE_USER_NAME"
	EnvIBMPassword            = "IBM_SERVICE_PASSWORD"
	EnvWitServerAccessToken   = "WIT_SERVER_ACCESS_TOKEN"
	EnvRemoteAccessToken      = "REMOTE_ACCESS_TOKEN"
	EnvRemoteServerURI        = "REMOTE_SERVER_URI"
	EnvAPIAIClientAccessToken = "API_AI_CLIENT_ACCESS_TOKEN"
)

// FromEnv builds a profile from environment variables. lookup is usually
// os.LookupEnv. A non-numeric expiry is ignored.
func FromEnv(lookup func(string) (string, bool)) *request.Credentials {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	c := &request.Credentials{
		Nuance: request.NuanceCredentials{
			AppKey:       get(EnvNuanceAppKey),
			ServerURI:    get(EnvNuanceServerURI),
			ContextTag:   get(EnvNuanceContextTag),
			ServerURINLU: get(EnvNuanceServerURINLU),
		},
		GoogleCloud:    request.GoogleCloudCredentials{AccessToken: get(EnvGoogleCloudAccessToken)},
		GoogleChromium: request.GoogleChromiumCredentials{APIKey: get(EnvGoogleChromiumAPIKey)},
		Microsoft: request.MicrosoftCredentials{
			OxfordKey1:         get(EnvOxfordKey1),
			OxfordKey2:         get(EnvOxfordKey2),
			LuisAppID:          get(EnvLuisAppID),
			LuisSubscriptionID: get(EnvLuisSubscriptionID),
		},
		IBM:    request.IBMCredentials{Username: get(EnvIBMUsername), Password: get(EnvIBMPassword)},
		Wit:    request.WitCredentials{ServerAccessToken: get(EnvWitServerAccessToken)},
		Remote: request.RemoteCredentials{AccessToken: get(EnvRemoteAccessToken), ServerURI: get(EnvRemoteServerURI)},
		APIAI:  request.APIAICredentials{ClientAccessToken: get(EnvAPIAIClientAccessToken)},
	}

	if raw := get(EnvGoogleCloudExpiry); raw != "" {
		if expiry, err := strconv.ParseInt(raw, 10, 64); err == nil {
			c.GoogleCloud.AccessExpiry = expiry
		}
	}

	return c
}

// Apply returns a copy of d whose blank credential fields are filled from
// profile. Values carried by the request win. d is never modified; a nil
// profile or descriptor returns d unchanged.
func Apply(profile *request.Credentials, d *request.Descriptor) *request.Descriptor {
	if profile == nil || d == nil {
		return d
	}

	out := *d
	out.Credentials = *profile
	out.Credentials.Merge(&d.Credentials)
	return &out
}
