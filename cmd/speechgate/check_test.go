package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/speechgate/gateway"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		profile    string
		wantCode   int
		wantOut    string
	}{
		{
			name:       "accepted",
			descriptor: `{"utterance":"hi","request_id":"r1","action":"SPEAK_ONLY","tts":"LOCAL","vr":"NATIVE","language_model":"LOCAL"}`,
			wantCode:   exitAccepted,
			wantOut:    "accepted\n",
		},
		{
			name:       "rejected with reason",
			descriptor: `{"utterance":"hi","request_id":"r1","action":"SPEAK_ONLY","tts":"LOCAL","vr":"WIT","language_model":"LOCAL"}`,
			wantCode:   exitRejected,
			wantOut:    "rejected: The wit server_access_token required for recognition is missing or a placeholder\n",
		},
		{
			name:       "accepted through profile",
			descriptor: `{"utterance":"hi","request_id":"r1","action":"SPEAK_ONLY","tts":"LOCAL","vr":"WIT","language_model":"LOCAL"}`,
			profile:    "wit:\n  server_access_token: server-token\n",
			wantCode:   exitAccepted,
			wantOut:    "accepted\n",
		},
		{
			name:       "empty utterance",
			descriptor: `{"utterance":"  ","request_id":"r1"}`,
			wantCode:   exitRejected,
			wantOut:    "rejected: The utterance supplied with the request was invalid\n",
		},
		{
			name:       "malformed",
			descriptor: `{`,
			wantCode:   exitFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "descriptor.json")
			if err := os.WriteFile(path, []byte(tt.descriptor), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			cfg := gateway.DefaultConfig()
			cfg.Observer = "noop"
			if tt.profile != "" {
				cfg.Credentials.File = filepath.Join(dir, "profile.yaml")
				if err := os.WriteFile(cfg.Credentials.File, []byte(tt.profile), 0644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}

			var stdout, stderr bytes.Buffer
			code := check(context.Background(), &cfg, path, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("got exit code %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantOut != "" && stdout.String() != tt.wantOut {
				t.Errorf("got output %q, want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestCheck_MissingFile(t *testing.T) {
	cfg := gateway.DefaultConfig()

	var stdout, stderr bytes.Buffer
	if code := check(context.Background(), &cfg, filepath.Join(t.TempDir(), "absent.json"), &stdout, &stderr); code != exitFailed {
		t.Errorf("got exit code %d, want %d", code, exitFailed)
	}
}
