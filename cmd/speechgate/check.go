package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tailored-agentic-units/speechgate/credentials"
	"github.com/tailored-agentic-units/speechgate/gateway"
	"github.com/tailored-agentic-units/speechgate/observability"
	"github.com/tailored-agentic-units/speechgate/request"
	"github.com/tailored-agentic-units/speechgate/validation"
)

// Exit codes of -check.
const (
	exitAccepted = 0
	exitFailed   = 1
	exitRejected = 2
)

func runCheck(cfg *gateway.Config, path string) int {
	return check(context.Background(), cfg, path, os.Stdout, os.Stderr)
}

// check validates the descriptor at path exactly as the gateway would,
// including the server-side credential profile.
func check(ctx context.Context, cfg *gateway.Config, path string, stdout, stderr io.Writer) int {
	body, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read descriptor: %v\n", err)
		return exitFailed
	}

	d, err := request.Decode(body)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to decode descriptor: %v\n", err)
		return exitFailed
	}

	profile, err := credentials.Resolve(ctx, &cfg.Credentials)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load credentials: %v\n", err)
		return exitFailed
	}

	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create observer: %v\n", err)
		return exitFailed
	}

	v := validation.New(&cfg.Validation, validation.WithObserver(obs))
	if err := v.CheckParcel(ctx, credentials.Apply(profile, d)); err != nil {
		var r *validation.Rejection
		if errors.As(err, &r) {
			effective := v.Config()
			fmt.Fprintf(stdout, "rejected: %s\n", effective.Messages.Format(r, effective.NuanceNLUHost))
		} else {
			fmt.Fprintf(stdout, "%v\n", err)
		}
		return exitRejected
	}

	fmt.Fprintln(stdout, "accepted")
	return exitAccepted
}
