package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tailored-agentic-units/speechgate/gateway"
	"github.com/tailored-agentic-units/speechgate/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to gateway config file, JSON or YAML (optional)")
		envFile    = flag.String("env", "", "Path to a .env file with provider credentials (overrides config)")
		credsFile  = flag.String("credentials", "", "Path to a credential profile file (overrides config)")
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
		checkFile  = flag.String("check", "", "Validate one descriptor JSON file, print the verdict and exit")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
		useZap     = flag.Bool("zap", false, "Log through zap (JSON) instead of slog")
		observer   = flag.String("observer", "", "Observer name (overrides config): "+strings.Join(observability.ObserverNames(), ", "))
	)
	flag.Parse()

	cfg := gateway.DefaultConfig()
	if *configFile != "" {
		loaded, err := gateway.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *envFile != "" {
		cfg.Credentials.EnvFiles = []string{*envFile}
	}
	if *credsFile != "" {
		cfg.Credentials.File = *credsFile
	}
	if *addr != "" {
		cfg.Intake.Addr = *addr
	}

	name, flush, err := setupLogging(*useZap, *verbose, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	if *useZap {
		cfg.Observer = name
	}
	if *observer != "" {
		cfg.Observer = *observer
	}
	exit := exiter{flush: flush, exit: os.Exit}

	if *checkFile != "" {
		exit.Exit(runCheck(&cfg, *checkFile))
	}

	g, err := gateway.New(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create gateway: %v\n", err)
		exit.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Gateway stopped: %v\n", err)
		stop()
		exit.Exit(1)
	}
	flush()
}
