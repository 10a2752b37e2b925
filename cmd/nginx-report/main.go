package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nginx-report/internal/app"
	"nginx-report/internal/shared/configs"
	"nginx-report/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "config file path (YAML); built-in defaults when omitted")
	pflag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(2)
		}
		if svcErr, ok := svcerrors.As(err); ok {
			os.Exit(svcErr.ExitCode)
		}
		os.Exit(1)
	}
}
