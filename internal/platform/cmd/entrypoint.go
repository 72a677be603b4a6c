// Package cmd provides shared entrypoint plumbing for hosts embedding the
// penalty dashboard runtime.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/apitofinal/shootout/internal/platform/config"
	"github.com/apitofinal/shootout/internal/platform/otel"
	"github.com/apitofinal/shootout/internal/platform/timeouts"
)

// ServiceShootout names the runtime for startup telemetry.
const ServiceShootout = "shootout"

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// RunWithTelemetry configures observability around a run loop and tears it
// down after the loop returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OTelShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
