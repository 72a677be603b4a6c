package cmd

import (
	"context"
	"testing"
)

type testConfig struct {
	Path  string `env:"CMD_TEST_PATH" envDefault:"data/match.json"`
	Field string `env:"CMD_TEST_FIELD" envDefault:"field_1"`
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("CMD_TEST_PATH", "/tmp/match.json")

	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	if cfg.Path != "/tmp/match.json" {
		t.Fatalf("expected env value for path, got %q", cfg.Path)
	}
	if cfg.Field != "field_1" {
		t.Fatalf("expected default field, got %q", cfg.Field)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected parse config to reject nil target")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(nil, "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(nil, ServiceShootout, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryExecutesRunLoop(t *testing.T) {
	t.Setenv("SHOOTOUT_OTEL_ENDPOINT", "")

	ran := false
	err := RunWithTelemetry(context.Background(), ServiceShootout, func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("run with telemetry: %v", err)
	}
	if !ran {
		t.Fatal("expected run loop to execute")
	}
}
