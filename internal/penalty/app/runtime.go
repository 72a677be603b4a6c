// Package app wires the penalty dashboard runtime: configuration, stores,
// telemetry, tracing, and the periodic persistence loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/apitofinal/shootout/internal/errors"
	"github.com/apitofinal/shootout/internal/i18n"
	"github.com/apitofinal/shootout/internal/penalty/domain"
	"github.com/apitofinal/shootout/internal/penalty/service"
	platformcmd "github.com/apitofinal/shootout/internal/platform/cmd"
	"github.com/apitofinal/shootout/internal/platform/timeouts"
	"github.com/apitofinal/shootout/internal/storage/gameinfo"
	"github.com/apitofinal/shootout/internal/storage/sqlite"
	"github.com/apitofinal/shootout/internal/telemetry"
)

// RuntimeConfig controls dashboard startup, dependencies, and the autosave
// loop.
type RuntimeConfig struct {
	GameinfoPath     string        `env:"SHOOTOUT_GAMEINFO_PATH" envDefault:"data/gameinfo.json"`
	Field            string        `env:"SHOOTOUT_FIELD" envDefault:"field_1"`
	AutosaveInterval time.Duration `env:"SHOOTOUT_AUTOSAVE_INTERVAL" envDefault:"5s"`
	TelemetryDBPath  string        `env:"SHOOTOUT_TELEMETRY_DB_PATH" envDefault:"data/telemetry.db"`
	Locale           string        `env:"SHOOTOUT_LOCALE" envDefault:"en-US"`
	InitialKicks     int           `env:"SHOOTOUT_INITIAL_KICKS" envDefault:"5"`
	StartingTeam     string        `env:"SHOOTOUT_STARTING_TEAM" envDefault:"home"`
}

const (
	defaultGameinfoPath     = "data/gameinfo.json"
	defaultField            = "field_1"
	defaultAutosaveInterval = 5 * time.Second
	defaultTelemetryDBPath  = "data/telemetry.db"
)

// ParseRuntimeConfig loads RuntimeConfig from SHOOTOUT_* environment
// variables.
func ParseRuntimeConfig() (RuntimeConfig, error) {
	var cfg RuntimeConfig
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// Run starts the dashboard runtime and blocks until ctx is done: it loads
// the persisted shootout, then saves snapshots at the configured interval
// with a final save on shutdown. Cancellation is a clean stop.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.GameinfoPath) == "" {
		cfg.GameinfoPath = defaultGameinfoPath
	}
	if strings.TrimSpace(cfg.Field) == "" {
		cfg.Field = defaultField
	}
	if cfg.AutosaveInterval <= 0 {
		cfg.AutosaveInterval = defaultAutosaveInterval
	}
	if strings.TrimSpace(cfg.TelemetryDBPath) == "" {
		cfg.TelemetryDBPath = defaultTelemetryDBPath
	}
	if cfg.InitialKicks <= 0 {
		cfg.InitialKicks = domain.DefaultInitialKicks
	}
	starts := domain.TeamHome
	if strings.TrimSpace(cfg.StartingTeam) != "" {
		parsed, err := domain.ParseTeam(cfg.StartingTeam)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeShootoutInvalidConfiguration, "starting team", err)
		}
		starts = parsed
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceShootout, func(ctx context.Context) error {
		return runDashboard(ctx, cfg, starts)
	})
}

func runDashboard(ctx context.Context, cfg RuntimeConfig, starts domain.Team) error {
	matchStore, err := gameinfo.Open(cfg.GameinfoPath)
	if err != nil {
		return fmt.Errorf("open gameinfo store: %w", err)
	}

	if dir := filepath.Dir(cfg.TelemetryDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create telemetry storage dir: %w", err)
		}
	}
	telemetryStore, err := sqlite.Open(ctx, cfg.TelemetryDBPath)
	if err != nil {
		return fmt.Errorf("open telemetry store: %w", err)
	}
	defer func() {
		if closeErr := telemetryStore.Close(); closeErr != nil {
			log.Printf("close telemetry store: %v", closeErr)
		}
	}()

	emitter := telemetry.NewEmitter(telemetryStore, cfg.Field)
	dashboard, err := service.NewDashboard(matchStore, emitter, cfg.Field, domain.Config{
		Initial: cfg.InitialKicks,
		Starts:  starts,
	})
	if err != nil {
		return err
	}
	if _, err := dashboard.Load(ctx); err != nil {
		return fmt.Errorf("load penalties: %w", err)
	}

	log.Printf("penalty dashboard running field=%s locale=%s autosave=%s",
		cfg.Field, i18n.Resolve(cfg.Locale), cfg.AutosaveInterval)
	return autosaveLoop(ctx, dashboard, emitter, cfg.Field, cfg.AutosaveInterval)
}

// autosaveLoop persists snapshots every interval until ctx is done, then
// runs one final save so the document reflects the last edit.
func autosaveLoop(ctx context.Context, dashboard *service.Dashboard, emitter *telemetry.Emitter, field string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), timeouts.FinalSave)
			err := dashboard.Save(saveCtx)
			cancel()
			if err != nil {
				log.Printf("final save failed field=%s: %v", field, err)
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if err := dashboard.Save(ctx); err != nil {
				log.Printf("autosave failed field=%s: %v", field, err)
				if emitErr := emitter.Emit(ctx, "penalty.autosave", telemetry.SeverityWarn, map[string]any{
					"error": string(apperrors.GetCode(err)),
				}); emitErr != nil {
					log.Printf("telemetry emit penalty.autosave: %v", emitErr)
				}
			}
		}
	}
}
