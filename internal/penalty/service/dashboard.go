// Package service exposes the penalty dashboard: a single-writer facade
// over the shootout rules, undo history, persistence, and telemetry.
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	apperrors "github.com/apitofinal/shootout/internal/errors"
	"github.com/apitofinal/shootout/internal/penalty/domain"
	"github.com/apitofinal/shootout/internal/penalty/history"
	"github.com/apitofinal/shootout/internal/storage"
	"github.com/apitofinal/shootout/internal/telemetry"
)

// Dashboard owns one shootout and serializes every operation on it. Hosts
// call it from their event loop; the autosave timer reads snapshots
// concurrently, so all access goes through one mutex.
type Dashboard struct {
	mu      sync.Mutex
	history *history.History
	store   storage.MatchStore
	emitter *telemetry.Emitter
	field   string
}

// NewDashboard builds a dashboard for one field with a fresh shootout from
// cfg. The store is required; the emitter may be nil to disable journaling.
func NewDashboard(store storage.MatchStore, emitter *telemetry.Emitter, field string, cfg domain.Config) (*Dashboard, error) {
	if store == nil {
		return nil, apperrors.New(apperrors.CodeStorageNotInitialized, "match store is required")
	}
	state, err := domain.NewState(cfg)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		history: history.New(state),
		store:   store,
		emitter: emitter,
		field:   strings.TrimSpace(field),
	}, nil
}

// Snapshot returns a value copy of the current state for read-only use.
func (d *Dashboard) Snapshot() domain.ShootoutState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.Current()
}

// Configure replaces the shootout with a fresh one built from initial and
// starts and clears the undo history.
func (d *Dashboard) Configure(ctx context.Context, initial int, starts domain.Team) (domain.ShootoutState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, err := domain.NewState(domain.Config{Initial: initial, Starts: starts})
	if err != nil {
		d.emit(ctx, "penalty.configure", telemetry.SeverityWarn, map[string]any{
			"initial": initial,
			"starts":  string(starts),
			"error":   string(apperrors.GetCode(err)),
		})
		return d.history.Current(), err
	}
	current := d.history.Reset(state)
	d.emit(ctx, "penalty.configure", telemetry.SeverityInfo, map[string]any{
		"initial": current.Initial,
		"starts":  string(current.Starts),
	})
	return current, nil
}

// ToggleKick cycles the outcome of one kick slot and records the previous
// state for undo. Rejections leave the state and history untouched.
func (d *Dashboard) ToggleKick(ctx context.Context, team domain.Team, index int, allowEditAfterDone bool) (domain.ShootoutState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, err := d.history.Apply(func(current domain.ShootoutState) (domain.ShootoutState, error) {
		return domain.Toggle(current, team, index, allowEditAfterDone)
	})
	if err != nil {
		d.emit(ctx, "penalty.toggle", telemetry.SeverityWarn, map[string]any{
			"team":  string(team),
			"index": index,
			"error": string(apperrors.GetCode(err)),
		})
		return state, err
	}
	sequence := state.Home
	if team == domain.TeamAway {
		sequence = state.Away
	}
	d.emit(ctx, "penalty.toggle", telemetry.SeverityInfo, map[string]any{
		"team":    string(team),
		"index":   index,
		"outcome": string(sequence[index]),
		"stage":   string(state.Stage),
	})
	return state, nil
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (d *Dashboard) Undo(ctx context.Context) (domain.ShootoutState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, ok := d.history.Undo()
	if ok {
		d.emit(ctx, "penalty.undo", telemetry.SeverityInfo, map[string]any{
			"stage": string(state.Stage),
		})
	}
	return state, ok
}

// Redo reapplies the most recently undone snapshot. It reports false when
// there is nothing to redo.
func (d *Dashboard) Redo(ctx context.Context) (domain.ShootoutState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, ok := d.history.Redo()
	if ok {
		d.emit(ctx, "penalty.redo", telemetry.SeverityInfo, map[string]any{
			"stage": string(state.Stage),
		})
	}
	return state, ok
}

// ResetToInitial replaces the shootout with a fresh one under the current
// configuration and clears the undo history.
func (d *Dashboard) ResetToInitial(ctx context.Context) (domain.ShootoutState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, err := domain.NewState(d.history.Current().Config())
	if err != nil {
		return d.history.Current(), err
	}
	current := d.history.Reset(state)
	d.emit(ctx, "penalty.reset", telemetry.SeverityInfo, map[string]any{
		"initial": current.Initial,
		"starts":  string(current.Starts),
	})
	return current, nil
}

// Load replaces the shootout with the persisted record, rerunning the
// decision rules over the stored sequences so stale derived fields are
// corrected. A missing or undecodable record falls back to a fresh shootout
// under the current configuration.
func (d *Dashboard) Load(ctx context.Context) (domain.ShootoutState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	record, err := d.store.LoadPenalties(ctx, d.field)
	if err == nil {
		var decoded domain.ShootoutState
		if decoded, err = decodeRecord(record); err == nil {
			state := d.history.Reset(domain.Recompute(decoded))
			d.emit(ctx, "penalty.load", telemetry.SeverityInfo, map[string]any{
				"stage": string(state.Stage),
			})
			return state, nil
		}
	}
	if !errors.Is(err, storage.ErrNotFound) && !apperrors.IsCode(err, apperrors.CodeStorageInvalidRecord) {
		return d.history.Current(), err
	}
	log.Printf("load penalties field=%s: %v", d.field, err)
	d.emit(ctx, "penalty.load", telemetry.SeverityWarn, map[string]any{
		"error": string(apperrors.GetCode(err)),
	})
	fresh, newErr := domain.NewState(d.history.Current().Config())
	if newErr != nil {
		return d.history.Current(), newErr
	}
	return d.history.Reset(fresh), nil
}

// Save persists the current snapshot through the match store. The snapshot
// is taken under the mutex; the write happens outside it.
func (d *Dashboard) Save(ctx context.Context) error {
	state := d.Snapshot()
	return d.store.SavePenalties(ctx, d.field, encodeRecord(state))
}

func (d *Dashboard) emit(ctx context.Context, name string, severity telemetry.Severity, attributes map[string]any) {
	if err := d.emitter.Emit(ctx, name, severity, attributes); err != nil {
		log.Printf("telemetry emit %s: %v", name, err)
	}
}
