// Package domain implements the penalty-shootout rules engine: pure
// transitions over ShootoutState with no I/O and no shared mutable state.
package domain

import (
	"strconv"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// DefaultInitialKicks is the regulation number of kicks per team in the
// initial series.
const DefaultInitialKicks = 5

// ErrInvalidConfiguration indicates an unusable shootout configuration.
var ErrInvalidConfiguration = apperrors.New(apperrors.CodeShootoutInvalidConfiguration, "invalid shootout configuration")

// Config holds the fixed parameters of a shootout.
type Config struct {
	// Initial is the number of kicks per team in the initial series (>= 1).
	Initial int
	// Starts is the team kicking first in every round.
	Starts Team
}

// DefaultConfig returns the regulation configuration: five kicks per team,
// home side first.
func DefaultConfig() Config {
	return Config{Initial: DefaultInitialKicks, Starts: TeamHome}
}

// NormalizeConfig fills an unset starting team and validates the
// configuration.
func NormalizeConfig(cfg Config) (Config, error) {
	if cfg.Starts == "" {
		cfg.Starts = TeamHome
	}
	if !cfg.Starts.Valid() {
		return Config{}, apperrors.WithMetadata(apperrors.CodeShootoutInvalidConfiguration, "invalid starting team", map[string]string{
			"Starts": string(cfg.Starts),
		})
	}
	if cfg.Initial < 1 {
		return Config{}, apperrors.WithMetadata(apperrors.CodeShootoutInvalidConfiguration, "initial kick count must be at least one", map[string]string{
			"Initial": strconv.Itoa(cfg.Initial),
		})
	}
	return cfg, nil
}

// NextKick identifies the slot whose kick should be taken next.
type NextKick struct {
	Team  Team
	Index int
}

// ShootoutState is the single source of truth for one shootout: the fixed
// configuration, both kick sequences in temporal order, and the derived
// stage, next pointer, and winner. Next is nil iff Stage is done; Winner is
// set iff Stage is done.
type ShootoutState struct {
	Initial int
	Starts  Team
	Stage   Stage
	Home    []KickOutcome
	Away    []KickOutcome
	Next    *NextKick
	Winner  *Team
}

// NewState builds a fresh shootout from cfg with every kick pending and the
// next pointer on the starting team's first slot.
func NewState(cfg Config) (ShootoutState, error) {
	normalized, err := NormalizeConfig(cfg)
	if err != nil {
		return ShootoutState{}, err
	}
	state := ShootoutState{
		Initial: normalized.Initial,
		Starts:  normalized.Starts,
		Stage:   StageInitial,
		Home:    pendingSequence(normalized.Initial),
		Away:    pendingSequence(normalized.Initial),
	}
	return Recompute(state), nil
}

// Config returns the fixed configuration the state was built from.
func (s ShootoutState) Config() Config {
	return Config{Initial: s.Initial, Starts: s.Starts}
}

// Clone returns a deep copy sharing no slices or pointers with the receiver.
func (s ShootoutState) Clone() ShootoutState {
	clone := s
	clone.Home = append([]KickOutcome(nil), s.Home...)
	clone.Away = append([]KickOutcome(nil), s.Away...)
	if s.Next != nil {
		next := *s.Next
		clone.Next = &next
	}
	if s.Winner != nil {
		winner := *s.Winner
		clone.Winner = &winner
	}
	return clone
}

// Equal reports whether two states match field for field, derived fields
// included.
func (s ShootoutState) Equal(other ShootoutState) bool {
	if s.Initial != other.Initial || s.Starts != other.Starts || s.Stage != other.Stage {
		return false
	}
	if len(s.Home) != len(other.Home) || len(s.Away) != len(other.Away) {
		return false
	}
	for i := range s.Home {
		if s.Home[i] != other.Home[i] {
			return false
		}
	}
	for i := range s.Away {
		if s.Away[i] != other.Away[i] {
			return false
		}
	}
	if (s.Next == nil) != (other.Next == nil) {
		return false
	}
	if s.Next != nil && *s.Next != *other.Next {
		return false
	}
	if (s.Winner == nil) != (other.Winner == nil) {
		return false
	}
	if s.Winner != nil && *s.Winner != *other.Winner {
		return false
	}
	return true
}

// Goals counts scored kicks for a team across the whole sequence.
func (s ShootoutState) Goals(team Team) int {
	count := 0
	for _, outcome := range s.sequence(team) {
		if outcome == OutcomeGoal {
			count++
		}
	}
	return count
}

// Remaining counts pending kicks for a team across the whole sequence.
func (s ShootoutState) Remaining(team Team) int {
	count := 0
	for _, outcome := range s.sequence(team) {
		if outcome == OutcomePending {
			count++
		}
	}
	return count
}

func (s ShootoutState) sequence(team Team) []KickOutcome {
	if team == TeamAway {
		return s.Away
	}
	return s.Home
}

func (s ShootoutState) kickAt(team Team, index int) KickOutcome {
	return s.sequence(team)[index]
}

func pendingSequence(length int) []KickOutcome {
	sequence := make([]KickOutcome, length)
	for i := range sequence {
		sequence[i] = OutcomePending
	}
	return sequence
}
