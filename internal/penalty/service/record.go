package service

import (
	"strconv"

	apperrors "github.com/apitofinal/shootout/internal/errors"
	"github.com/apitofinal/shootout/internal/penalty/domain"
	"github.com/apitofinal/shootout/internal/storage"
)

// encodeRecord converts engine state into its persisted shape. Derived
// fields travel with the record so other document consumers can render the
// shootout without reimplementing the rules.
func encodeRecord(state domain.ShootoutState) storage.PenaltyRecord {
	record := storage.PenaltyRecord{
		Initial: state.Initial,
		Starts:  string(state.Starts),
		Stage:   string(state.Stage),
		Home:    encodeOutcomes(state.Home),
		Away:    encodeOutcomes(state.Away),
	}
	if state.Next != nil {
		record.Next = &storage.NextKickRecord{
			Team:  string(state.Next.Team),
			Index: state.Next.Index,
		}
	}
	if state.Winner != nil {
		winner := string(*state.Winner)
		record.Winner = &winner
	}
	return record
}

// decodeRecord validates a persisted record and rebuilds engine state from
// it. Derived fields are carried over as stored; callers rerun the rules
// before trusting them.
func decodeRecord(record storage.PenaltyRecord) (domain.ShootoutState, error) {
	starts := domain.TeamHome
	if record.Starts != "" {
		parsed, err := domain.ParseTeam(record.Starts)
		if err != nil {
			return domain.ShootoutState{}, invalidRecord("starts team", err)
		}
		starts = parsed
	}
	cfg, err := domain.NormalizeConfig(domain.Config{Initial: record.Initial, Starts: starts})
	if err != nil {
		return domain.ShootoutState{}, invalidRecord("configuration", err)
	}

	state := domain.ShootoutState{
		Initial: cfg.Initial,
		Starts:  cfg.Starts,
		Stage:   domain.StageInitial,
	}
	if state.Home, err = decodeOutcomes(record.Home); err != nil {
		return domain.ShootoutState{}, invalidRecord("home sequence", err)
	}
	if state.Away, err = decodeOutcomes(record.Away); err != nil {
		return domain.ShootoutState{}, invalidRecord("away sequence", err)
	}
	if record.Stage != "" {
		if state.Stage, err = domain.ParseStage(record.Stage); err != nil {
			return domain.ShootoutState{}, invalidRecord("stage", err)
		}
	}
	if record.Next != nil {
		team, err := domain.ParseTeam(record.Next.Team)
		if err != nil {
			return domain.ShootoutState{}, invalidRecord("next kick team", err)
		}
		if record.Next.Index < 0 {
			return domain.ShootoutState{}, apperrors.WithMetadata(apperrors.CodeStorageInvalidRecord, "next kick index is negative", map[string]string{
				"Index": strconv.Itoa(record.Next.Index),
			})
		}
		state.Next = &domain.NextKick{Team: team, Index: record.Next.Index}
	}
	if record.Winner != nil {
		winner, err := domain.ParseTeam(*record.Winner)
		if err != nil {
			return domain.ShootoutState{}, invalidRecord("winner team", err)
		}
		state.Winner = &winner
	}
	return state, nil
}

func encodeOutcomes(sequence []domain.KickOutcome) []string {
	encoded := make([]string, len(sequence))
	for i, outcome := range sequence {
		encoded[i] = string(outcome)
	}
	return encoded
}

func decodeOutcomes(values []string) ([]domain.KickOutcome, error) {
	sequence := make([]domain.KickOutcome, len(values))
	for i, value := range values {
		outcome, err := domain.ParseKickOutcome(value)
		if err != nil {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeStorageInvalidRecord, "kick outcome", map[string]string{
				"Index": strconv.Itoa(i),
			}, err)
		}
		sequence[i] = outcome
	}
	return sequence, nil
}

func invalidRecord(part string, cause error) error {
	return apperrors.Wrap(apperrors.CodeStorageInvalidRecord, "penalties record "+part, cause)
}
