package domain

import (
	"strconv"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

var (
	// ErrInvalidOperation indicates an edit on a decided shootout without the
	// edit-after-finish override.
	ErrInvalidOperation = apperrors.New(apperrors.CodeShootoutInvalidOperation, "shootout already decided")
	// ErrIndexOutOfRange indicates a kick index outside the sequence bounds.
	ErrIndexOutOfRange = apperrors.New(apperrors.CodeShootoutIndexOutOfRange, "kick index out of range")
)

// Toggle cycles the outcome of one kick and re-derives stage, winner, and
// next pointer over the full sequences. The input state is never mutated.
//
// A decided shootout rejects edits unless allowEditAfterDone is set. The
// override re-enters the same derivation, so an edited outcome can change
// the recorded winner.
func Toggle(state ShootoutState, team Team, index int, allowEditAfterDone bool) (ShootoutState, error) {
	if !team.Valid() {
		return ShootoutState{}, apperrors.WithMetadata(apperrors.CodeShootoutInvalidTeam, "invalid team", map[string]string{
			"Value": string(team),
		})
	}
	if state.Stage == StageDone && !allowEditAfterDone {
		return ShootoutState{}, ErrInvalidOperation
	}
	if index < 0 || index >= len(state.sequence(team)) {
		return ShootoutState{}, apperrors.WithMetadata(apperrors.CodeShootoutIndexOutOfRange, "kick index out of range", map[string]string{
			"Team":  string(team),
			"Index": strconv.Itoa(index),
		})
	}

	next := state.Clone()
	sequence := next.sequence(team)
	sequence[index] = sequence[index].Cycle()
	return Recompute(next), nil
}

// Recompute re-derives stage, winner, and next kick from the sequences
// alone, never trusting previously cached fields. Sequences only grow: a
// tie after the initial series and an undecided sudden-death round each
// append one pending slot per team.
//
// The phase is derived from sequence length: exactly Initial slots means
// the initial series, more means sudden death. This keeps the derivation
// correct when a decided shootout is re-entered through the edit override
// or when a persisted record is loaded with stale derived fields.
func Recompute(state ShootoutState) ShootoutState {
	next := state.Clone()
	next.Winner = nil
	next.Next = nil
	normalizeSequences(&next)

	if len(next.Home) <= next.Initial {
		recomputeInitial(&next)
	} else {
		recomputeSudden(&next)
	}
	return next
}

// normalizeSequences pads short or uneven sequences with pending slots so
// both teams always have the same number of rounds. Engine transitions keep
// lengths equal already; this covers hand-edited persisted records.
func normalizeSequences(s *ShootoutState) {
	for len(s.Home) < s.Initial {
		s.Home = append(s.Home, OutcomePending)
	}
	for len(s.Away) < s.Initial {
		s.Away = append(s.Away, OutcomePending)
	}
	for len(s.Home) < len(s.Away) {
		s.Home = append(s.Home, OutcomePending)
	}
	for len(s.Away) < len(s.Home) {
		s.Away = append(s.Away, OutcomePending)
	}
}

func recomputeInitial(s *ShootoutState) {
	homeGoals := s.Goals(TeamHome)
	awayGoals := s.Goals(TeamAway)
	homeRemaining := s.Remaining(TeamHome)
	awayRemaining := s.Remaining(TeamAway)

	// Early finish: the trailing side cannot catch up even if every
	// remaining kick scores.
	if homeGoals > awayGoals+awayRemaining {
		finish(s, TeamHome)
		return
	}
	if awayGoals > homeGoals+homeRemaining {
		finish(s, TeamAway)
		return
	}

	if homeRemaining == 0 && awayRemaining == 0 {
		if homeGoals > awayGoals {
			finish(s, TeamHome)
			return
		}
		if awayGoals > homeGoals {
			finish(s, TeamAway)
			return
		}
		// Tied after the initial series: open sudden death with one fresh
		// round.
		s.Stage = StageSudden
		appendRound(s)
		s.Next = nextInRound(s, len(s.Home)-1)
		return
	}

	s.Stage = StageInitial
	s.Next = firstPending(s)
}

func recomputeSudden(s *ShootoutState) {
	round := len(s.Home) - 1
	home := s.Home[round]
	away := s.Away[round]

	if home.Taken() && away.Taken() {
		homeScored := home == OutcomeGoal
		awayScored := away == OutcomeGoal
		if homeScored != awayScored {
			winner := TeamHome
			if awayScored {
				winner = TeamAway
			}
			finish(s, winner)
			return
		}
		// Both scored or both missed: next round.
		s.Stage = StageSudden
		appendRound(s)
		s.Next = nextInRound(s, len(s.Home)-1)
		return
	}

	s.Stage = StageSudden
	s.Next = nextInRound(s, round)
}

func finish(s *ShootoutState, winner Team) {
	s.Stage = StageDone
	w := winner
	s.Winner = &w
	s.Next = nil
}

func appendRound(s *ShootoutState) {
	s.Home = append(s.Home, OutcomePending)
	s.Away = append(s.Away, OutcomePending)
}

// firstPending walks index 0,1,2,... testing the starting team first at
// each index, so kicking order alternates with the starting team ahead.
func firstPending(s *ShootoutState) *NextKick {
	for i := range s.Home {
		for _, team := range []Team{s.Starts, s.Starts.Opponent()} {
			if s.kickAt(team, i) == OutcomePending {
				return &NextKick{Team: team, Index: i}
			}
		}
	}
	return nil
}

// nextInRound picks the earliest pending slot of one sudden-death round,
// starting team first.
func nextInRound(s *ShootoutState, round int) *NextKick {
	for _, team := range []Team{s.Starts, s.Starts.Opponent()} {
		if s.kickAt(team, round) == OutcomePending {
			return &NextKick{Team: team, Index: round}
		}
	}
	return nil
}
