package domain

import (
	"errors"
	"testing"
)

func TestCloneDoesNotAlias(t *testing.T) {
	state := mustNewState(t, Config{Initial: 3, Starts: TeamAway})
	state = mustToggle(t, state, TeamAway, 0, 1)

	clone := state.Clone()
	clone.Home[0] = OutcomeFail
	clone.Away[0] = OutcomeFail
	if clone.Next != nil {
		clone.Next.Index = 99
	}

	if state.Home[0] != OutcomePending {
		t.Fatalf("expected home sequence untouched, got %v", state.Home[0])
	}
	if state.Away[0] != OutcomeGoal {
		t.Fatalf("expected away sequence untouched, got %v", state.Away[0])
	}
	if state.Next == nil || state.Next.Index == 99 {
		t.Fatalf("expected next pointer untouched, got %+v", state.Next)
	}
}

func TestEqual(t *testing.T) {
	base := mustNewState(t, Config{Initial: 3, Starts: TeamHome})

	if !base.Equal(base.Clone()) {
		t.Fatalf("expected a clone to compare equal")
	}

	toggled := mustToggle(t, base, TeamHome, 0, 1)
	if base.Equal(toggled) {
		t.Fatalf("expected different outcomes to compare unequal")
	}

	other := mustNewState(t, Config{Initial: 3, Starts: TeamAway})
	if base.Equal(other) {
		t.Fatalf("expected different starting teams to compare unequal")
	}
}

func TestGoalsAndRemaining(t *testing.T) {
	state := ShootoutState{
		Initial: 5,
		Starts:  TeamHome,
		Stage:   StageInitial,
		Home:    outcomes(OutcomeGoal, OutcomeFail, OutcomeGoal, OutcomePending, OutcomePending),
		Away:    outcomes(OutcomeFail, OutcomeFail, OutcomePending, OutcomePending, OutcomePending),
	}

	if got := state.Goals(TeamHome); got != 2 {
		t.Fatalf("expected 2 home goals, got %d", got)
	}
	if got := state.Goals(TeamAway); got != 0 {
		t.Fatalf("expected 0 away goals, got %d", got)
	}
	if got := state.Remaining(TeamHome); got != 2 {
		t.Fatalf("expected 2 home kicks remaining, got %d", got)
	}
	if got := state.Remaining(TeamAway); got != 3 {
		t.Fatalf("expected 3 away kicks remaining, got %d", got)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	state := mustNewState(t, Config{Initial: 7, Starts: TeamAway})

	cfg := state.Config()
	if cfg.Initial != 7 || cfg.Starts != TeamAway {
		t.Fatalf("expected config {7 away}, got %+v", cfg)
	}
}

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input   string
		want    Team
		wantErr bool
	}{
		{input: "home", want: TeamHome},
		{input: "away", want: TeamAway},
		{input: " Home ", want: TeamHome},
		{input: "AWAY", want: TeamAway},
		{input: "", wantErr: true},
		{input: "neutral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTeam(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTeam) {
					t.Fatalf("expected invalid team, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse team: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseKickOutcome(t *testing.T) {
	tests := []struct {
		input   string
		want    KickOutcome
		wantErr bool
	}{
		{input: "pending", want: OutcomePending},
		{input: "goal", want: OutcomeGoal},
		{input: "fail", want: OutcomeFail},
		{input: " Goal ", want: OutcomeGoal},
		{input: "missed", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKickOutcome(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOutcome) {
					t.Fatalf("expected invalid outcome, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse outcome: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		input   string
		want    Stage
		wantErr bool
	}{
		{input: "initial", want: StageInitial},
		{input: "sudden", want: StageSudden},
		{input: "done", want: StageDone},
		{input: "DONE", want: StageDone},
		{input: "overtime", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStage(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStage) {
					t.Fatalf("expected invalid stage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse stage: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOutcomeCycle(t *testing.T) {
	tests := []struct {
		from KickOutcome
		to   KickOutcome
	}{
		{from: OutcomePending, to: OutcomeGoal},
		{from: OutcomeGoal, to: OutcomeFail},
		{from: OutcomeFail, to: OutcomePending},
	}

	for _, tt := range tests {
		if got := tt.from.Cycle(); got != tt.to {
			t.Fatalf("expected %v to cycle to %v, got %v", tt.from, tt.to, got)
		}
	}
}

func TestOpponent(t *testing.T) {
	if TeamHome.Opponent() != TeamAway {
		t.Fatalf("expected away to oppose home")
	}
	if TeamAway.Opponent() != TeamHome {
		t.Fatalf("expected home to oppose away")
	}
}
