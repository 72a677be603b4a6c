package i18n

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/apitofinal/shootout/internal/penalty/domain"
)

func TestDescribeStateFreshShootout(t *testing.T) {
	state, err := domain.NewState(domain.DefaultConfig())
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	description := DescribeState(language.English, state)
	if description.Stage != "Initial" {
		t.Fatalf("expected stage Initial, got %q", description.Stage)
	}
	if description.Next != "Home #1" {
		t.Fatalf("expected next Home #1, got %q", description.Next)
	}
	if description.Winner != "None" {
		t.Fatalf("expected winner None, got %q", description.Winner)
	}
}

func TestDescribeStateDecidedShootout(t *testing.T) {
	state, err := domain.NewState(domain.Config{Initial: 1, Starts: domain.TeamHome})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	// Away misses (two cycles land on fail), then home scores and decides it.
	for i, team := range []domain.Team{domain.TeamAway, domain.TeamAway, domain.TeamHome} {
		if state, err = domain.Toggle(state, team, 0, false); err != nil {
			t.Fatalf("toggle %d (%s): %v", i, team, err)
		}
	}
	if state.Stage != domain.StageDone {
		t.Fatalf("fixture expected done stage, got %q", state.Stage)
	}

	description := DescribeState(language.MustParse("pt-BR"), state)
	if description.Stage != "Encerrado" {
		t.Fatalf("expected stage Encerrado, got %q", description.Stage)
	}
	if description.Next != "Nenhum" {
		t.Fatalf("expected next Nenhum, got %q", description.Next)
	}
	if description.Winner != "Casa" {
		t.Fatalf("expected winner Casa, got %q", description.Winner)
	}
}

func TestDescribeStateSuddenDeath(t *testing.T) {
	state := domain.Recompute(domain.ShootoutState{
		Initial: 1,
		Starts:  domain.TeamAway,
		Home:    []domain.KickOutcome{domain.OutcomeGoal},
		Away:    []domain.KickOutcome{domain.OutcomeGoal},
	})
	if state.Stage != domain.StageSudden {
		t.Fatalf("fixture expected sudden stage, got %q", state.Stage)
	}

	description := DescribeState(language.English, state)
	if description.Stage != "Sudden death" {
		t.Fatalf("expected stage Sudden death, got %q", description.Stage)
	}
	if description.Next != "Away #2" {
		t.Fatalf("expected next Away #2, got %q", description.Next)
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		tag     language.Tag
		outcome domain.KickOutcome
		want    string
	}{
		{language.English, domain.OutcomeGoal, "Goal"},
		{language.English, domain.OutcomeFail, "Miss"},
		{language.English, domain.OutcomePending, "Pending"},
		{language.MustParse("pt-BR"), domain.OutcomeGoal, "Gol"},
		{language.MustParse("pt-BR"), domain.OutcomeFail, "Perdeu"},
		{language.MustParse("pt-BR"), domain.OutcomePending, "Pendente"},
	}
	for _, tc := range tests {
		if got := OutcomeLabel(tc.tag, tc.outcome); got != tc.want {
			t.Fatalf("OutcomeLabel(%v, %q) = %q, want %q", tc.tag, tc.outcome, got, tc.want)
		}
	}
}
