package i18n

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/apitofinal/shootout/internal/penalty/domain"
)

// StateDescription carries the localized status strings a host renders for
// one shootout snapshot.
type StateDescription struct {
	Stage  string
	Next   string
	Winner string
}

// DescribeState renders the status strings for a snapshot in the given
// locale. Kick numbers are one-based. Next and Winner fall back to the
// localized none label when unset.
func DescribeState(tag language.Tag, state domain.ShootoutState) StateDescription {
	printer := Printer(tag)
	description := StateDescription{
		Stage:  printer.Sprintf(stageKey(state.Stage)),
		Next:   printer.Sprintf(LabelNoneKey),
		Winner: printer.Sprintf(LabelNoneKey),
	}
	if state.Next != nil {
		description.Next = printer.Sprintf(teamKey(state.Next.Team)) + " #" + strconv.Itoa(state.Next.Index+1)
	}
	if state.Winner != nil {
		description.Winner = printer.Sprintf(teamKey(*state.Winner))
	}
	return description
}

// OutcomeLabel returns the localized label for one kick outcome.
func OutcomeLabel(tag language.Tag, outcome domain.KickOutcome) string {
	printer := Printer(tag)
	switch outcome {
	case domain.OutcomeGoal:
		return printer.Sprintf(LabelGoalKey)
	case domain.OutcomeFail:
		return printer.Sprintf(LabelFailKey)
	default:
		return printer.Sprintf(LabelPendingKey)
	}
}

func stageKey(stage domain.Stage) string {
	switch stage {
	case domain.StageSudden:
		return LabelStageSuddenKey
	case domain.StageDone:
		return LabelStageDoneKey
	default:
		return LabelStageInitialKey
	}
}

func teamKey(team domain.Team) string {
	if team == domain.TeamAway {
		return LabelAwayKey
	}
	return LabelHomeKey
}
