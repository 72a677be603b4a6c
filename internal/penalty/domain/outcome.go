package domain

import (
	"strings"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// KickOutcome records the result of one penalty kick.
type KickOutcome string

const (
	// OutcomePending marks a kick that has not been taken yet.
	OutcomePending KickOutcome = "pending"
	// OutcomeGoal marks a scored kick.
	OutcomeGoal KickOutcome = "goal"
	// OutcomeFail marks a missed or saved kick.
	OutcomeFail KickOutcome = "fail"
)

// ErrInvalidOutcome indicates a kick outcome outside the three known values.
var ErrInvalidOutcome = apperrors.New(apperrors.CodeShootoutInvalidOutcome, "invalid kick outcome")

// Cycle returns the outcome a toggle advances this one to:
// pending -> goal -> fail -> pending.
func (o KickOutcome) Cycle() KickOutcome {
	switch o {
	case OutcomePending:
		return OutcomeGoal
	case OutcomeGoal:
		return OutcomeFail
	default:
		return OutcomePending
	}
}

// Taken reports whether the kick has a recorded result.
func (o KickOutcome) Taken() bool {
	return o == OutcomeGoal || o == OutcomeFail
}

// Valid reports whether the outcome is one of the three known values.
func (o KickOutcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeGoal, OutcomeFail:
		return true
	}
	return false
}

// ParseKickOutcome maps a wire string to a KickOutcome.
func ParseKickOutcome(value string) (KickOutcome, error) {
	outcome := KickOutcome(strings.ToLower(strings.TrimSpace(value)))
	if !outcome.Valid() {
		return "", apperrors.WithMetadata(apperrors.CodeShootoutInvalidOutcome, "invalid kick outcome", map[string]string{
			"Value": value,
		})
	}
	return outcome, nil
}
