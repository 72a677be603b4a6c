package domain

import (
	"strings"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// Team identifies one of the two sides of a shootout.
type Team string

const (
	// TeamHome is the home side.
	TeamHome Team = "home"
	// TeamAway is the away side.
	TeamAway Team = "away"
)

// ErrInvalidTeam indicates a team value other than home or away.
var ErrInvalidTeam = apperrors.New(apperrors.CodeShootoutInvalidTeam, "invalid team")

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// Valid reports whether the team is home or away.
func (t Team) Valid() bool {
	return t == TeamHome || t == TeamAway
}

// ParseTeam maps a wire string to a Team.
func ParseTeam(value string) (Team, error) {
	team := Team(strings.ToLower(strings.TrimSpace(value)))
	if !team.Valid() {
		return "", apperrors.WithMetadata(apperrors.CodeShootoutInvalidTeam, "invalid team", map[string]string{
			"Value": value,
		})
	}
	return team, nil
}
