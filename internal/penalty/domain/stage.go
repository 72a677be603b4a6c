package domain

import (
	"strings"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// Stage describes which phase of the shootout is running.
type Stage string

const (
	// StageInitial is the regulation series of kicks.
	StageInitial Stage = "initial"
	// StageSudden is the unbounded paired extra rounds after a tie.
	StageSudden Stage = "sudden"
	// StageDone is terminal; the shootout is decided.
	StageDone Stage = "done"
)

// ErrInvalidStage indicates a stage value outside the three known phases.
var ErrInvalidStage = apperrors.New(apperrors.CodeShootoutInvalidStage, "invalid stage")

// Valid reports whether the stage is one of the three known phases.
func (s Stage) Valid() bool {
	switch s {
	case StageInitial, StageSudden, StageDone:
		return true
	}
	return false
}

// ParseStage maps a wire string to a Stage.
func ParseStage(value string) (Stage, error) {
	stage := Stage(strings.ToLower(strings.TrimSpace(value)))
	if !stage.Valid() {
		return "", apperrors.WithMetadata(apperrors.CodeShootoutInvalidStage, "invalid stage", map[string]string{
			"Value": value,
		})
	}
	return stage, nil
}
