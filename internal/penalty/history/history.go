// Package history provides bounded undo/redo over shootout state
// snapshots. It never inspects shootout semantics: it stores and
// restores whole value copies, so no two entries alias the same
// mutable state.
package history

import (
	"github.com/apitofinal/shootout/internal/penalty/domain"
)

// MaxDepth caps the undo stack. Once full, the oldest snapshot is
// dropped to make room for the next one.
const MaxDepth = 200

// History tracks the current shootout state together with undo and
// redo stacks of prior snapshots. It is not safe for concurrent use;
// callers serialize access.
type History struct {
	current domain.ShootoutState
	undo    []domain.ShootoutState
	redo    []domain.ShootoutState
}

// New returns a history positioned at the given state with empty
// undo and redo stacks.
func New(initial domain.ShootoutState) *History {
	return &History{current: initial.Clone()}
}

// Current returns a snapshot of the present state.
func (h *History) Current() domain.ShootoutState {
	return h.current.Clone()
}

// Depth reports how many states can currently be undone.
func (h *History) Depth() int {
	return len(h.undo)
}

// RedoDepth reports how many undone states can currently be redone.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Apply runs mutate against a copy of the current state. On success
// the pre-mutation state is pushed onto the undo stack, the redo
// stack is cleared, and the new state becomes current. On error
// nothing changes and the current state is returned alongside the
// error.
func (h *History) Apply(mutate func(domain.ShootoutState) (domain.ShootoutState, error)) (domain.ShootoutState, error) {
	next, err := mutate(h.current.Clone())
	if err != nil {
		return h.current.Clone(), err
	}

	if len(h.undo) >= MaxDepth {
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = h.current
	} else {
		h.undo = append(h.undo, h.current)
	}
	h.redo = nil
	h.current = next.Clone()
	return h.current.Clone(), nil
}

// Undo steps back to the most recent prior state. It reports false
// when there is nothing to undo, returning the unchanged current
// state.
func (h *History) Undo() (domain.ShootoutState, bool) {
	if len(h.undo) == 0 {
		return h.current.Clone(), false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, h.current)
	h.current = prev
	return h.current.Clone(), true
}

// Redo re-applies the most recently undone state. It reports false
// when there is nothing to redo, returning the unchanged current
// state.
func (h *History) Redo() (domain.ShootoutState, bool) {
	if len(h.redo) == 0 {
		return h.current.Clone(), false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, h.current)
	h.current = next
	return h.current.Clone(), true
}

// Reset replaces the current state and clears both stacks. Used when
// the shootout is reset to its initial configuration or replaced by a
// loaded record.
func (h *History) Reset(state domain.ShootoutState) domain.ShootoutState {
	h.current = state.Clone()
	h.undo = nil
	h.redo = nil
	return h.current.Clone()
}
