package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedStatesForTransition(t *testing.T) {
	t.Run("construction follows funding", func(t *testing.T) {
		assert.Equal(t, []ProjectState{StateFunded}, QualifiedStatesForTransition(StateInConstruction))
	})

	t.Run("operational follows construction", func(t *testing.T) {
		assert.Equal(t, []ProjectState{StateInConstruction}, QualifiedStatesForTransition(StateOperational))
	})

	t.Run("terminal states reachable from any live state", func(t *testing.T) {
		for _, terminal := range []ProjectState{StateCompleted, StateFailed} {
			states := QualifiedStatesForTransition(terminal)
			assert.Contains(t, states, StateActive)
			assert.Contains(t, states, StateFunded)
			assert.Contains(t, states, StateInConstruction)
			assert.Contains(t, states, StateOperational)
			assert.NotContains(t, states, StateProposed)
		}
	})

	t.Run("automatic edges have no admin transition", func(t *testing.T) {
		assert.Empty(t, QualifiedStatesForTransition(StateActive))
		assert.Empty(t, QualifiedStatesForTransition(StateFunded))
		assert.Empty(t, QualifiedStatesForTransition(StateProposed))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StateCompleted.IsTerminal())
	assert.True(t, StateFailed.IsTerminal())

	for _, state := range []ProjectState{StateProposed, StateActive, StateFunded, StateInConstruction, StateOperational} {
		assert.False(t, state.IsTerminal())
	}
}

func TestQualifiedStatesForUnstake(t *testing.T) {
	states := QualifiedStatesForUnstake()

	// principal is locked from funding until a terminal state
	assert.NotContains(t, states, StateFunded)
	assert.NotContains(t, states, StateInConstruction)
	assert.NotContains(t, states, StateOperational)

	assert.Contains(t, states, StateActive)
	assert.Contains(t, states, StateCompleted)
	assert.Contains(t, states, StateFailed)
}
