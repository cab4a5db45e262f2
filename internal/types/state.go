package types

// Enum values for Project lifecycle state
type ProjectState string

const (
	StateProposed       ProjectState = "PROPOSED"
	StateActive         ProjectState = "ACTIVE"
	StateFunded         ProjectState = "FUNDED"
	StateInConstruction ProjectState = "IN_CONSTRUCTION"
	StateOperational    ProjectState = "OPERATIONAL"
	StateCompleted      ProjectState = "COMPLETED"
	StateFailed         ProjectState = "FAILED"
)

func (s ProjectState) String() string {
	return string(s)
}

// QualifiedStatesForActivate returns the qualified current states for opening a project to stakes
func QualifiedStatesForActivate() []ProjectState {
	return []ProjectState{StateProposed}
}

// QualifiedStatesForStake returns the qualified current states for accepting a stake
func QualifiedStatesForStake() []ProjectState {
	return []ProjectState{StateActive}
}

// QualifiedStatesForUnstake returns the qualified current states for withdrawing principal.
// Active withdrawals carry the early-exit penalty; terminal states do not.
func QualifiedStatesForUnstake() []ProjectState {
	return []ProjectState{StateActive, StateFailed, StateCompleted}
}

// QualifiedStatesForProfitDeposit returns the qualified current states for a profit deposit
func QualifiedStatesForProfitDeposit() []ProjectState {
	return []ProjectState{StateOperational, StateCompleted}
}

// QualifiedStatesForTransition returns the qualified current states for an
// administrator-triggered move into newState. The Proposed->Active and
// Active->Funded edges are owned by ActivateProject and the stake path
// respectively and are not reachable here.
func QualifiedStatesForTransition(newState ProjectState) []ProjectState {
	switch newState {
	case StateInConstruction:
		return []ProjectState{StateFunded}
	case StateOperational:
		return []ProjectState{StateInConstruction}
	case StateCompleted, StateFailed:
		return []ProjectState{StateActive, StateFunded, StateInConstruction, StateOperational}
	default:
		return nil
	}
}

// IsTerminal reports whether the state retains the project for history only
func (s ProjectState) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}
