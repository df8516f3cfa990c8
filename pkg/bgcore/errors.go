package bgcore

import "fmt"

// PhaseError reports that an operation was attempted in a phase that does
// not support it (e.g. apply_action while the game is at a chance node).
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("bgcore: %s illegal in phase %s", e.Op, e.Phase)
}

// IllegalAction reports that an action code is not a member of the current
// legal-action set.
type IllegalAction struct {
	Code int
}

func (e *IllegalAction) Error() string {
	return fmt.Sprintf("bgcore: action code %d is not legal in the current position", e.Code)
}

// InvalidOutcome reports a chance outcome index outside 1..21.
type InvalidOutcome struct {
	Index int
}

func (e *InvalidOutcome) Error() string {
	return fmt.Sprintf("bgcore: chance outcome index %d outside 1..%d", e.Index, len(DiceOutcomes))
}

// CorruptedState reports an internal invariant violation. It is returned
// only by Game.Validate, an assertion surface callable whatever the
// UnsafeSkipValidate setting, and should never be observed in normal play.
type CorruptedState struct {
	Reason string
}

func (e *CorruptedState) Error() string {
	return fmt.Sprintf("bgcore: corrupted state: %s", e.Reason)
}
