package session

import "errors"

// Sentinel errors for session actions. Check with errors.Is. A rejected
// action never mutates queue or scheduling state.
var (
	// ErrInvalidTransition: the action is not valid for the current entry
	// or the learner is viewing a historical entry.
	ErrInvalidTransition = errors.New("session: invalid transition")

	// ErrAnswerLocked: an answer was already recorded for this entry.
	ErrAnswerLocked = errors.New("session: answer already selected")

	// ErrUnknownOption: the selected option does not exist on the question.
	ErrUnknownOption = errors.New("session: unknown option")
)
