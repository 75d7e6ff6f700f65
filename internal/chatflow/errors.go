package chatflow

import "errors"

var (
	// ErrBotTyping rejects input while the assistant is composing its next
	// message; the submit control is disabled client-side during this window.
	ErrBotTyping = errors.New("assistant is typing")

	ErrFlowCompleted = errors.New("chat flow already completed")

	ErrAnswerRequired          = errors.New("an answer is required for this step")
	ErrWrongAnswerKind         = errors.New("answer does not match the step's input widget")
	ErrInvalidDateRange        = errors.New("both start and end dates are required and start must not be after end")
	ErrInvalidGroupSize        = errors.New("group size must be at least 1")
	ErrRunnerCountExceedsGroup = errors.New("runner count cannot exceed group size")
	ErrUnknownCity             = errors.New("unknown city id")
	ErrUnknownActivity         = errors.New("unknown activity id")
	ErrUnknownBudget           = errors.New("budget must be one of the offered bands")

	// ErrPreferencesIncomplete blocks completion when the terminal step is
	// reached with required fields still unset. Collected answers are kept;
	// the flow never silently restarts.
	ErrPreferencesIncomplete = errors.New("required preferences are incomplete")
)
