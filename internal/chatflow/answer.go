package chatflow

import "time"

// Answer is the traveler's submission for one step. Each step accepts exactly
// one variant; anything else is rejected as ErrWrongAnswerKind, so mismatched
// submissions never reach the preference record.
type Answer interface {
	isAnswer()
}

// TextAnswer serves the free-text widgets (name, email, special requirements,
// additional comments).
type TextAnswer struct {
	Text string
}

// CityAnswer carries the multi-selected city ids.
type CityAnswer struct {
	CityIDs []string
}

// DateRangeAnswer carries the picked travel window.
type DateRangeAnswer struct {
	From time.Time
	To   time.Time
}

// ActivitiesAnswer submits the activity checklist. With no explicit ids the
// engine uses the selection accumulated through ToggleActivity.
type ActivitiesAnswer struct {
	ActivityIDs []string
}

// NumberAnswer serves the numeric steppers (group size, runner count).
type NumberAnswer struct {
	Value int
}

// ChoiceAnswer carries the single-choice budget label.
type ChoiceAnswer struct {
	Label string
}

func (TextAnswer) isAnswer()       {}
func (CityAnswer) isAnswer()       {}
func (DateRangeAnswer) isAnswer()  {}
func (ActivitiesAnswer) isAnswer() {}
func (NumberAnswer) isAnswer()     {}
func (ChoiceAnswer) isAnswer()     {}
