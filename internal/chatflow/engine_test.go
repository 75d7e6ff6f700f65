package chatflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScheduler records scheduled tasks so tests control exactly when the
// typing simulation and the navigation handoff fire.
type stubScheduler struct {
	tasks []*stubTask
}

type stubTask struct {
	fn        func()
	cancelled bool
	fired     bool
}

func (s *stubScheduler) Schedule(_ time.Duration, fn func()) Cancel {
	task := &stubTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

func (s *stubScheduler) fire() {
	for _, task := range s.tasks {
		if !task.fired && !task.cancelled {
			task.fired = true
			task.fn()
		}
	}
}

func newImmediateEngine(onComplete func(TravelerPreferences)) *Engine {
	return NewEngine(NewPreferenceStore(), Config{
		Scheduler:  ImmediateScheduler{},
		OnComplete: onComplete,
	})
}

func mustSubmit(t *testing.T, e *Engine, ans Answer) {
	t.Helper()
	require.NoError(t, e.Submit(ans))
}

func TestEngineFullFlow(t *testing.T) {
	var handedOff *TravelerPreferences
	e := newImmediateEngine(func(p TravelerPreferences) { handedOff = &p })
	e.Start()

	step, ok := e.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, StepCity, step)

	messages := e.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, SenderBot, messages[0].Sender)
	assert.Contains(t, messages[0].Text, "Bonjour")
	assert.Equal(t, WidgetCity, messages[0].Widget)

	from := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz"}})
	mustSubmit(t, e, TextAnswer{Text: "Amine"})
	mustSubmit(t, e, TextAnswer{Text: "amine@example.com"})
	mustSubmit(t, e, DateRangeAnswer{From: from, To: to})
	mustSubmit(t, e, ActivitiesAnswer{ActivityIDs: []string{"1", "3"}})
	mustSubmit(t, e, NumberAnswer{Value: 4})
	mustSubmit(t, e, ChoiceAnswer{Label: "50€ - 100€"})
	mustSubmit(t, e, TextAnswer{Text: ""})

	assert.True(t, e.Completed())
	assert.True(t, e.HandoffDone())
	require.NotNil(t, handedOff)

	p := e.Snapshot()
	assert.Equal(t, "Amine", p.Name)
	assert.Equal(t, "amine@example.com", p.Email)
	assert.Equal(t, "douz", p.SelectedCity)
	assert.Equal(t, DateRange{From: from, To: to}, p.DateRange)
	assert.Equal(t, []string{"1", "3"}, p.SelectedActivityIDs)
	assert.Equal(t, []string{"cultural", "nature", "gastronomy"}, p.ActivityTypeInterests)
	assert.Equal(t, 4, p.GroupSize)
	assert.Equal(t, "50€ - 100€", p.BudgetBand)
	assert.Equal(t, NoRequirements, p.SpecialRequirements)
	assert.True(t, p.ChatCompleted)

	// One combined greeting plus an echo and a follow-up per step.
	messages = e.Messages()
	require.Len(t, messages, 1+2*len(DefaultFlow))
	last := messages[len(messages)-1]
	assert.Equal(t, SenderBot, last.Sender)
	assert.Contains(t, last.Text, "tableau de bord")

	_, ok = e.CurrentStep()
	assert.False(t, ok)
	assert.ErrorIs(t, e.Submit(TextAnswer{Text: "encore"}), ErrFlowCompleted)
}

func TestEngineEchoes(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz", "tozeur"}})
	messages := e.Messages()
	assert.Equal(t, "Douz, Tozeur", messages[1].Text)
	assert.Equal(t, SenderTraveler, messages[1].Sender)

	mustSubmit(t, e, TextAnswer{Text: "  Amine  "})
	messages = e.Messages()
	assert.Equal(t, "Amine", messages[3].Text)

	// The email prompt greets the traveler by name.
	assert.Contains(t, messages[4].Text, "Amine")
}

func TestEngineRejectsWhileTyping(t *testing.T) {
	sched := &stubScheduler{}
	e := NewEngine(NewPreferenceStore(), Config{Scheduler: sched})

	assert.ErrorIs(t, e.Submit(TextAnswer{Text: "trop tôt"}), ErrBotTyping)

	e.Start()
	assert.True(t, e.Typing())
	assert.ErrorIs(t, e.Submit(CityAnswer{CityIDs: []string{"douz"}}), ErrBotTyping)

	sched.fire()
	assert.False(t, e.Typing())
	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz"}})

	// The next prompt is pending again.
	assert.True(t, e.Typing())
	assert.ErrorIs(t, e.Submit(TextAnswer{Text: "Amine"}), ErrBotTyping)

	sched.fire()
	mustSubmit(t, e, TextAnswer{Text: "Amine"})
}

func TestEngineValidationLeavesStateUntouched(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	cases := []struct {
		name string
		ans  Answer
		err  error
	}{
		{"wrong kind", TextAnswer{Text: "Douz"}, ErrWrongAnswerKind},
		{"nil answer", nil, ErrAnswerRequired},
		{"empty selection", CityAnswer{}, ErrAnswerRequired},
		{"unknown city", CityAnswer{CityIDs: []string{"atlantis"}}, ErrUnknownCity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(e.Messages())
			assert.ErrorIs(t, e.Submit(tc.ans), tc.err)
			assert.Len(t, e.Messages(), before)

			step, ok := e.CurrentStep()
			require.True(t, ok)
			assert.Equal(t, StepCity, step)
			assert.Empty(t, e.Snapshot().SelectedCity)
		})
	}
}

func TestEngineStepValidation(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz"}})
	assert.ErrorIs(t, e.Submit(TextAnswer{Text: "   "}), ErrAnswerRequired)
	mustSubmit(t, e, TextAnswer{Text: "Amine"})
	mustSubmit(t, e, TextAnswer{Text: "amine@example.com"})

	from := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, e.Submit(DateRangeAnswer{From: from, To: to}), ErrInvalidDateRange)
	assert.ErrorIs(t, e.Submit(DateRangeAnswer{To: to}), ErrInvalidDateRange)
	mustSubmit(t, e, DateRangeAnswer{From: to, To: from})

	assert.ErrorIs(t, e.Submit(ActivitiesAnswer{ActivityIDs: []string{"99"}}), ErrUnknownActivity)
	mustSubmit(t, e, ActivitiesAnswer{ActivityIDs: []string{"1"}})

	assert.ErrorIs(t, e.Submit(NumberAnswer{Value: 0}), ErrInvalidGroupSize)
	mustSubmit(t, e, NumberAnswer{Value: 2})

	assert.ErrorIs(t, e.Submit(ChoiceAnswer{Label: "gratuit"}), ErrUnknownBudget)
	mustSubmit(t, e, ChoiceAnswer{Label: "Moins de 50€"})
}

func TestActivitiesStepUsesToggledSelection(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"djerba"}})
	mustSubmit(t, e, TextAnswer{Text: "Lina"})
	mustSubmit(t, e, TextAnswer{Text: "lina@example.com"})
	mustSubmit(t, e, DateRangeAnswer{
		From: time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.November, 8, 0, 0, 0, 0, time.UTC),
	})

	// Nothing toggled and nothing submitted: the step refuses to advance.
	assert.ErrorIs(t, e.Submit(ActivitiesAnswer{}), ErrAnswerRequired)

	selected, err := e.ToggleActivity("3")
	require.NoError(t, err)
	assert.True(t, selected)

	mustSubmit(t, e, ActivitiesAnswer{})
	p := e.Snapshot()
	assert.Equal(t, []string{"3"}, p.SelectedActivityIDs)
	assert.Equal(t, []string{"gastronomy", "cultural"}, p.ActivityTypeInterests)
}

func TestToggleActivity(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	_, err := e.ToggleActivity("99")
	assert.ErrorIs(t, err, ErrUnknownActivity)

	selected, err := e.ToggleActivity("5")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = e.ToggleActivity("5")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Empty(t, e.Snapshot().SelectedActivityIDs)
}

func TestCompletionBlockedUntilPreferencesComplete(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"tataouine"}})
	mustSubmit(t, e, TextAnswer{Text: "Sami"})
	mustSubmit(t, e, TextAnswer{Text: "sami@example.com"})
	mustSubmit(t, e, DateRangeAnswer{
		From: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
	})
	mustSubmit(t, e, ActivitiesAnswer{ActivityIDs: []string{"7"}})
	mustSubmit(t, e, NumberAnswer{Value: 2})
	mustSubmit(t, e, ChoiceAnswer{Label: "Plus de 100€"})

	// Deselecting the only activity leaves the record incomplete, so the
	// final submission is blocked with a remediation notice.
	_, err := e.ToggleActivity("7")
	require.NoError(t, err)

	err = e.Submit(TextAnswer{Text: "Pas de gluten"})
	assert.ErrorIs(t, err, ErrPreferencesIncomplete)
	assert.False(t, e.Completed())

	messages := e.Messages()
	last := messages[len(messages)-1]
	assert.Equal(t, SenderBot, last.Sender)
	assert.Contains(t, last.Text, "vos activités")

	// Restoring the selection lets the same step complete the flow.
	_, err = e.ToggleActivity("7")
	require.NoError(t, err)
	mustSubmit(t, e, TextAnswer{Text: "Pas de gluten"})
	assert.True(t, e.Completed())
	assert.Equal(t, "Pas de gluten", e.Snapshot().SpecialRequirements)
}

func TestToggleSupersedesPendingNavigation(t *testing.T) {
	sched := &stubScheduler{}
	navigated := false
	e := NewEngine(NewPreferenceStore(), Config{
		Scheduler:  sched,
		OnComplete: func(TravelerPreferences) { navigated = true },
	})
	e.Start()
	sched.fire()

	answers := []Answer{
		CityAnswer{CityIDs: []string{"douz"}},
		TextAnswer{Text: "Amine"},
		TextAnswer{Text: "amine@example.com"},
		DateRangeAnswer{
			From: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC),
		},
		ActivitiesAnswer{ActivityIDs: []string{"1", "3"}},
		NumberAnswer{Value: 4},
		ChoiceAnswer{Label: "50€ - 100€"},
		TextAnswer{Text: ""},
	}
	for _, ans := range answers {
		mustSubmit(t, e, ans)
		sched.fire()
	}

	// fire ran the pending navigation right after the final answer.
	assert.True(t, e.Completed())
	assert.True(t, navigated)

	// A fresh completion whose navigation is cancelled by a toggle.
	e.Reset()
	navigated = false
	sched.tasks = nil
	e.Start()
	sched.fire()
	for i, ans := range answers {
		mustSubmit(t, e, ans)
		if i < len(answers)-1 {
			sched.fire()
		}
	}

	require.True(t, e.Completed())
	_, err := e.ToggleActivity("5")
	require.NoError(t, err)

	sched.fire()
	assert.False(t, navigated)
	assert.False(t, e.HandoffDone())
}

func TestResetRestartsFlow(t *testing.T) {
	e := newImmediateEngine(nil)
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz"}})
	mustSubmit(t, e, TextAnswer{Text: "Amine"})

	e.Reset()
	assert.Empty(t, e.Messages())
	assert.False(t, e.Completed())

	p := e.Snapshot()
	assert.Empty(t, p.Name)
	assert.Empty(t, p.SelectedCity)
	assert.Equal(t, 1, p.GroupSize)

	e.Start()
	step, ok := e.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, StepCity, step)
	assert.Len(t, e.Messages(), 1)
}

func TestResetInvalidatesPendingPrompt(t *testing.T) {
	sched := &stubScheduler{}
	e := NewEngine(NewPreferenceStore(), Config{Scheduler: sched})
	e.Start()
	sched.fire()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"douz"}})

	// Reset while the next prompt is still pending; the stale task must not
	// leak into the restarted transcript.
	pending := sched.tasks[len(sched.tasks)-1]
	e.Reset()
	e.Start()
	sched.fire()

	pending.fn()
	messages := e.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Text, "Bonjour")
}

func TestExtendedFlowWithRunnerCount(t *testing.T) {
	e := NewEngine(NewPreferenceStore(), Config{
		Scheduler: ImmediateScheduler{},
		Flow: []Step{
			StepCity,
			StepName,
			StepEmail,
			StepDates,
			StepActivities,
			StepGroupSize,
			StepRunnerCount,
			StepBudget,
			StepSpecial,
			StepComments,
		},
	})
	e.Start()

	mustSubmit(t, e, CityAnswer{CityIDs: []string{"tozeur"}})
	mustSubmit(t, e, TextAnswer{Text: "Nadia"})
	mustSubmit(t, e, TextAnswer{Text: "nadia@example.com"})
	mustSubmit(t, e, DateRangeAnswer{
		From: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.December, 6, 0, 0, 0, 0, time.UTC),
	})
	mustSubmit(t, e, ActivitiesAnswer{ActivityIDs: []string{"2"}})
	mustSubmit(t, e, NumberAnswer{Value: 5})

	assert.ErrorIs(t, e.Submit(NumberAnswer{Value: 6}), ErrRunnerCountExceedsGroup)
	assert.ErrorIs(t, e.Submit(NumberAnswer{Value: -1}), ErrAnswerRequired)
	mustSubmit(t, e, NumberAnswer{Value: 0})

	mustSubmit(t, e, ChoiceAnswer{Label: "Moins de 50€"})
	mustSubmit(t, e, TextAnswer{Text: ""})
	mustSubmit(t, e, TextAnswer{Text: "Vivement le départ"})

	assert.True(t, e.Completed())
	p := e.Snapshot()
	assert.Equal(t, 0, p.RunnerCount)
	assert.Equal(t, "Vivement le départ", p.AdditionalComments)

	messages := e.Messages()
	var echoes []string
	for _, m := range messages {
		if m.Sender == SenderTraveler {
			echoes = append(echoes, m.Text)
		}
	}
	assert.Contains(t, echoes, "Aucun coureur")
}
