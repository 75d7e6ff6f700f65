package chatflow

import (
	"strings"
	"sync"
	"time"
)

const greeting = "Bonjour ! Je suis votre assistant de voyage Voyago. Je vais vous aider à planifier votre prochaine aventure."

const closingMessage = "Merci pour toutes ces informations ! Nous avons tout ce qu'il nous faut pour vous proposer un voyage sur mesure. Vous pouvez maintenant accéder à votre tableau de bord personnalisé pour voir nos recommandations."

// Config tunes an Engine. Zero values fall back to the canonical flow, the
// timer scheduler and the original UI delays.
type Config struct {
	Flow      []Step
	Scheduler Scheduler

	GreetingDelay   time.Duration
	TypingDelay     time.Duration
	NavigationDelay time.Duration

	// OnComplete is the navigation handoff, invoked with the final snapshot
	// after NavigationDelay unless a later interaction cancels it.
	OnComplete func(TravelerPreferences)
}

// Engine drives the strictly ordered question flow: one prompt per step, a
// validation gate per answer, preference writes on success, and an append-only
// transcript. All transitions happen under one mutex; input arriving while the
// bot is "typing" is rejected rather than queued.
type Engine struct {
	mu sync.Mutex

	flow      []Step
	pos       int
	started   bool
	typing    bool
	completed bool

	// navDone reports that the deferred navigation handoff fired; it stays
	// false when a later interaction cancels the handoff.
	navDone bool

	// gen invalidates scheduled callbacks from before a reset.
	gen int

	prefs      *PreferenceStore
	transcript *Transcript

	sched         Scheduler
	greetingDelay time.Duration
	typingDelay   time.Duration
	navDelay      time.Duration

	onComplete func(TravelerPreferences)

	cancelTyping Cancel
	cancelNav    Cancel
}

func NewEngine(prefs *PreferenceStore, cfg Config) *Engine {
	flow := cfg.Flow
	if len(flow) == 0 {
		flow = DefaultFlow
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}
	greetingDelay := cfg.GreetingDelay
	if greetingDelay == 0 {
		greetingDelay = 500 * time.Millisecond
	}
	typingDelay := cfg.TypingDelay
	if typingDelay == 0 {
		typingDelay = time.Second
	}
	navDelay := cfg.NavigationDelay
	if navDelay == 0 {
		navDelay = 1500 * time.Millisecond
	}

	return &Engine{
		flow:          flow,
		prefs:         prefs,
		transcript:    NewTranscript(),
		sched:         sched,
		greetingDelay: greetingDelay,
		typingDelay:   typingDelay,
		navDelay:      navDelay,
		onComplete:    cfg.OnComplete,
	}
}

// Start seeds the transcript with the greeting and the first step's prompt
// after a short delay, so the bot appears to already be typing.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.started || e.typing {
		e.mu.Unlock()
		return
	}
	e.typing = true
	gen := e.gen
	e.mu.Unlock()

	cancel := e.sched.Schedule(e.greetingDelay, func() { e.revealGreeting(gen) })

	e.mu.Lock()
	if e.typing {
		e.cancelTyping = cancel
	}
	e.mu.Unlock()
}

func (e *Engine) revealGreeting(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || e.started {
		return
	}
	e.started = true
	e.typing = false
	e.cancelTyping = nil

	spec := stepSpecs[e.flow[0]]
	text := greeting + " " + spec.prompt(e.prefs.Snapshot())
	e.transcript.Append(SenderBot, text, spec.widget)
}

// Submit validates the answer for the current step and, on success, writes it
// into the preference record, echoes it as a traveler message and schedules
// the next bot prompt. Validation failure leaves all state untouched.
func (e *Engine) Submit(ans Answer) error {
	e.mu.Lock()

	if !e.started || e.typing {
		e.mu.Unlock()
		return ErrBotTyping
	}
	if e.completed {
		e.mu.Unlock()
		return ErrFlowCompleted
	}
	if ans == nil {
		e.mu.Unlock()
		return ErrAnswerRequired
	}

	step := e.flow[e.pos]
	spec := stepSpecs[step]

	if err := spec.validate(e, ans); err != nil {
		e.mu.Unlock()
		return err
	}

	echo := spec.apply(e, ans)
	e.transcript.Append(SenderTraveler, echo, WidgetNone)

	if e.pos == len(e.flow)-1 {
		return e.finishLocked()
	}

	e.typing = true
	e.pos++
	gen := e.gen
	e.mu.Unlock()

	cancel := e.sched.Schedule(e.typingDelay, func() { e.revealPrompt(gen) })

	e.mu.Lock()
	if e.typing {
		e.cancelTyping = cancel
	}
	e.mu.Unlock()

	return nil
}

// finishLocked runs the terminal transition. Called with e.mu held; releases it.
func (e *Engine) finishLocked() error {
	if missing := e.missingLocked(); len(missing) > 0 {
		e.transcript.Append(
			SenderBot,
			"Il nous manque encore quelques informations avant de continuer : "+strings.Join(missing, ", ")+". Merci de compléter votre dossier.",
			WidgetNone,
		)
		e.mu.Unlock()
		return ErrPreferencesIncomplete
	}

	e.completed = true
	done := true
	e.prefs.Update(PreferencesUpdate{ChatCompleted: &done})
	e.transcript.Append(SenderBot, closingMessage, WidgetNone)

	snapshot := e.prefs.Snapshot()
	handoff := e.onComplete
	gen := e.gen
	e.mu.Unlock()

	cancel := e.sched.Schedule(e.navDelay, func() {
		e.mu.Lock()
		stale := gen != e.gen
		if !stale {
			e.navDone = true
		}
		e.cancelNav = nil
		e.mu.Unlock()
		if !stale && handoff != nil {
			handoff(snapshot)
		}
	})

	e.mu.Lock()
	if e.completed {
		e.cancelNav = cancel
	}
	e.mu.Unlock()

	return nil
}

func (e *Engine) revealPrompt(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || !e.typing {
		return
	}
	e.typing = false
	e.cancelTyping = nil

	spec := stepSpecs[e.flow[e.pos]]
	e.transcript.Append(SenderBot, spec.prompt(e.prefs.Snapshot()), spec.widget)
}

// missingLocked lists the French labels of required fields still unset,
// in flow order.
func (e *Engine) missingLocked() []string {
	p := e.prefs.Snapshot()
	var missing []string
	for _, step := range e.flow {
		spec := stepSpecs[step]
		if !spec.done(p) {
			missing = append(missing, spec.label)
		}
	}
	return missing
}

// ToggleActivity flips the id in the traveler's selection without advancing
// the flow; re-selecting removes. Interacting after completion supersedes a
// pending navigation handoff.
func (e *Engine) ToggleActivity(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !isKnownActivity(id) {
		return false, ErrUnknownActivity
	}

	if e.cancelNav != nil {
		e.cancelNav()
		e.cancelNav = nil
	}

	return e.prefs.ToggleActivity(id), nil
}

// Reset restarts the flow: pending timers are cancelled, the preference
// record returns to defaults and the transcript starts over. The caller
// re-greets with Start.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancelTyping != nil {
		e.cancelTyping()
		e.cancelTyping = nil
	}
	if e.cancelNav != nil {
		e.cancelNav()
		e.cancelNav = nil
	}

	e.gen++
	e.pos = 0
	e.started = false
	e.typing = false
	e.completed = false
	e.navDone = false
	e.prefs.Reset()
	e.transcript = NewTranscript()
}

// CurrentStep returns the step awaiting an answer. ok is false before the
// greeting appears and after completion.
func (e *Engine) CurrentStep() (Step, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.completed {
		return 0, false
	}
	return e.flow[e.pos], true
}

func (e *Engine) Typing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.typing
}

func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed
}

// HandoffDone reports whether the post-completion navigation fired. It stays
// false while the handoff is pending or after an interaction superseded it.
func (e *Engine) HandoffDone() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.navDone
}

func (e *Engine) Messages() []Message {
	e.mu.Lock()
	t := e.transcript
	e.mu.Unlock()
	return t.Messages()
}

func (e *Engine) Snapshot() TravelerPreferences {
	return e.prefs.Snapshot()
}

func (e *Engine) Preferences() *PreferenceStore {
	return e.prefs
}
