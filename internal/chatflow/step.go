package chatflow

import (
	"fmt"
	"strings"

	"voyago/internal/catalog"
)

// Step identifies one question/answer unit of the intake flow.
type Step int

const (
	StepCity Step = iota
	StepName
	StepEmail
	StepDates
	StepActivities
	StepGroupSize
	StepRunnerCount
	StepBudget
	StepSpecial
	StepComments
)

func (s Step) String() string {
	switch s {
	case StepCity:
		return "city"
	case StepName:
		return "name"
	case StepEmail:
		return "email"
	case StepDates:
		return "dates"
	case StepActivities:
		return "activities"
	case StepGroupSize:
		return "group_size"
	case StepRunnerCount:
		return "runner_count"
	case StepBudget:
		return "budget"
	case StepSpecial:
		return "special_requirements"
	case StepComments:
		return "additional_comments"
	default:
		return "unknown"
	}
}

// WidgetKind tags which interactive control a bot message carries.
type WidgetKind string

const (
	WidgetNone       WidgetKind = ""
	WidgetText       WidgetKind = "text"
	WidgetCity       WidgetKind = "city"
	WidgetDateRange  WidgetKind = "date"
	WidgetActivities WidgetKind = "activities"
	WidgetGroupSize  WidgetKind = "groupSize"
	WidgetRunners    WidgetKind = "runners"
	WidgetBudget     WidgetKind = "budget"
	WidgetSpecial    WidgetKind = "special"
	WidgetComments   WidgetKind = "comments"
)

// DefaultFlow is the canonical question order. RunnerCount and Comments are
// optional steps used by extended flow revisions.
var DefaultFlow = []Step{
	StepCity,
	StepName,
	StepEmail,
	StepDates,
	StepActivities,
	StepGroupSize,
	StepBudget,
	StepSpecial,
}

type stepSpec struct {
	widget WidgetKind

	// label names the collected field in remediation notices.
	label string

	prompt   func(p TravelerPreferences) string
	validate func(e *Engine, ans Answer) error

	// apply writes the answer into the preference record and returns the
	// human-readable echo appended to the transcript.
	apply func(e *Engine, ans Answer) string

	// done reports whether the field this step collects is populated.
	done func(p TravelerPreferences) bool
}

var stepSpecs = map[Step]stepSpec{
	StepCity: {
		widget: WidgetCity,
		label:  "votre destination",
		prompt: func(TravelerPreferences) string {
			return "Quelle ville ou région souhaitez-vous découvrir ? Vous pouvez en choisir plusieurs."
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(CityAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			if len(a.CityIDs) == 0 {
				return ErrAnswerRequired
			}
			for _, id := range a.CityIDs {
				if _, found := catalog.CityByID(id); !found {
					return ErrUnknownCity
				}
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			a := ans.(CityAnswer)
			joined := strings.Join(a.CityIDs, ",")
			e.prefs.Update(PreferencesUpdate{SelectedCity: &joined})

			names := make([]string, 0, len(a.CityIDs))
			for _, id := range a.CityIDs {
				city, _ := catalog.CityByID(id)
				names = append(names, city.Name)
			}
			return strings.Join(names, ", ")
		},
		done: func(p TravelerPreferences) bool { return p.SelectedCity != "" },
	},

	StepName: {
		widget: WidgetText,
		label:  "votre nom",
		prompt: func(TravelerPreferences) string {
			return "Quel est votre nom ?"
		},
		validate: validateNonEmptyText,
		apply: func(e *Engine, ans Answer) string {
			text := strings.TrimSpace(ans.(TextAnswer).Text)
			e.prefs.Update(PreferencesUpdate{Name: &text})
			return text
		},
		done: func(p TravelerPreferences) bool { return p.Name != "" },
	},

	StepEmail: {
		widget: WidgetText,
		label:  "votre email",
		prompt: func(p TravelerPreferences) string {
			if p.Name != "" {
				return fmt.Sprintf("Ravi de vous rencontrer, %s ! Pouvez-vous me donner votre email pour que nous puissions vous contacter concernant votre voyage ?", p.Name)
			}
			return "Pouvez-vous me donner votre email pour que nous puissions vous contacter concernant votre voyage ?"
		},
		validate: validateNonEmptyText,
		apply: func(e *Engine, ans Answer) string {
			text := strings.TrimSpace(ans.(TextAnswer).Text)
			e.prefs.Update(PreferencesUpdate{Email: &text})
			return text
		},
		done: func(p TravelerPreferences) bool { return p.Email != "" },
	},

	StepDates: {
		widget: WidgetDateRange,
		label:  "vos dates de voyage",
		prompt: func(TravelerPreferences) string {
			return "Super ! Maintenant, parlons des dates de votre voyage. Quand prévoyez-vous de voyager ?"
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(DateRangeAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			if a.From.IsZero() || a.To.IsZero() || a.From.After(a.To) {
				return ErrInvalidDateRange
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			a := ans.(DateRangeAnswer)
			rng := DateRange{From: a.From, To: a.To}
			e.prefs.Update(PreferencesUpdate{DateRange: &rng})
			return FormatFrenchDateRange(a.From, a.To)
		},
		done: func(p TravelerPreferences) bool { return p.DateRange.IsSet() },
	},

	StepActivities: {
		widget: WidgetActivities,
		label:  "vos activités",
		prompt: func(TravelerPreferences) string {
			return "Parlons maintenant des activités qui vous intéressent. Vous pouvez sélectionner plusieurs options :"
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(ActivitiesAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			ids := a.ActivityIDs
			if len(ids) == 0 {
				ids = e.prefs.Snapshot().SelectedActivityIDs
			}
			if len(ids) == 0 {
				return ErrAnswerRequired
			}
			for _, id := range ids {
				if _, found := catalog.ActivityByID(id); !found {
					return ErrUnknownActivity
				}
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			a := ans.(ActivitiesAnswer)
			ids := a.ActivityIDs
			if len(ids) == 0 {
				ids = e.prefs.Snapshot().SelectedActivityIDs
			}
			e.prefs.Update(PreferencesUpdate{
				SelectedActivityIDs:   ids,
				ActivityTypeInterests: catalog.TypeUnion(ids),
			})

			titles := make([]string, 0, len(ids))
			for _, id := range ids {
				activity, _ := catalog.ActivityByID(id)
				titles = append(titles, activity.Title)
			}
			return "J'aime : " + strings.Join(titles, ", ")
		},
		done: func(p TravelerPreferences) bool { return len(p.SelectedActivityIDs) > 0 },
	},

	StepGroupSize: {
		widget: WidgetGroupSize,
		label:  "la taille de votre groupe",
		prompt: func(TravelerPreferences) string {
			return "Parfait ! Combien de personnes participeront à ce voyage ?"
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(NumberAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			if a.Value < 1 {
				return ErrInvalidGroupSize
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			n := ans.(NumberAnswer).Value
			e.prefs.Update(PreferencesUpdate{GroupSize: &n})
			if n > 1 {
				return fmt.Sprintf("%d personnes", n)
			}
			return "1 personne"
		},
		done: func(p TravelerPreferences) bool { return p.GroupSize >= 1 },
	},

	StepRunnerCount: {
		widget: WidgetRunners,
		label:  "le nombre de coureurs",
		prompt: func(TravelerPreferences) string {
			return "Parmi vous, combien participeront à la course ?"
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(NumberAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			if a.Value < 0 {
				return ErrAnswerRequired
			}
			if a.Value > e.prefs.Snapshot().GroupSize {
				return ErrRunnerCountExceedsGroup
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			n := ans.(NumberAnswer).Value
			e.prefs.Update(PreferencesUpdate{RunnerCount: &n})
			switch {
			case n == 0:
				return "Aucun coureur"
			case n == 1:
				return "1 coureur"
			default:
				return fmt.Sprintf("%d coureurs", n)
			}
		},
		done: func(TravelerPreferences) bool { return true },
	},

	StepBudget: {
		widget: WidgetBudget,
		label:  "votre budget",
		prompt: func(TravelerPreferences) string {
			return "Quel est votre budget approximatif par personne pour ces activités ?"
		},
		validate: func(e *Engine, ans Answer) error {
			a, ok := ans.(ChoiceAnswer)
			if !ok {
				return ErrWrongAnswerKind
			}
			for _, band := range BudgetBands {
				if a.Label == band {
					return nil
				}
			}
			return ErrUnknownBudget
		},
		apply: func(e *Engine, ans Answer) string {
			label := ans.(ChoiceAnswer).Label
			e.prefs.Update(PreferencesUpdate{BudgetBand: &label})
			return label
		},
		done: func(p TravelerPreferences) bool { return p.BudgetBand != "" },
	},

	StepSpecial: {
		widget: WidgetSpecial,
		label:  "vos exigences particulières",
		prompt: func(TravelerPreferences) string {
			return "Avez-vous des exigences particulières ou des informations supplémentaires à nous communiquer ?"
		},
		validate: func(e *Engine, ans Answer) error {
			if _, ok := ans.(TextAnswer); !ok {
				return ErrWrongAnswerKind
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			text := strings.TrimSpace(ans.(TextAnswer).Text)
			if text == "" {
				text = NoRequirements
			}
			e.prefs.Update(PreferencesUpdate{SpecialRequirements: &text})
			return text
		},
		done: func(p TravelerPreferences) bool { return p.SpecialRequirements != "" },
	},

	StepComments: {
		widget: WidgetComments,
		label:  "vos commentaires",
		prompt: func(TravelerPreferences) string {
			return "Un dernier mot ? Avez-vous d'autres commentaires à ajouter ?"
		},
		validate: func(e *Engine, ans Answer) error {
			if _, ok := ans.(TextAnswer); !ok {
				return ErrWrongAnswerKind
			}
			return nil
		},
		apply: func(e *Engine, ans Answer) string {
			text := strings.TrimSpace(ans.(TextAnswer).Text)
			if text == "" {
				text = NoRequirements
			}
			e.prefs.Update(PreferencesUpdate{AdditionalComments: &text})
			return text
		},
		// Comments are optional and never block completion.
		done: func(TravelerPreferences) bool { return true },
	},
}

func isKnownActivity(id string) bool {
	_, ok := catalog.ActivityByID(id)
	return ok
}

func validateNonEmptyText(e *Engine, ans Answer) error {
	a, ok := ans.(TextAnswer)
	if !ok {
		return ErrWrongAnswerKind
	}
	if strings.TrimSpace(a.Text) == "" {
		return ErrAnswerRequired
	}
	return nil
}
