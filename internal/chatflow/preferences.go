package chatflow

import (
	"sync"
	"time"
)

// NoRequirements is stored when the traveler explicitly skips the
// special-requirements question.
const NoRequirements = "Pas d'exigences particulières"

// BudgetBands is the enumerated set of budget labels offered by the
// single-choice budget widget.
var BudgetBands = []string{"Moins de 50€", "50€ - 100€", "Plus de 100€"}

// DateRange holds the travel window. Both bounds are either set or zero.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) IsSet() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// TravelerPreferences is the record accumulated by the chat flow, one
// instance per session. Empty string means unset for the text fields.
type TravelerPreferences struct {
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	SelectedCity          string    `json:"selected_city"`
	ActivityTypeInterests []string  `json:"activity_types"`
	DateRange             DateRange `json:"date_range"`
	GroupSize             int       `json:"group_size"`
	RunnerCount           int       `json:"runner_count"`
	BudgetBand            string    `json:"budget"`
	SelectedActivityIDs   []string  `json:"selected_activities"`
	SpecialRequirements   string    `json:"special_requirements"`
	AdditionalComments    string    `json:"additional_comments"`
	ChatCompleted         bool      `json:"chat_completed"`
}

// PreferencesUpdate is a partial update. Nil fields leave the current value
// untouched; slices replace wholesale when non-nil.
type PreferencesUpdate struct {
	Name                  *string
	Email                 *string
	SelectedCity          *string
	ActivityTypeInterests []string
	DateRange             *DateRange
	GroupSize             *int
	RunnerCount           *int
	BudgetBand            *string
	SelectedActivityIDs   []string
	SpecialRequirements   *string
	AdditionalComments    *string
	ChatCompleted         *bool
}

// PreferenceStore owns one TravelerPreferences record. The dialogue engine is
// the only writer during the flow; the dashboard and export paths read
// snapshots.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs TravelerPreferences
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{prefs: defaultPreferences()}
}

func defaultPreferences() TravelerPreferences {
	return TravelerPreferences{GroupSize: 1}
}

// Snapshot returns a copy of the current record. Slices are copied so the
// caller cannot mutate stored state.
func (s *PreferenceStore) Snapshot() TravelerPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.prefs
	out.ActivityTypeInterests = append([]string(nil), s.prefs.ActivityTypeInterests...)
	out.SelectedActivityIDs = append([]string(nil), s.prefs.SelectedActivityIDs...)
	return out
}

// Update merges the provided fields into the record.
func (s *PreferenceStore) Update(u PreferencesUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Name != nil {
		s.prefs.Name = *u.Name
	}
	if u.Email != nil {
		s.prefs.Email = *u.Email
	}
	if u.SelectedCity != nil {
		s.prefs.SelectedCity = *u.SelectedCity
	}
	if u.ActivityTypeInterests != nil {
		s.prefs.ActivityTypeInterests = append([]string(nil), u.ActivityTypeInterests...)
	}
	if u.DateRange != nil {
		s.prefs.DateRange = *u.DateRange
	}
	if u.GroupSize != nil {
		s.prefs.GroupSize = *u.GroupSize
	}
	if u.RunnerCount != nil {
		s.prefs.RunnerCount = *u.RunnerCount
	}
	if u.BudgetBand != nil {
		s.prefs.BudgetBand = *u.BudgetBand
	}
	if u.SelectedActivityIDs != nil {
		s.prefs.SelectedActivityIDs = append([]string(nil), u.SelectedActivityIDs...)
	}
	if u.SpecialRequirements != nil {
		s.prefs.SpecialRequirements = *u.SpecialRequirements
	}
	if u.AdditionalComments != nil {
		s.prefs.AdditionalComments = *u.AdditionalComments
	}
	if u.ChatCompleted != nil {
		s.prefs.ChatCompleted = *u.ChatCompleted
	}
}

// ToggleActivity adds the id to the selection, or removes it when already
// present. Duplicates never accumulate. Returns whether the id is selected
// after the toggle.
func (s *PreferenceStore) ToggleActivity(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.prefs.SelectedActivityIDs {
		if existing == id {
			s.prefs.SelectedActivityIDs = append(
				s.prefs.SelectedActivityIDs[:i],
				s.prefs.SelectedActivityIDs[i+1:]...,
			)
			return false
		}
	}
	s.prefs.SelectedActivityIDs = append(s.prefs.SelectedActivityIDs, id)
	return true
}

// Reset restores defaults and clears the completion flag.
func (s *PreferenceStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = defaultPreferences()
}
