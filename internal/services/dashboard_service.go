package services

import (
	"strings"

	"voyago/internal/catalog"
	"voyago/internal/chatflow"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

const maxRecommendations = 3

type DashboardServiceInterface interface {
	BuildDashboard(p chatflow.TravelerPreferences) (*response_models.DashboardResponse, error)
}

type DashboardService struct{}

func NewDashboardService() DashboardServiceInterface {
	return &DashboardService{}
}

// BuildDashboard assembles the post-chat trip summary. The chat must have run
// to completion; a partial record never reaches the dashboard.
func (s *DashboardService) BuildDashboard(p chatflow.TravelerPreferences) (*response_models.DashboardResponse, error) {
	if !p.ChatCompleted {
		return nil, utils.ErrChatNotCompleted
	}

	selected := make([]catalog.Activity, 0, len(p.SelectedActivityIDs))
	for _, id := range p.SelectedActivityIDs {
		if a, ok := catalog.ActivityByID(id); ok {
			selected = append(selected, a)
		}
	}

	var total float64
	for _, a := range selected {
		total += a.Price
	}
	total *= float64(p.GroupSize)

	resp := &response_models.DashboardResponse{
		Name:               p.Name,
		Email:              p.Email,
		SelectedCity:       cityNames(p.SelectedCity),
		GroupSize:          p.GroupSize,
		Budget:             p.BudgetBand,
		ActivityTypes:      p.ActivityTypeInterests,
		SelectedActivities: selected,
		Recommended:        recommend(p, selected),
		TotalPrice:         total,
	}
	if p.DateRange.IsSet() {
		resp.DateRange = chatflow.FormatFrenchDateRange(p.DateRange.From, p.DateRange.To)
	}
	if p.SpecialRequirements != chatflow.NoRequirements {
		resp.SpecialRequirements = p.SpecialRequirements
	}

	return resp, nil
}

// recommend picks up to three activities sharing a type with the traveler's
// interests, excluding what is already selected and anything that cannot host
// the group.
func recommend(p chatflow.TravelerPreferences, selected []catalog.Activity) []catalog.Activity {
	chosen := make(map[string]bool, len(selected))
	for _, a := range selected {
		chosen[a.ID] = true
	}

	var out []catalog.Activity
	for _, a := range catalog.FilterByTypes(p.ActivityTypeInterests) {
		if chosen[a.ID] {
			continue
		}
		if p.GroupSize < a.GroupSize.Min || p.GroupSize > a.GroupSize.Max {
			continue
		}
		out = append(out, a)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// cityNames resolves the stored comma-joined city ids back to display names.
func cityNames(joined string) string {
	if joined == "" {
		return ""
	}
	ids := strings.Split(joined, ",")
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if city, ok := catalog.CityByID(id); ok {
			names = append(names, city.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
