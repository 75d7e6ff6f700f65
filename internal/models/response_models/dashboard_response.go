package response_models

import "voyago/internal/catalog"

// DashboardResponse is the personalized trip summary shown after the chat
// completes.
type DashboardResponse struct {
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	SelectedCity        string             `json:"selected_city"`
	DateRange           string             `json:"date_range"`
	GroupSize           int                `json:"group_size"`
	Budget              string             `json:"budget"`
	ActivityTypes       []string           `json:"activity_types"`
	SpecialRequirements string             `json:"special_requirements,omitempty"`
	SelectedActivities  []catalog.Activity `json:"selected_activities"`
	Recommended         []catalog.Activity `json:"recommended_activities"`
	TotalPrice          float64            `json:"total_price"`
}
