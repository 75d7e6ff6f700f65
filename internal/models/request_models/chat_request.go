package request_models

import "time"

// SubmitAnswerRequest carries the payload for the session's current step. The
// service keeps the fields relevant to the step's widget and ignores the rest.
type SubmitAnswerRequest struct {
	Text        *string    `json:"text"`
	CityIDs     []string   `json:"city_ids"`
	DateFrom    *time.Time `json:"date_from"`
	DateTo      *time.Time `json:"date_to"`
	ActivityIDs []string   `json:"activity_ids"`
	Value       *int       `json:"value"`
	Label       *string    `json:"label"`
}

type ToggleActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
}
