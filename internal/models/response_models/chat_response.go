package response_models

import "voyago/internal/chatflow"

// ChatSessionResponse mirrors what the conversation UI renders: the full
// transcript, the typing indicator, the step awaiting input and, once the
// handoff fires, the dashboard redirect.
type ChatSessionResponse struct {
	SessionID   string             `json:"session_id"`
	Messages    []chatflow.Message `json:"messages"`
	CurrentStep string             `json:"current_step,omitempty"`
	Typing      bool               `json:"typing"`
	Completed   bool               `json:"completed"`
	Redirect    string             `json:"redirect,omitempty"`
}

type ToggleActivityResponse struct {
	ActivityID string `json:"activity_id"`
	Selected   bool   `json:"selected"`
}
