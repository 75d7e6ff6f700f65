package services

import (
	"time"

	"github.com/google/uuid"

	"voyago/internal/chatflow"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const DashboardRoute = "/dashboard"

type ChatServiceInterface interface {
	StartSession() (*response_models.ChatSessionResponse, error)
	GetSession(sessionID string) (*response_models.ChatSessionResponse, error)
	SubmitAnswer(sessionID string, req request_models.SubmitAnswerRequest) (*response_models.ChatSessionResponse, error)
	ToggleActivity(sessionID string, activityID string) (*response_models.ToggleActivityResponse, error)
	ResetSession(sessionID string) (*response_models.ChatSessionResponse, error)
	Snapshot(sessionID string) (chatflow.TravelerPreferences, error)
	SweepExpired() int
}

type ChatService struct {
	sessions   memcache.SessionStore
	engineCfg  chatflow.Config
	sessionTTL time.Duration
}

func NewChatService(sessions memcache.SessionStore, engineCfg chatflow.Config, sessionTTL time.Duration) ChatServiceInterface {
	if sessionTTL == 0 {
		sessionTTL = 30 * time.Minute
	}
	return &ChatService{
		sessions:   sessions,
		engineCfg:  engineCfg,
		sessionTTL: sessionTTL,
	}
}

func (s *ChatService) StartSession() (*response_models.ChatSessionResponse, error) {
	sessionID := uuid.New().String()

	engine := chatflow.NewEngine(chatflow.NewPreferenceStore(), s.engineCfg)
	engine.Start()

	s.sessions.Set(sessionID, engine, s.sessionTTL)

	return buildChatResponse(sessionID, engine), nil
}

func (s *ChatService) GetSession(sessionID string) (*response_models.ChatSessionResponse, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return buildChatResponse(sessionID, engine), nil
}

func (s *ChatService) SubmitAnswer(sessionID string, req request_models.SubmitAnswerRequest) (*response_models.ChatSessionResponse, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	step, active := engine.CurrentStep()
	if !active {
		if engine.Completed() {
			return nil, chatflow.ErrFlowCompleted
		}
		return nil, chatflow.ErrBotTyping
	}

	if err := engine.Submit(answerForStep(step, req)); err != nil {
		return nil, err
	}

	return buildChatResponse(sessionID, engine), nil
}

func (s *ChatService) ToggleActivity(sessionID string, activityID string) (*response_models.ToggleActivityResponse, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	selected, err := engine.ToggleActivity(activityID)
	if err != nil {
		return nil, err
	}

	return &response_models.ToggleActivityResponse{
		ActivityID: activityID,
		Selected:   selected,
	}, nil
}

func (s *ChatService) ResetSession(sessionID string) (*response_models.ChatSessionResponse, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	engine.Reset()
	engine.Start()

	return buildChatResponse(sessionID, engine), nil
}

func (s *ChatService) Snapshot(sessionID string) (chatflow.TravelerPreferences, error) {
	engine, ok := s.sessions.Get(sessionID)
	if !ok {
		return chatflow.TravelerPreferences{}, utils.ErrSessionNotFound
	}
	return engine.Snapshot(), nil
}

func (s *ChatService) SweepExpired() int {
	return s.sessions.SweepExpired()
}

// answerForStep selects the answer variant matching the step's widget; the
// engine rejects anything that does not fit.
func answerForStep(step chatflow.Step, req request_models.SubmitAnswerRequest) chatflow.Answer {
	switch step {
	case chatflow.StepCity:
		return chatflow.CityAnswer{CityIDs: req.CityIDs}
	case chatflow.StepDates:
		var from, to time.Time
		if req.DateFrom != nil {
			from = *req.DateFrom
		}
		if req.DateTo != nil {
			to = *req.DateTo
		}
		return chatflow.DateRangeAnswer{From: from, To: to}
	case chatflow.StepActivities:
		return chatflow.ActivitiesAnswer{ActivityIDs: req.ActivityIDs}
	case chatflow.StepGroupSize, chatflow.StepRunnerCount:
		value := 0
		if req.Value != nil {
			value = *req.Value
		}
		return chatflow.NumberAnswer{Value: value}
	case chatflow.StepBudget:
		label := ""
		if req.Label != nil {
			label = *req.Label
		}
		return chatflow.ChoiceAnswer{Label: label}
	default:
		text := ""
		if req.Text != nil {
			text = *req.Text
		}
		return chatflow.TextAnswer{Text: text}
	}
}

func buildChatResponse(sessionID string, engine *chatflow.Engine) *response_models.ChatSessionResponse {
	resp := &response_models.ChatSessionResponse{
		SessionID: sessionID,
		Messages:  engine.Messages(),
		Typing:    engine.Typing(),
		Completed: engine.Completed(),
	}

	if step, ok := engine.CurrentStep(); ok {
		resp.CurrentStep = step.String()
	}
	if engine.Completed() && engine.HandoffDone() {
		resp.Redirect = DashboardRoute
	}

	return resp
}
