package chat_fx

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"voyago/internal/chatflow"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideChatService),
	fx.Invoke(registerSessionJanitor),
)

func provideChatService(sessions mem.SessionStore) services.ChatServiceInterface {
	return services.NewChatService(sessions, chatflow.Config{}, 30*time.Minute)
}

// registerSessionJanitor sweeps expired chat sessions every five minutes so
// abandoned conversations do not pile up in memory.
func registerSessionJanitor(lc fx.Lifecycle, chatService services.ChatServiceInterface) {
	c := cron.New()

	_, err := c.AddFunc("*/5 * * * *", func() {
		if dropped := chatService.SweepExpired(); dropped > 0 {
			log.Printf("Session janitor dropped %d expired sessions", dropped)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule session janitor: %v", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			<-c.Stop().Done()
			return nil
		},
	})
}
