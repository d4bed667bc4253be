package clients

import (
	"context"

	"github.com/dayflower/todo-star-slack-bot/models"
)

// SlackClient is the subset of the Slack Web API the bot calls
type SlackClient interface {
	AuthTest(ctx context.Context) (*SlackAuthTestResponse, error)
	AddReaction(ctx context.Context, name string, item models.SlackItemRef) error
	AddStar(ctx context.Context, item models.SlackItemRef) error
	RemoveStar(ctx context.Context, item models.SlackItemRef) error
	GetItem(ctx context.Context, item models.SlackItemRef) (*models.SlackItemRecord, error)
}

// IdentityProvider exposes the bot's own user ID on the event stream
type IdentityProvider interface {
	ActiveUserID() string
}

// EventHandler receives one realtime event. It must not block the source.
type EventHandler func(event models.SlackEvent)

// EventSource delivers realtime events to registered handlers
type EventSource interface {
	IdentityProvider
	On(eventType models.SlackEventType, handler EventHandler)
	Start(ctx context.Context) error
	IsConnected() bool
}

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	User   string
	TeamID string
	Team   string
}

// StaticIdentity is an IdentityProvider with a fixed user ID
type StaticIdentity string

func (s StaticIdentity) ActiveUserID() string {
	return string(s)
}
