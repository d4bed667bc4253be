package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/dayflower/todo-star-slack-bot/clients"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token
func NewSlackClient(authToken string, options ...slack.Option) *SlackClient {
	return &SlackClient{
		Client: slack.New(authToken, options...),
	}
}

var _ clients.SlackClient = (*SlackClient)(nil)

// AuthTest verifies the token and returns information about the bot
func (c *SlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTestContext(ctx)
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		User:   response.User,
		TeamID: response.TeamID,
		Team:   response.Team,
	}, nil
}

// AddReaction adds a reaction to a message
func (c *SlackClient) AddReaction(ctx context.Context, name string, item models.SlackItemRef) error {
	return c.Client.AddReactionContext(ctx, name, toSDKItemRef(item))
}

// AddStar stars a message for the token's user
func (c *SlackClient) AddStar(ctx context.Context, item models.SlackItemRef) error {
	return c.Client.AddStarContext(ctx, item.Channel, toSDKItemRef(item))
}

// RemoveStar removes the star from a message
func (c *SlackClient) RemoveStar(ctx context.Context, item models.SlackItemRef) error {
	return c.Client.RemoveStarContext(ctx, item.Channel, toSDKItemRef(item))
}

// GetItem looks up the message at item.
//
// The thread root is read through conversations.replies, whose first entry is
// the parent message itself. A missing message yields a record with OK=false.
func (c *SlackClient) GetItem(ctx context.Context, item models.SlackItemRef) (*models.SlackItemRecord, error) {
	msgs, _, _, err := c.Client.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
		ChannelID: item.Channel,
		Timestamp: item.Timestamp,
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s in %s: %w", item.Timestamp, item.Channel, err)
	}

	for _, msg := range msgs {
		if msg.Timestamp != item.Timestamp {
			continue
		}
		return &models.SlackItemRecord{
			OK:   true,
			Type: msg.Type,
			User: msg.User,
		}, nil
	}

	return &models.SlackItemRecord{OK: false}, nil
}

func toSDKItemRef(item models.SlackItemRef) slack.ItemRef {
	return slack.NewRefToMessage(item.Channel, item.Timestamp)
}
