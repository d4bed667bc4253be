package todostar

import (
	"context"
	"fmt"

	"github.com/dayflower/todo-star-slack-bot/appctx"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
	"github.com/dayflower/todo-star-slack-bot/models"
)

func (s *TodoStarUseCase) addReaction(ctx context.Context, name string, item models.SlackItemRef) error {
	err := s.slackClient.AddReaction(ctx, name, item)
	metrics.RecordSlackCall("add_reaction", err)
	if err != nil {
		return fmt.Errorf("failed to add reaction %s to %s in %s: %w", name, item.Timestamp, item.Channel, err)
	}
	log.Info("✅ [%s] Added reaction %s to %s in %s", appctx.GetEventID(ctx), name, item.Timestamp, item.Channel)
	return nil
}

func (s *TodoStarUseCase) addStar(ctx context.Context, item models.SlackItemRef) error {
	err := s.slackClient.AddStar(ctx, item)
	metrics.RecordSlackCall("add_star", err)
	if err != nil {
		return fmt.Errorf("failed to star %s in %s: %w", item.Timestamp, item.Channel, err)
	}
	log.Info("⭐ [%s] Starred %s in %s", appctx.GetEventID(ctx), item.Timestamp, item.Channel)
	return nil
}

func (s *TodoStarUseCase) removeStar(ctx context.Context, item models.SlackItemRef) error {
	err := s.slackClient.RemoveStar(ctx, item)
	metrics.RecordSlackCall("remove_star", err)
	if err != nil {
		return fmt.Errorf("failed to unstar %s in %s: %w", item.Timestamp, item.Channel, err)
	}
	log.Info("✅ [%s] Removed star from %s in %s", appctx.GetEventID(ctx), item.Timestamp, item.Channel)
	return nil
}
