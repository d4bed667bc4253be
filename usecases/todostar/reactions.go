package todostar

import (
	"context"
	"fmt"

	"github.com/dayflower/todo-star-slack-bot/appctx"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// ProcessReactionAdded stars messages marked todo and unstars messages marked done.
func (s *TodoStarUseCase) ProcessReactionAdded(ctx context.Context, event models.SlackReactionEvent) error {
	return s.processReaction(ctx, models.SlackEventTypeReactionAdded, s.reactionAddedRules, event)
}

// ProcessReactionRemoved unstars messages whose todo reaction was taken back.
func (s *TodoStarUseCase) ProcessReactionRemoved(ctx context.Context, event models.SlackReactionEvent) error {
	return s.processReaction(ctx, models.SlackEventTypeReactionRemoved, s.reactionRemovedRules, event)
}

func (s *TodoStarUseCase) processReaction(
	ctx context.Context,
	eventType models.SlackEventType,
	rules []reactionRule,
	event models.SlackReactionEvent,
) error {
	if !s.isSelf(event.User) || !s.isSelf(event.ItemUser) {
		return nil
	}
	if event.Item.Type != models.SlackItemTypeMessage {
		return nil
	}

	eventID := appctx.GetEventID(ctx)

	rule, ok := matchReactionRule(rules, event.Reaction)
	if !ok {
		log.Info("❓ [%s] Unrecognized %s event: %+v", eventID, eventType, event)
		return nil
	}
	if rule.handle == nil {
		return nil
	}

	log.Info("📋 [%s] Starting to process %s %s on %s in %s", eventID, rule.name, eventType, event.Item.TS, event.Item.Channel)
	metrics.RuleMatchesTotal.WithLabelValues(string(eventType), rule.name).Inc()

	if err := rule.handle(ctx, event); err != nil {
		return fmt.Errorf("failed to handle %s %s: %w", rule.name, eventType, err)
	}

	log.Info("📋 [%s] Completed successfully - processed %s %s", eventID, rule.name, eventType)
	return nil
}

func (s *TodoStarUseCase) handleTodoReactionAdded(ctx context.Context, event models.SlackReactionEvent) error {
	return s.addStar(ctx, event.Ref())
}

// handleStartReactionAdded is reserved; starting a task changes neither the star nor the reactions.
func (s *TodoStarUseCase) handleStartReactionAdded(ctx context.Context, event models.SlackReactionEvent) error {
	return nil
}

func (s *TodoStarUseCase) handleDoneReactionAdded(ctx context.Context, event models.SlackReactionEvent) error {
	return s.removeStar(ctx, event.Ref())
}

func (s *TodoStarUseCase) handleTodoReactionRemoved(ctx context.Context, event models.SlackReactionEvent) error {
	return s.removeStar(ctx, event.Ref())
}

// TODO: decide whether retracting a done mark should star the message again.
func (s *TodoStarUseCase) handleDoneReactionRemoved(ctx context.Context, event models.SlackReactionEvent) error {
	return nil
}
