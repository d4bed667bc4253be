package todostar

import (
	"context"
	"fmt"

	"github.com/dayflower/todo-star-slack-bot/appctx"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// ProcessMessageEvent handles the todo command on root messages and the
// start/done commands on thread replies.
func (s *TodoStarUseCase) ProcessMessageEvent(ctx context.Context, event models.SlackMessageEvent) error {
	if !s.isSelf(event.User) || event.SubType != "" {
		return nil
	}

	eventID := appctx.GetEventID(ctx)

	rules := s.rootMessageRules
	if event.IsThreadReply() {
		rules = s.threadMessageRules
	}

	rule, ok := matchMessageRule(rules, event.Text)
	if !ok {
		return nil
	}

	log.Info("📋 [%s] Starting to process %s in %s (ts: %s)", eventID, rule.name, event.Channel, event.TS)
	metrics.RuleMatchesTotal.WithLabelValues(string(models.SlackEventTypeMessage), rule.name).Inc()

	if err := rule.handle(ctx, event); err != nil {
		return fmt.Errorf("failed to handle %s: %w", rule.name, err)
	}

	log.Info("📋 [%s] Completed successfully - processed %s", eventID, rule.name)
	return nil
}

func (s *TodoStarUseCase) handleTodoPlainCommand(ctx context.Context, event models.SlackMessageEvent) error {
	return s.addReaction(ctx, s.vocabulary.TodoReaction(), event.Ref())
}

func (s *TodoStarUseCase) handleTodoReactionCommand(ctx context.Context, event models.SlackMessageEvent) error {
	return s.addStar(ctx, event.Ref())
}

func (s *TodoStarUseCase) handleThreadStartCommand(ctx context.Context, event models.SlackMessageEvent) error {
	return s.reactToOwnThread(ctx, event, s.vocabulary.StartReaction())
}

func (s *TodoStarUseCase) handleThreadDoneCommand(ctx context.Context, event models.SlackMessageEvent) error {
	return s.reactToOwnThread(ctx, event, s.vocabulary.DoneReaction())
}

func (s *TodoStarUseCase) reactToOwnThread(ctx context.Context, event models.SlackMessageEvent, reaction string) error {
	thread := models.SlackItemRef{
		Channel:   event.Channel,
		Timestamp: event.ThreadTS.MustGet(),
	}

	if !s.isThreadMine(ctx, thread) {
		log.Info("⏭️ [%s] Thread %s in %s is not owned by the bot, skipping", appctx.GetEventID(ctx), thread.Timestamp, thread.Channel)
		return nil
	}

	return s.addReaction(ctx, reaction, thread)
}

// isThreadMine reports whether the thread root at thread is a message posted by
// the bot. Lookup failures count as "not mine".
func (s *TodoStarUseCase) isThreadMine(ctx context.Context, thread models.SlackItemRef) bool {
	record, err := s.slackClient.GetItem(ctx, thread)
	metrics.RecordSlackCall("get_item", err)
	if err != nil {
		log.Debug("[%s] Ownership lookup for %s in %s failed: %v", appctx.GetEventID(ctx), thread.Timestamp, thread.Channel, err)
		return false
	}

	return record != nil &&
		record.OK &&
		record.Type == models.SlackItemTypeMessage &&
		s.isSelf(record.User)
}
