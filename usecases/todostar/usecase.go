package todostar

import (
	"github.com/dayflower/todo-star-slack-bot/clients"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// TodoStarUseCase maps realtime events onto star and reaction calls.
// Only messages and reactions by the active identity are acted upon.
type TodoStarUseCase struct {
	slackClient clients.SlackClient
	identity    clients.IdentityProvider
	vocabulary  *models.Vocabulary

	rootMessageRules     []messageRule
	threadMessageRules   []messageRule
	reactionAddedRules   []reactionRule
	reactionRemovedRules []reactionRule
}

// NewTodoStarUseCase creates a new instance of TodoStarUseCase
func NewTodoStarUseCase(
	slackClient clients.SlackClient,
	identity clients.IdentityProvider,
	vocabulary *models.Vocabulary,
) *TodoStarUseCase {
	s := &TodoStarUseCase{
		slackClient: slackClient,
		identity:    identity,
		vocabulary:  vocabulary,
	}

	todo := vocabulary.TodoReactions()
	start := vocabulary.StartReactions()
	done := vocabulary.DoneReactions()

	s.rootMessageRules = []messageRule{
		{name: "todo_command", pattern: commandPattern(models.TodoCommand), handle: s.handleTodoPlainCommand},
		{name: "todo_emoji", pattern: emojiPattern(todo), handle: s.handleTodoReactionCommand},
	}
	s.threadMessageRules = []messageRule{
		{name: "start_command", pattern: commandPattern(models.StartCommand), handle: s.handleThreadStartCommand},
		{name: "start_emoji", pattern: emojiPattern(start), handle: s.handleThreadStartCommand},
		{name: "done_command", pattern: commandPattern(models.DoneCommand), handle: s.handleThreadDoneCommand},
		{name: "done_emoji", pattern: emojiPattern(done), handle: s.handleThreadDoneCommand},
	}
	s.reactionAddedRules = []reactionRule{
		{name: "todo", reactions: reactionSet(todo), handle: s.handleTodoReactionAdded},
		{name: "start", reactions: reactionSet(start), handle: s.handleStartReactionAdded},
		{name: "done", reactions: reactionSet(done), handle: s.handleDoneReactionAdded},
	}
	s.reactionRemovedRules = []reactionRule{
		{name: "todo", reactions: reactionSet(todo), handle: s.handleTodoReactionRemoved},
		{name: "done", reactions: reactionSet(done), handle: s.handleDoneReactionRemoved},
		// recognised but without a handler: neither acted upon nor logged
		{name: "start", reactions: reactionSet(start)},
	}

	return s
}

// isSelf reports whether userID is the bot's own identity
func (s *TodoStarUseCase) isSelf(userID string) bool {
	activeUserID := s.identity.ActiveUserID()
	return activeUserID != "" && userID == activeUserID
}
