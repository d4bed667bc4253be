package models

import "github.com/samber/mo"

// SlackEventType identifies the realtime events the bot listens to
type SlackEventType string

const (
	SlackEventTypeMessage         SlackEventType = "message"
	SlackEventTypeReactionAdded   SlackEventType = "reaction_added"
	SlackEventTypeReactionRemoved SlackEventType = "reaction_removed"
)

// SlackItemTypeMessage is the item type of reactions placed on messages
const SlackItemTypeMessage = "message"

// SlackItemRef represents a reference to a Slack message item
type SlackItemRef struct {
	Channel   string
	Timestamp string
}

// SlackMessageEvent is a message received on the realtime stream
type SlackMessageEvent struct {
	Channel  string
	User     string
	Text     string
	TS       string
	ThreadTS mo.Option[string]
	SubType  string
}

// Ref returns a reference to the message itself
func (e SlackMessageEvent) Ref() SlackItemRef {
	return SlackItemRef{Channel: e.Channel, Timestamp: e.TS}
}

// IsThreadReply reports whether the message was posted inside a thread
func (e SlackMessageEvent) IsThreadReply() bool {
	return e.ThreadTS.IsPresent()
}

// SlackReactionItem is the item a reaction was added to or removed from
type SlackReactionItem struct {
	Type    string
	Channel string
	TS      string
}

// SlackReactionEvent is a reaction_added or reaction_removed event
type SlackReactionEvent struct {
	User     string
	ItemUser string
	Item     SlackReactionItem
	Reaction string
}

// Ref returns a reference to the reacted-to item
func (e SlackReactionEvent) Ref() SlackItemRef {
	return SlackItemRef{Channel: e.Item.Channel, Timestamp: e.Item.TS}
}

// SlackEvent wraps one inbound realtime event. Exactly one of Message or
// Reaction is set, depending on Type.
type SlackEvent struct {
	Type     SlackEventType
	Message  mo.Option[SlackMessageEvent]
	Reaction mo.Option[SlackReactionEvent]
}

// NewSlackMessageEvent wraps a message event
func NewSlackMessageEvent(event SlackMessageEvent) SlackEvent {
	return SlackEvent{
		Type:    SlackEventTypeMessage,
		Message: mo.Some(event),
	}
}

// NewSlackReactionEvent wraps a reaction_added or reaction_removed event
func NewSlackReactionEvent(eventType SlackEventType, event SlackReactionEvent) SlackEvent {
	return SlackEvent{
		Type:     eventType,
		Reaction: mo.Some(event),
	}
}

// SlackItemRecord is the metadata of a message looked up from Slack
type SlackItemRecord struct {
	OK   bool
	Type string
	User string
}
