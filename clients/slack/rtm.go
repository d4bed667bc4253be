package slack

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"github.com/dayflower/todo-star-slack-bot/clients"
	"github.com/dayflower/todo-star-slack-bot/core"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// rtmConnection is the part of *slack.RTM the event source drives
type rtmConnection interface {
	ManageConnection()
	Disconnect() error
	Incoming() <-chan slack.RTMEvent
}

type rtmAdapter struct {
	*slack.RTM
}

func (a rtmAdapter) Incoming() <-chan slack.RTMEvent {
	return a.IncomingEvents
}

// RTMEventSource implements clients.EventSource over the Slack RTM API.
// Reconnection is handled by slack-go's ManageConnection.
type RTMEventSource struct {
	conn rtmConnection

	mu           sync.RWMutex
	handlers     map[models.SlackEventType]clients.EventHandler
	activeUserID string

	started   atomic.Bool
	connected atomic.Bool
}

var _ clients.EventSource = (*RTMEventSource)(nil)

// NewRTMEventSource creates an RTM source on top of client. activeUserID seeds
// the bot identity (usually from auth.test) until the connected event arrives.
func NewRTMEventSource(client *SlackClient, activeUserID string) *RTMEventSource {
	return newRTMEventSource(rtmAdapter{RTM: client.NewRTM()}, activeUserID)
}

func newRTMEventSource(conn rtmConnection, activeUserID string) *RTMEventSource {
	return &RTMEventSource{
		conn:         conn,
		handlers:     make(map[models.SlackEventType]clients.EventHandler),
		activeUserID: activeUserID,
	}
}

// On registers handler for eventType, replacing any previous handler
func (s *RTMEventSource) On(eventType models.SlackEventType, handler clients.EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[eventType] = handler
}

func (s *RTMEventSource) ActiveUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUserID
}

func (s *RTMEventSource) IsConnected() bool {
	return s.connected.Load()
}

// Start connects to Slack and delivers events until ctx is cancelled.
// It can only be called once.
func (s *RTMEventSource) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return core.ErrAlreadyStarted
	}

	log.Info("📋 Starting to connect to Slack RTM")
	go s.conn.ManageConnection()

	for {
		select {
		case <-ctx.Done():
			log.Info("🔌 Shutting down Slack RTM connection")
			s.disconnect()
			return nil
		case event, ok := <-s.conn.Incoming():
			if !ok {
				s.setConnected(false)
				return nil
			}
			if err := s.handleRTMEvent(event); err != nil {
				s.disconnect()
				return err
			}
		}
	}
}

func (s *RTMEventSource) setConnected(connected bool) {
	s.connected.Store(connected)
	if connected {
		metrics.RealtimeConnected.Set(1)
	} else {
		metrics.RealtimeConnected.Set(0)
	}
}

func (s *RTMEventSource) disconnect() {
	s.setConnected(false)
	if err := s.conn.Disconnect(); err != nil {
		log.Warn("⚠️ Failed to disconnect from Slack RTM: %v", err)
	}
}

func (s *RTMEventSource) handleRTMEvent(event slack.RTMEvent) error {
	switch data := event.Data.(type) {
	case *slack.ConnectedEvent:
		if data.Info != nil && data.Info.User != nil {
			s.mu.Lock()
			s.activeUserID = data.Info.User.ID
			s.mu.Unlock()
		}
		s.setConnected(true)
		log.Info("✅ ready - connected to Slack RTM as %s (connection #%d)", s.ActiveUserID(), data.ConnectionCount)
	case *slack.DisconnectedEvent:
		s.setConnected(false)
		log.Warn("⚠️ Disconnected from Slack RTM (intentional: %t): %v", data.Intentional, data.Cause)
	case *slack.ConnectionErrorEvent:
		log.Warn("⚠️ Slack RTM connection attempt %d failed: %v", data.Attempt, data.ErrorObj)
	case *slack.InvalidAuthEvent:
		log.Error("❌ Slack RTM rejected the API token")
		return core.ErrInvalidAuth
	case *slack.RTMError:
		log.Error("❌ Slack RTM error %d: %s", data.Code, data.Msg)
	case *slack.MessageEvent:
		s.emit(models.NewSlackMessageEvent(toMessageEvent(data)))
	case *slack.ReactionAddedEvent:
		s.emit(models.NewSlackReactionEvent(models.SlackEventTypeReactionAdded, toReactionEvent(*data)))
	case *slack.ReactionRemovedEvent:
		s.emit(models.NewSlackReactionEvent(models.SlackEventTypeReactionRemoved, toReactionEvent(slack.ReactionAddedEvent(*data))))
	default:
		log.Debug("Ignoring Slack RTM event %s", event.Type)
	}
	return nil
}

func (s *RTMEventSource) emit(event models.SlackEvent) {
	s.mu.RLock()
	handler, ok := s.handlers[event.Type]
	s.mu.RUnlock()

	if !ok {
		log.Debug("No handler registered for %s events", event.Type)
		return
	}
	handler(event)
}

func toMessageEvent(event *slack.MessageEvent) models.SlackMessageEvent {
	return models.SlackMessageEvent{
		Channel:  event.Channel,
		User:     event.User,
		Text:     event.Text,
		TS:       event.Timestamp,
		ThreadTS: mo.EmptyableToOption(event.ThreadTimestamp),
		SubType:  event.SubType,
	}
}

func toReactionEvent(event slack.ReactionAddedEvent) models.SlackReactionEvent {
	return models.SlackReactionEvent{
		User:     event.User,
		ItemUser: event.ItemUser,
		Item: models.SlackReactionItem{
			Type:    event.Item.Type,
			Channel: event.Item.Channel,
			TS:      event.Item.Timestamp,
		},
		Reaction: event.Reaction,
	}
}
