package handlers

import (
	"context"
	"fmt"

	"github.com/gammazero/workerpool"

	"github.com/dayflower/todo-star-slack-bot/appctx"
	"github.com/dayflower/todo-star-slack-bot/clients"
	"github.com/dayflower/todo-star-slack-bot/core"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
	"github.com/dayflower/todo-star-slack-bot/middleware"
	"github.com/dayflower/todo-star-slack-bot/models"
)

// TodoStarUseCase is the dispatcher the realtime handlers feed
type TodoStarUseCase interface {
	ProcessMessageEvent(ctx context.Context, event models.SlackMessageEvent) error
	ProcessReactionAdded(ctx context.Context, event models.SlackReactionEvent) error
	ProcessReactionRemoved(ctx context.Context, event models.SlackReactionEvent) error
}

// RTMEventsHandler hands realtime events to the dispatcher. Every event runs as
// an independent job on a worker pool so a slow Slack call never delays the
// next event, and a failing job never affects another one.
type RTMEventsHandler struct {
	source          clients.EventSource
	todoStarUseCase TodoStarUseCase
	alerts          *middleware.ErrorAlertMiddleware
	pool            *workerpool.WorkerPool
}

func NewRTMEventsHandler(
	source clients.EventSource,
	todoStarUseCase TodoStarUseCase,
	alerts *middleware.ErrorAlertMiddleware,
	workerCount int,
) *RTMEventsHandler {
	return &RTMEventsHandler{
		source:          source,
		todoStarUseCase: todoStarUseCase,
		alerts:          alerts,
		pool:            workerpool.New(workerCount),
	}
}

// SetupHandlers registers the message, reaction_added and reaction_removed listeners
func (h *RTMEventsHandler) SetupHandlers() {
	log.Info("🚀 Registering realtime event handlers")

	h.source.On(models.SlackEventTypeMessage, h.handleMessage)
	h.source.On(models.SlackEventTypeReactionAdded, h.handleReactionAdded)
	h.source.On(models.SlackEventTypeReactionRemoved, h.handleReactionRemoved)

	log.Info("✅ All realtime event handlers registered successfully")
}

// Run starts the event source and blocks until ctx is cancelled or the source
// fails. Queued events are drained before returning.
func (h *RTMEventsHandler) Run(ctx context.Context) error {
	defer func() {
		log.Info("📋 Waiting for %d queued events to finish", h.pool.WaitingQueueSize())
		h.pool.StopWait()
		h.alerts.Wait()
	}()

	if err := h.source.Start(ctx); err != nil {
		return fmt.Errorf("realtime event source stopped: %w", err)
	}
	return nil
}

func (h *RTMEventsHandler) handleMessage(event models.SlackEvent) {
	h.submit(event, func(ctx context.Context) error {
		msg, ok := event.Message.Get()
		if !ok {
			return fmt.Errorf("message event without payload")
		}
		return h.todoStarUseCase.ProcessMessageEvent(ctx, msg)
	})
}

func (h *RTMEventsHandler) handleReactionAdded(event models.SlackEvent) {
	h.submit(event, func(ctx context.Context) error {
		reaction, ok := event.Reaction.Get()
		if !ok {
			return fmt.Errorf("reaction_added event without payload")
		}
		return h.todoStarUseCase.ProcessReactionAdded(ctx, reaction)
	})
}

func (h *RTMEventsHandler) handleReactionRemoved(event models.SlackEvent) {
	h.submit(event, func(ctx context.Context) error {
		reaction, ok := event.Reaction.Get()
		if !ok {
			return fmt.Errorf("reaction_removed event without payload")
		}
		return h.todoStarUseCase.ProcessReactionRemoved(ctx, reaction)
	})
}

func (h *RTMEventsHandler) submit(event models.SlackEvent, process func(ctx context.Context) error) {
	eventType := string(event.Type)
	eventID := core.MustNewID("evt")
	metrics.EventsReceivedTotal.WithLabelValues(eventType).Inc()
	log.Debug("📨 [%s] Received %s event", eventID, eventType)

	h.pool.Submit(h.alerts.WrapEventHandler(eventType, eventID, func() error {
		return process(appctx.SetEventID(context.Background(), eventID))
	}))
}
