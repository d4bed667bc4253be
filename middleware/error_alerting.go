package middleware

import (
	"context"
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/slack-go/slack"

	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/metrics"
)

const alertTimeout = 10 * time.Second

type SlackAlertConfig struct {
	WebhookURL  string
	Environment string
	AppName     string
}

// webhookPoster matches slack.PostWebhookContext
type webhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

// ErrorAlertMiddleware contains failures of individual event handlers: errors and
// panics are logged, counted and reported to the alert webhook, never propagated.
type ErrorAlertMiddleware struct {
	config        SlackAlertConfig
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.Mutex
	alertCooldown time.Duration
	post          webhookPoster
	clock         clockwork.Clock
	wg            sync.WaitGroup
}

func NewErrorAlertMiddleware(config SlackAlertConfig) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute, // Don't alert same error more than once per 10min
		post:          slack.PostWebhookContext,
		clock:         clockwork.NewRealClock(),
	}
}

// WrapEventHandler returns a func that runs handler and swallows its failure.
// eventType labels metrics; eventID identifies the event in logs.
func (m *ErrorAlertMiddleware) WrapEventHandler(eventType, eventID string, handler func() error) func() {
	return func() {
		started := m.clock.Now()
		defer func() {
			metrics.EventHandlingDuration.WithLabelValues(eventType).Observe(m.clock.Since(started).Seconds())
		}()
		defer m.recoverAndAlert(eventType, eventID)

		if err := handler(); err != nil {
			log.Error("❌ [%s] Failed to handle %s event: %v", eventID, eventType, err)
			metrics.EventFailuresTotal.WithLabelValues(eventType, "error").Inc()
			m.alertOnError(err, fmt.Sprintf("%s event %s", eventType, eventID))
		}
	}
}

// Wait blocks until all in-flight alerts have been delivered
func (m *ErrorAlertMiddleware) Wait() {
	m.wg.Wait()
}

func (m *ErrorAlertMiddleware) alertOnError(err error, alertContext string) {
	errorMsg := fmt.Sprintf("%s: %v", alertContext, err)

	// event IDs differ per event, so deduplicate on the error alone
	hash := fmt.Sprintf("%x", md5.Sum([]byte(err.Error())))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pruneAlertedErrors()
	if _, exists := m.alertedErrors[hash]; exists {
		return
	}

	m.alertedErrors[hash] = m.clock.Now()
	m.sendAsync(errorMsg, alertContext)
}

// pruneAlertedErrors forgets errors whose cooldown has passed. Callers hold m.mutex.
func (m *ErrorAlertMiddleware) pruneAlertedErrors() {
	for hash, lastAlert := range m.alertedErrors {
		if m.clock.Since(lastAlert) >= m.alertCooldown {
			delete(m.alertedErrors, hash)
		}
	}
}

func (m *ErrorAlertMiddleware) recoverAndAlert(eventType, eventID string) {
	if r := recover(); r != nil {
		alertContext := fmt.Sprintf("%s event %s", eventType, eventID)
		errorMsg := fmt.Sprintf("%s: PANIC - %v", alertContext, r)
		log.Error("❌ %s", errorMsg)
		metrics.EventFailuresTotal.WithLabelValues(eventType, "panic").Inc()
		m.sendAsync(errorMsg, alertContext+" (PANIC)")
	}
}

func (m *ErrorAlertMiddleware) sendAsync(errorMsg, alertContext string) {
	if m.config.WebhookURL == "" {
		return // Slack alerts disabled
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.sendSlackAlert(errorMsg, alertContext)
	}()
}

func (m *ErrorAlertMiddleware) sendSlackAlert(errorMsg, alertContext string) {
	envPrefix := ""
	if m.config.Environment == "dev" {
		envPrefix = "[dev] "
	}

	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("🚨 %s[%s] Error Alert", envPrefix, m.config.AppName),
		Blocks: &slack.Blocks{BlockSet: []slack.Block{
			slack.NewHeaderBlock(
				slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("🚨 %s[%s] Error Alert", envPrefix, m.config.AppName), true, false),
			),
			slack.NewSectionBlock(nil, []*slack.TextBlockObject{
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Service:* %s", m.config.AppName), false, false),
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Environment:* %s", m.config.Environment), false, false),
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Context:* %s", alertContext), false, false),
			}, nil),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Error:*\n```%s```", errorMsg), false, false),
				nil, nil,
			),
		}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
	defer cancel()

	if err := m.post(ctx, m.config.WebhookURL, msg); err != nil {
		log.Error("❌ Failed to send Slack alert: %v", err)
	}
}
