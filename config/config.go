package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dayflower/todo-star-slack-bot/core"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/models"
)

const (
	defaultWorkerCount = 4
	defaultPort        = "8080"
)

type SlackConfig struct {
	// APIToken needs the reactions:write and stars:write scopes, plus
	// channels:history, groups:history, im:history and mpim:history for the
	// thread-owner lookup through conversations.replies.
	APIToken        string
	AlertWebhookURL string
}

// IsAlertingConfigured returns true if failed events should be reported to a webhook
func (c SlackConfig) IsAlertingConfigured() bool {
	return c.AlertWebhookURL != ""
}

type AppConfig struct {
	Port        string // Optional with default "8080", empty disables the HTTP listener
	Environment string
	LogLevel    slog.Level
	WorkerCount int

	SlackConfig SlackConfig
	Vocabulary  *models.Vocabulary
}

// LoadConfig reads the .env file at envFile (if any) and then the process environment.
func LoadConfig(envFile string) (*AppConfig, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Warn("⚠️ Could not load %s file, continuing with system env vars", envFile)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from lookup, which has the os.LookupEnv signature.
func FromEnv(lookup func(string) (string, bool)) (*AppConfig, error) {
	token, ok := lookup("SLACK_API_TOKEN")
	if !ok || token == "" {
		return nil, core.ErrMissingToken
	}

	logLevel, err := log.ParseLevel(getEnvWithDefault(lookup, "LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	workerCount, err := strconv.Atoi(getEnvWithDefault(lookup, "WORKER_COUNT", strconv.Itoa(defaultWorkerCount)))
	if err != nil || workerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be a positive integer")
	}

	vocabulary, err := models.NewVocabulary(models.VocabularyOptions{
		TodoReactions:  getReactionList(lookup, "TODO_REACTIONS"),
		StartReactions: getReactionList(lookup, "START_REACTIONS"),
		DoneReactions:  getReactionList(lookup, "DONE_REACTIONS"),
		TodoReaction:   getEnvWithDefault(lookup, "TODO_REACTION", ""),
		StartReaction:  getEnvWithDefault(lookup, "START_REACTION", ""),
		DoneReaction:   getEnvWithDefault(lookup, "DONE_REACTION", ""),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reaction configuration: %w", err)
	}

	port, hasPort := lookup("PORT")
	if !hasPort {
		port = defaultPort
	}

	config := &AppConfig{
		Port:        port,
		Environment: getEnvWithDefault(lookup, "ENVIRONMENT", "dev"),
		LogLevel:    logLevel,
		WorkerCount: workerCount,
		SlackConfig: SlackConfig{
			APIToken:        token,
			AlertWebhookURL: getEnvWithDefault(lookup, "SLACK_ALERT_WEBHOOK_URL", ""),
		},
		Vocabulary: vocabulary,
	}

	if config.SlackConfig.IsAlertingConfigured() {
		log.Info("✅ Slack error alerting configured")
	} else {
		log.Info("⚠️ Slack error alerting not configured - failed events will only be logged")
	}

	return config, nil
}

// getReactionList returns nil when key is unset so the defaults apply,
// and a non-nil (possibly empty) list when it is set.
func getReactionList(lookup func(string) (string, bool), key string) []string {
	raw, ok := lookup(key)
	if !ok {
		return nil
	}
	reactions := models.ParseReactionList(raw)
	if reactions == nil {
		return []string{}
	}
	return reactions
}

func getEnvWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}
