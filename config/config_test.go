package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflower/todo-star-slack-bot/core"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := FromEnv(envLookup(map[string]string{"SLACK_API_TOKEN": "xoxb-test"}))
		require.NoError(t, err)

		assert.Equal(t, "xoxb-test", cfg.SlackConfig.APIToken)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, 4, cfg.WorkerCount)
		assert.False(t, cfg.SlackConfig.IsAlertingConfigured())
		assert.Equal(t, "memo", cfg.Vocabulary.TodoReaction())
		assert.Equal(t, []string{"white_check_mark"}, cfg.Vocabulary.StartReactions())
		assert.Equal(t, []string{"heavy_check_mark"}, cfg.Vocabulary.DoneReactions())
	})

	t.Run("Overrides", func(t *testing.T) {
		cfg, err := FromEnv(envLookup(map[string]string{
			"SLACK_API_TOKEN":         "xoxb-test",
			"TODO_REACTIONS":          "pushpin,memo",
			"START_REACTIONS":         "runner",
			"DONE_REACTIONS":          "tada, heavy_check_mark",
			"DONE_REACTION":           "heavy_check_mark",
			"WORKER_COUNT":            "8",
			"LOG_LEVEL":               "debug",
			"PORT":                    "",
			"ENVIRONMENT":             "prod",
			"SLACK_ALERT_WEBHOOK_URL": "https://hooks.slack.com/services/T/B/X",
		}))
		require.NoError(t, err)

		assert.Equal(t, []string{"pushpin", "memo"}, cfg.Vocabulary.TodoReactions())
		assert.Equal(t, "pushpin", cfg.Vocabulary.TodoReaction())
		assert.Equal(t, "runner", cfg.Vocabulary.StartReaction())
		assert.Equal(t, []string{"tada", "heavy_check_mark"}, cfg.Vocabulary.DoneReactions())
		assert.Equal(t, "heavy_check_mark", cfg.Vocabulary.DoneReaction())
		assert.Equal(t, 8, cfg.WorkerCount)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, "", cfg.Port)
		assert.Equal(t, "prod", cfg.Environment)
		assert.True(t, cfg.SlackConfig.IsAlertingConfigured())
	})

	t.Run("Error_MissingToken", func(t *testing.T) {
		_, err := FromEnv(envLookup(map[string]string{}))
		assert.ErrorIs(t, err, core.ErrMissingToken)

		_, err = FromEnv(envLookup(map[string]string{"SLACK_API_TOKEN": ""}))
		assert.ErrorIs(t, err, core.ErrMissingToken)
	})

	t.Run("Error_EmptyReactionList", func(t *testing.T) {
		_, err := FromEnv(envLookup(map[string]string{
			"SLACK_API_TOKEN": "xoxb-test",
			"TODO_REACTIONS":  " , ",
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrEmptyVocabulary)
	})

	t.Run("Error_InvalidWorkerCount", func(t *testing.T) {
		for _, value := range []string{"zero", "0", "-2"} {
			_, err := FromEnv(envLookup(map[string]string{
				"SLACK_API_TOKEN": "xoxb-test",
				"WORKER_COUNT":    value,
			}))
			assert.Error(t, err, "WORKER_COUNT=%s", value)
		}
	})

	t.Run("Error_InvalidLogLevel", func(t *testing.T) {
		_, err := FromEnv(envLookup(map[string]string{
			"SLACK_API_TOKEN": "xoxb-test",
			"LOG_LEVEL":       "loud",
		}))
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SLACK_API_TOKEN=xoxb-from-file\nSTART_REACTIONS=runner\n"), 0o600))

	t.Setenv("SLACK_API_TOKEN", "")
	t.Setenv("START_REACTIONS", "")
	require.NoError(t, os.Unsetenv("SLACK_API_TOKEN"))
	require.NoError(t, os.Unsetenv("START_REACTIONS"))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "xoxb-from-file", cfg.SlackConfig.APIToken)
	assert.Equal(t, "runner", cfg.Vocabulary.StartReaction())
}
