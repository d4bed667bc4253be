package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"

	slackclient "github.com/dayflower/todo-star-slack-bot/clients/slack"
	"github.com/dayflower/todo-star-slack-bot/config"
	"github.com/dayflower/todo-star-slack-bot/core/log"
	"github.com/dayflower/todo-star-slack-bot/handlers"
	"github.com/dayflower/todo-star-slack-bot/middleware"
	"github.com/dayflower/todo-star-slack-bot/usecases/todostar"
)

type Options struct {
	EnvFile string `long:"env-file" default:".env" description:"Path to a .env file loaded before reading the environment"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging regardless of LOG_LEVEL"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Error("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFile)
	if err != nil {
		return err
	}

	log.SetLevel(cfg.LogLevel)
	if opts.Verbose {
		log.SetLevel(slog.LevelDebug)
	}
	log.Info("📋 Starting todo-star with vocabulary %s", cfg.Vocabulary)

	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.APIToken)

	authCtx, cancelAuth := context.WithTimeout(context.Background(), 10*time.Second)
	authResp, err := slackClient.AuthTest(authCtx)
	cancelAuth()
	if err != nil {
		return fmt.Errorf("failed to authenticate with Slack: %w", err)
	}
	log.Info("🆔 Authenticated as %s (%s) in team %s", authResp.User, authResp.UserID, authResp.Team)

	source := slackclient.NewRTMEventSource(slackClient, authResp.UserID)
	todoStarUseCase := todostar.NewTodoStarUseCase(slackClient, source, cfg.Vocabulary)

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "todo-star",
	})

	eventsHandler := handlers.NewRTMEventsHandler(source, todoStarUseCase, alertMiddleware, cfg.WorkerCount)
	eventsHandler.SetupHandlers()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.Port != "" {
		router := mux.NewRouter()
		handlers.NewHealthHandler(source).SetupEndpoints(router)

		server = &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 30 * time.Second,
		}
		go func() {
			log.Info("✅ Listening on http://localhost%s", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("❌ Server error: %v", err)
			}
		}()
	}

	runErr := eventsHandler.Run(ctx)
	log.Info("🛑 Shutdown signal received, cleaning up...")

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("❌ Server shutdown error: %v", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	log.Info("📋 Completed successfully - todo-star stopped")
	return nil
}
