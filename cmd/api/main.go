package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"natural-event-scheduler/config"
	"natural-event-scheduler/internal/event"
	tgDelivery "natural-event-scheduler/internal/event/delivery/telegram"
	"natural-event-scheduler/internal/event/repository/sqlite"
	eventUC "natural-event-scheduler/internal/event/usecase"
	"natural-event-scheduler/internal/httpserver"
	"natural-event-scheduler/internal/middleware"
	"natural-event-scheduler/pkg/gcalendar"
	"natural-event-scheduler/pkg/gemini"
	"natural-event-scheduler/pkg/isodate"
	"natural-event-scheduler/pkg/log"
	"natural-event-scheduler/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Natural Event Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Collaborators
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	codec, err := isodate.NewCodec(cfg.Event.Timezone, time.Duration(cfg.Event.DefaultDurationMinutes)*time.Minute)
	if err != nil {
		logger.Errorf(ctx, "Invalid event timezone: %v", err)
		return
	}

	// Google Calendar client (optional; previews work without it)
	var calendarStore event.CalendarStore = gcalendar.Disabled{}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarStore = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// Draft recovery store
	draftStore, err := sqlite.Open(cfg.DraftStore.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open draft store: %v", err)
		return
	}
	defer draftStore.Close()

	// 4. Event workflow, one instance per chat
	ucConfig := eventUC.Config{
		Timezone:       cfg.Event.Timezone,
		ParseTimeout:   time.Duration(cfg.Event.ParseTimeoutSeconds) * time.Second,
		SaveTimeout:    time.Duration(cfg.Event.SaveTimeoutSeconds) * time.Second,
		UndoWindow:     time.Duration(cfg.Event.UndoWindowSeconds) * time.Second,
		MaxInputLength: cfg.Event.MaxInputLength,
	}
	newWorkflow := func(chatID int64) event.UseCase {
		drafts := draftStore.WithKey(fmt.Sprintf("chat:%d", chatID))
		return eventUC.New(logger, geminiClient, calendarStore, drafts, codec, ucConfig)
	}

	// 5. Telegram delivery
	telegramHandler, err := tgDelivery.New(logger, telegramBot, newWorkflow)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Telegram handler: %v", err)
		return
	}

	if cfg.Telegram.WebhookURL != "" {
		if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL + "/webhook/telegram"); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "✅ Telegram webhook registered at %s/webhook/telegram", cfg.Telegram.WebhookURL)
		}
	}

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.Webhook.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
