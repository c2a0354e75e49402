package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"vocabot/internal/config"
	"vocabot/internal/database"
	"vocabot/internal/dispatcher"
	"vocabot/internal/handler"
	"vocabot/internal/notifier"
	"vocabot/internal/repository/sqldb"
	"vocabot/internal/service"
	"vocabot/internal/state"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting vocabot")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database with retries
	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connection established", zap.String("driver", cfg.Database.Driver))

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	store := sqldb.NewStore(db, cfg.Database.Timeout)
	st := state.New()

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Telegram update failed", fields...)
		},
	})
	if err != nil {
		logger.Error("Failed to create bot", zap.Error(err))
		return err
	}

	logger.Info("Telegram bot initialized")

	quizNotifier := notifier.New(notifier.NewTelegramSender(bot), st.Quizzes, cfg.NotifyRate, logger)

	// Initialize services
	userService := service.NewUserService(store, st, logger)
	wordService := service.NewWordService(store, logger)
	scheduleService := service.NewScheduleService(store, logger)
	quizService := service.NewQuizService(store, st.Quizzes, quizNotifier, logger)
	statsService := service.NewStatsService(store, st, logger)

	loaded, err := userService.LoadRegistered(ctx)
	if err != nil {
		logger.Error("Failed to load registered users", zap.Error(err))
		return err
	}
	logger.Info("Registered users loaded", zap.Int("count", loaded))

	// Initialize handler
	h := handler.NewHandler(ctx, bot, userService, wordService, scheduleService, quizService, st, logger)
	h.RegisterHandlers()
	if err := h.PublishCommands(); err != nil {
		logger.Warn("Failed to publish bot commands", zap.Error(err))
	}

	logger.Info("Handlers registered")

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	stats, err := startStatsJob(ctx, cfg, statsService, loc, logger)
	if err != nil {
		logger.Error("Failed to schedule stats job", zap.Error(err))
		return err
	}
	defer stats.Stop()

	d := dispatcher.New(store, quizNotifier, cfg.Dispatch.Interval, logger, dispatcher.WithLocation(loc))
	go d.Run(ctx)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully")
	return nil
}

// startStatsJob logs store totals on the STATS_CRON schedule
func startStatsJob(ctx context.Context, cfg *config.Config, stats *service.StatsService, loc *time.Location, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc(cfg.StatsCron, func() {
		logger.Info("Running scheduled stats report")
		if _, err := stats.Report(ctx); err != nil {
			logger.Error("Failed to run scheduled stats report", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_CRON %q: %w", cfg.StatsCron, err)
	}

	c.Start()
	return c, nil
}
