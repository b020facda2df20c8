package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/config"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/handler"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/middleware"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/repository/postgres"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/service"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Birthday Reminder Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to database with retries
	db, err := connectDatabase(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	birthdayRepo := postgres.NewBirthdayRepo(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	birthdayService := service.NewBirthdayService(birthdayRepo)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Auth(userService, logger))

	// Initialize handlers
	sessions := session.NewMemoryStore()
	h := handler.NewHandler(bot, userService, birthdayService, sessions, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Schedule birthday notifications: the notifier checks every minute
	// which users are due at the current HH:MM
	notifier := service.NewNotifierService(userRepo, birthdayRepo, &telegramSender{bot: bot}, logger)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("* * * * *", func() {
		if err := notifier.Run(time.Now()); err != nil {
			logger.Error("Notification run failed", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("Failed to schedule notifications", zap.Error(err))
	}
	scheduler.Start()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	<-scheduler.Stop().Done()

	logger.Info("Bot stopped gracefully")
}

// telegramSender delivers notification messages through the bot API
type telegramSender struct {
	bot *tele.Bot
}

func (s *telegramSender) SendMessage(telegramID int64, text string) error {
	_, err := s.bot.Send(&tele.User{ID: telegramID}, text)
	return err
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, sourceURL string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
