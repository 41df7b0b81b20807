package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/api/handler"
	"github.com/vite-gourmand/catering-service/internal/config"
	"github.com/vite-gourmand/catering-service/internal/db"
	"github.com/vite-gourmand/catering-service/internal/db/repository"
	"github.com/vite-gourmand/catering-service/internal/mail"
	"github.com/vite-gourmand/catering-service/internal/router"
	"github.com/vite-gourmand/catering-service/internal/service"
	"github.com/vite-gourmand/catering-service/internal/session"
	"github.com/vite-gourmand/catering-service/internal/stats"
	"github.com/vite-gourmand/catering-service/internal/websockets"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	database, err := db.NewPostgres(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := database.Migrate(cfg.Database); err != nil {
		logrus.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	sessions := session.NewStore(redisClient, cfg.Session.Cookie,
		time.Duration(cfg.Session.TTLHours)*time.Hour)

	// Best-effort sinks: a missing relay or analytics store degrades to a
	// no-op, it never blocks startup
	var mailer mail.Mailer = mail.NoopMailer{}
	if cfg.Mail.Host != "" && cfg.Mail.User != "" {
		mailer = mail.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User,
			cfg.Mail.Password, cfg.Mail.From)
	}

	var recorder stats.Recorder = stats.NoopRecorder{}
	analyticsEnabled := false
	if cfg.Analytics.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRecorder, err := stats.Connect(ctx, cfg.Analytics.MongoURI, cfg.Analytics.Database)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("analytics store unavailable, stats disabled")
		} else {
			recorder = mongoRecorder
			analyticsEnabled = true
		}
	}

	// Initialize WebSocket hub
	hub := websockets.NewHub()
	go hub.Run()

	// Wire repositories and services
	repos := repository.NewRepositories(database)

	authService := service.NewAuthService(repos.User, mailer, recorder,
		cfg.Session.Secret, "http://"+cfg.Server.Address)
	menuService := service.NewMenuService(repos.Menu)
	orderService := service.NewOrderService(repos.Menu, repos.Order, recorder, hub)
	reviewService := service.NewReviewService(repos.Review)
	contactService := service.NewContactService(repos.Contact, mailer, cfg.Mail.Admin)
	statsService := service.NewStatsService(service.StatCounters{
		Users:   repos.User,
		Orders:  repos.Order,
		Menus:   repos.Menu,
		Reviews: repos.Review,
	}, recorder, analyticsEnabled)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, sessions),
		Menu:      handler.NewMenuHandler(menuService),
		Order:     handler.NewOrderHandler(orderService),
		Review:    handler.NewReviewHandler(reviewService),
		Contact:   handler.NewContactHandler(contactService),
		Admin:     handler.NewAdminHandler(authService, statsService),
		Health:    handler.NewHealthHandler(database),
		WebSocket: handler.NewWebSocketHandler(hub),
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router.New(handlers, sessions),
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}
