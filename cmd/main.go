package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/andescapital/gw-fund-web/internal/apiclient"
	"github.com/andescapital/gw-fund-web/internal/facades"
	"github.com/andescapital/gw-fund-web/internal/handlers"
	"github.com/andescapital/gw-fund-web/internal/health"
	"github.com/andescapital/gw-fund-web/internal/logger"
	"github.com/andescapital/gw-fund-web/internal/middlewares"
	"github.com/andescapital/gw-fund-web/internal/repositories"
	"github.com/andescapital/gw-fund-web/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-fund-web API
// @version 1.0.0
// @description Web client gateway for the fund subscription platform
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, appName, appVersion,
		apiBaseURL, devUserID, devUserBalance,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		probeSpec, corsOrigins,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, appName, appVersion,
		apiBaseURL, devUserID, devUserBalance,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		probeSpec, corsOrigins,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, backend, Redis, Kafka, and probe configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, appName, appVersion string,
	apiBaseURL, devUserID string, devUserBalance decimal.Decimal,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	probeSpec, corsOrigins string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	appName = getEnv("APP_NAME", "Plataforma de Fondos")
	appVersion = getEnv("APP_VERSION", "1.0.0")

	// Fund backend config
	apiBaseURL = getEnv("FUND_API_URL", "http://localhost:8001")

	// Development session config
	devUserID = getEnv("DEV_USER_ID", "user-123")
	if devUserBalance, err = decimal.NewFromString(getEnv("DEV_USER_BALANCE", "1000000")); err != nil {
		return
	}

	// Redis config (UI preferences store)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, optional; events are skipped when the address is empty
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "fund-subscription-events")

	// Backend probe config
	probeSpec = getEnv("HEALTH_PROBE_SPEC", "@every 30s")

	// CORS config
	corsOrigins = getEnv("CORS_ALLOWED_ORIGINS", "*")

	return
}

// run initializes the logger, Redis, Kafka, the backend client, and the HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, appName, appVersion string,
	apiBaseURL, devUserID string, devUserBalance decimal.Decimal,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	probeSpec, corsOrigins string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis (UI preferences store)
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for subscription action events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", kafkaTopic)
	} else {
		logger.Log.Warn("Kafka address not configured, subscription events disabled")
	}

	// Backend transport and resource accessors
	api := apiclient.New(apiBaseURL, &http.Client{})
	fundsFacade := facades.NewFundsFacade(api)
	transactionsFacade := facades.NewTransactionsFacade(api)
	settingsFacade := facades.NewSettingsFacade(api)
	healthFacade := facades.NewHealthFacade(api)

	// View-state services
	notifications := services.NewNotificationService()
	session := services.NewSessionService(settingsFacade, devUserID, devUserBalance)
	funds := services.NewFundsService(fundsFacade, notifications, kafkaWriter, devUserID)
	transactions := services.NewTransactionsService(transactionsFacade, devUserID)

	// UI preferences store
	preferences := repositories.NewPreferencesRepository(rdb)

	// Backend health prober
	prober := health.NewProber(healthFacade, probeSpec)
	if err := prober.Start(); err != nil {
		logger.Log.Fatal("failed to start health prober:", err)
	}
	defer prober.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.RecoveryMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(corsOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Screens; root and unknown paths land on the funds catalog
	redirectToFunds := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/funds", http.StatusFound)
	}
	r.Get("/", redirectToFunds)
	r.NotFound(redirectToFunds)

	r.Get("/funds", handlers.NewFundsScreenHandler(funds))
	r.Get("/my-funds", handlers.NewMyFundsScreenHandler(funds))
	r.Get("/transactions", handlers.NewTransactionsScreenHandler(transactions))
	r.Get("/settings", handlers.NewSettingsScreenHandler(session, settingsFacade))

	// Actions
	r.Post("/funds/{fundID}/subscribe", handlers.NewSubscribeHandler(funds))
	r.Post("/funds/{fundID}/unsubscribe", handlers.NewUnsubscribeHandler(funds))
	r.Put("/transactions/filters", handlers.NewUpdateFiltersHandler(transactions))
	r.Delete("/transactions/filters", handlers.NewClearFiltersHandler(transactions))
	r.Post("/settings/notifications", handlers.NewUpdateNotificationTypeHandler(session))

	// Toasts and preferences
	r.Get("/notifications", handlers.NewNotificationsHandler(notifications))
	r.Delete("/notifications/{id}", handlers.NewDismissNotificationHandler(notifications))
	r.Delete("/notifications", handlers.NewClearNotificationsHandler(notifications))
	r.Get("/preferences", handlers.NewGetPreferencesHandler(preferences, session))
	r.Put("/preferences", handlers.NewUpdatePreferencesHandler(preferences, session))

	// Health
	r.Get("/health", handlers.NewHealthHandler(prober, appName, appVersion))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
