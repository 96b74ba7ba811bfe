package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-rewards-api/internal/cache"
	"card-rewards-api/internal/config"
	"card-rewards-api/internal/database"
	"card-rewards-api/internal/handlers"
	"card-rewards-api/internal/middleware"
	"card-rewards-api/internal/repositories"
	"card-rewards-api/internal/rewards"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(cfg.Tracing, cfg.Server.Environment)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	store := openCache(ctx, cfg.Cache, logger)
	defer store.Close()

	engine := rewards.NewEngine(rewards.Options{
		BonusMultiplier:     cfg.Rewards.BonusMultiplier,
		MonthsPerYear:       cfg.Rewards.MonthsPerYear,
		MinWindowMonths:     cfg.Rewards.MinWindowMonths,
		PointValue:          cfg.Rewards.PointValue,
		ExpiryThresholdDays: cfg.Rewards.ExpiryThresholdDays,
		HighRiskDays:        cfg.Rewards.HighRiskDays,
		MinOccurrences:      cfg.Rewards.MinOccurrences,
	})

	rewardsLogger := services.NewRewardsLogger(logger)
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		FailureThreshold: cfg.Rewards.UpstreamFailureLimit,
		Cooldown:         cfg.Rewards.UpstreamResetTimeout,
		ProbeSuccesses:   1,
	})

	cardRepo := repositories.NewCardRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	categoryService := services.NewCategoryService()
	tokenService := services.NewTokenService(&cfg.JWT)
	cardService := services.NewCardService(cardRepo, breaker, rewardsLogger, metrics)
	transactionService := services.NewTransactionService(
		cardRepo, transactionRepo, categoryService, engine,
		store, cfg.Cache.IdempotencyTTL,
		breaker, rewardsLogger, metrics,
	)
	insightsService := services.NewInsightsService(
		cardRepo, transactionRepo, engine, cfg.Rewards.RecurringBillLimit,
		breaker, rewardsLogger, metrics,
	)
	offerService := services.NewOfferService(
		rewards.DefaultOfferCatalog(), cardRepo, transactionRepo, cfg.Rewards.OfferLimit,
		breaker, rewardsLogger, metrics,
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, prometheus.DefaultRegisterer)
	e.Validator = handlers.NewValidator()

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go rateLimiter.Run(ctx)

	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.Tracing())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderXRequestID,
			handlers.IdempotencyKeyHeader,
		},
		ExposeHeaders: []string{echo.HeaderXRequestID, handlers.IdempotentReplayHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Security.MaxBodySize))
	e.Use(rateLimiter.Middleware())

	registerRoutes(e, cfg, routeHandlers{
		health: handlers.NewHealthCheckHandler(map[string]handlers.Pinger{
			"database": db,
			"cache":    store,
		}),
		cards:        handlers.NewCardHandler(cardService),
		transactions: handlers.NewTransactionHandler(transactionService),
		insights:     handlers.NewInsightsHandler(insightsService, cfg.Rewards.ExpiryThresholdDays),
		offers:       handlers.NewOfferHandler(offerService),
		categories:   handlers.NewCategoryHandler(categoryService),
		dev:          handlers.NewDevHandler(tokenService, services.NewDemoDataService(cardService, transactionService)),
	}, middleware.RequireAuth(tokenService))

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openCache connects to redis when configured and falls back to process memory
func openCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, using in-memory idempotency cache")
		return cache.NewInMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory idempotency cache", "addr", cfg.RedisAddr, "error", err)
		return cache.NewInMemoryCache()
	}
	return redisCache
}

type routeHandlers struct {
	health       *handlers.HealthCheckHandler
	cards        *handlers.CardHandler
	transactions *handlers.TransactionHandler
	insights     *handlers.InsightsHandler
	offers       *handlers.OfferHandler
	categories   *handlers.CategoryHandler
	dev          *handlers.DevHandler
}

func registerRoutes(e *echo.Echo, cfg *config.Config, h routeHandlers, requireAuth echo.MiddlewareFunc) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/offers", h.offers.ListOffers)
	api.GET("/categories", h.categories.ListCategories)

	authed := api.Group("", requireAuth)

	if cfg.IsDevelopment() {
		api.POST("/dev/token", h.dev.IssueToken)
		authed.POST("/dev/seed", h.dev.SeedTransactions)
	}

	authed.POST("/cards", h.cards.CreateCard)
	authed.GET("/cards", h.cards.ListCards)
	authed.GET("/cards/:id", h.cards.GetCard)
	authed.PUT("/cards/:id", h.cards.UpdateCard)
	authed.DELETE("/cards/:id", h.cards.DeleteCard)

	authed.POST("/transactions", h.transactions.CreateTransaction)
	authed.GET("/transactions", h.transactions.ListTransactions)

	authed.POST("/recommendations", h.insights.Recommend)
	authed.GET("/analytics/spending-patterns", h.insights.SpendingPatterns)
	authed.GET("/optimizer/recurring-bills", h.insights.RecurringBills)
	authed.POST("/optimizer/optimize", h.insights.Optimize)
	authed.GET("/rewards/expiry-alerts", h.insights.ExpiryAlerts)
	authed.GET("/rewards/all-expiry-dates", h.insights.ExpirySchedule)
	authed.GET("/rewards/redemption-suggestions", h.insights.RedemptionSuggestions)

	authed.GET("/offers/recommended", h.offers.RecommendedOffers)
	authed.GET("/categories/suggest", h.categories.SuggestCategory)
}
