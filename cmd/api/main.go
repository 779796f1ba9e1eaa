// Package main is the entry point for the Pennywise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pennywise/backend/config"
	"github.com/pennywise/backend/internal/application/usecase/auth"
	"github.com/pennywise/backend/internal/application/usecase/budget"
	"github.com/pennywise/backend/internal/application/usecase/dashboard"
	"github.com/pennywise/backend/internal/application/usecase/extraction"
	"github.com/pennywise/backend/internal/application/usecase/transaction"
	"github.com/pennywise/backend/internal/application/usecase/user"
	"github.com/pennywise/backend/internal/infra/db"
	"github.com/pennywise/backend/internal/infra/server/router"
	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/email"
	"github.com/pennywise/backend/internal/integration/email/templates"
	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
	"github.com/pennywise/backend/internal/integration/persistence"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Pennywise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	healthController := controller.NewHealthController(database.HealthCheck)

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, redisClient)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	extractionService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	emailService := email.NewService(emailQueueRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// User use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)

	// Budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	saveBudgetsUseCase := budget.NewSaveBudgetsUseCase(budgetRepo)

	// Dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, budgetRepo)

	// Extraction use cases
	categorizeUseCase := extraction.NewCategorizeUseCase(extractionService)
	parseReceiptUseCase := extraction.NewParseReceiptUseCase(extractionService)
	parseEmailUseCase := extraction.NewParseEmailUseCase(extractionService)
	scanReceiptUseCase := extraction.NewScanReceiptUseCase(parseReceiptUseCase, categorizeUseCase)

	// Controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	userController := controller.NewUserController(getProfileUseCase, updateProfileUseCase)
	categoryController := controller.NewCategoryController()
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)
	budgetController := controller.NewBudgetController(listBudgetsUseCase, saveBudgetsUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	extractionController := controller.NewExtractionController(
		categorizeUseCase,
		parseReceiptUseCase,
		parseEmailUseCase,
		scanReceiptUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates", "error", err)
			os.Exit(1)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
		slog.Info("Email worker started",
			"poll_interval", cfg.Email.PollInterval,
			"batch_size", cfg.Email.BatchSize,
		)
	} else {
		slog.Warn("Email worker disabled, queued emails will not be sent")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		extractionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
