package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/partycurrency/backend/internal/pkg/config"
	"github.com/partycurrency/backend/internal/pkg/database"
	"github.com/partycurrency/backend/internal/pkg/health"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/middleware"
	natspkg "github.com/partycurrency/backend/internal/pkg/nats"
	nrpkg "github.com/partycurrency/backend/internal/pkg/newrelic"
	"github.com/partycurrency/backend/internal/pkg/server"
	"github.com/partycurrency/backend/services/payments/gateway"
	"github.com/partycurrency/backend/services/payments/handler"
	httpHandler "github.com/partycurrency/backend/services/payments/handler/http"
	"github.com/partycurrency/backend/services/payments/repository"
	"github.com/partycurrency/backend/services/payments/usecase"
	"github.com/partycurrency/backend/services/payments/worker"
)

func main() {
	appName := "payments-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/payments.env"
	}
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB())
	paymentGW := gateway.NewPaymentGW(configs.Gateway, redisClient, natsClient)
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, paymentGW)

	transactionHandler := httpHandler.NewTransactionHandler(paymentUC)
	callbackHandler := httpHandler.NewCallbackHandler(paymentUC, configs.Gateway.FrontendURL)
	accountHandler := httpHandler.NewAccountHandler(paymentUC)
	eventHandler := httpHandler.NewEventHandler(paymentUC)

	h := handler.NewHandler(transactionHandler, callbackHandler, accountHandler, eventHandler, configs, redisClient)

	sweepWorker := worker.NewSweepWorker(paymentUC, configs.Sweep)
	if err := sweepWorker.Start(); err != nil {
		zapLogger.Fatal("Failed to start sweep worker", logger.Err(err))
	}
	defer sweepWorker.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
