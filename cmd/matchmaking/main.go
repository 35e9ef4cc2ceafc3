package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/config"
	"github.com/musafir-app/musafir/internal/pkg/database"
	"github.com/musafir-app/musafir/internal/pkg/health"
	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/middleware"
	nsqpkg "github.com/musafir-app/musafir/internal/pkg/nsq"
	"github.com/musafir-app/musafir/internal/pkg/server"
	"github.com/musafir-app/musafir/services/match/gateway"
	"github.com/musafir-app/musafir/services/match/handler"
	"github.com/musafir-app/musafir/services/match/repository"
	"github.com/musafir-app/musafir/services/match/usecase"
)

const serviceName = "musafir-matchmaking"

func main() {
	cfg := config.InitConfig(os.Getenv("ENV_FILE"))

	appLogger, err := logger.NewZapLogger(serviceName, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()
	logger.SetGlobalLogger(appLogger)

	shutdown := server.NewShutdownManager(appLogger)

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	shutdown.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	shutdown.Register("postgres", func(ctx context.Context) error {
		return pgClient.Close()
	})

	var producer *nsqpkg.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(cfg.NSQ.Address, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to nsq", logger.Err(err))
		}
		shutdown.Register("nsq", func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}

	var geocoder *gateway.Geocoder
	if cfg.Geocode.Enabled {
		geocoder = gateway.NewGeocoder(cfg.Geocode, appLogger)
	}

	intentRepo := repository.NewIntentRepo(cfg, redisClient)
	groupRepo := repository.NewGroupRepo(pgClient.GetDB())
	matchGW := gateway.NewMatchGW(cfg, producer, geocoder)
	matchUC := usecase.NewMatchUC(cfg, intentRepo, groupRepo, matchGW)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestContextMiddleware(serviceName))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestLoggerMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version)
	handler.NewHandler(cfg, matchUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdown.Shutdown(ctx)
}
