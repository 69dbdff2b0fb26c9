package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/estatehub/viewings-api/docs"
	"github.com/estatehub/viewings-api/internal/api"
	"github.com/estatehub/viewings-api/internal/api/middleware"
	"github.com/estatehub/viewings-api/internal/core/service"
	"github.com/estatehub/viewings-api/internal/infrastructure/config"
	"github.com/estatehub/viewings-api/internal/infrastructure/db/mongo"
	"github.com/estatehub/viewings-api/internal/infrastructure/db/redis"
	"github.com/estatehub/viewings-api/internal/infrastructure/http/handlers"
	"github.com/estatehub/viewings-api/internal/infrastructure/queue"
	"github.com/estatehub/viewings-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title                       Viewings API
// @version                     1.0
// @description                 Scheduling of property viewing appointments with per-property conflict detection.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{Pretty: true})
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "viewings-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Repositories ---
	users := mongo.NewUserRepository(db)
	properties := mongo.NewPropertyRepository(db)
	features := mongo.NewFeatureRepository(db)
	appointments := mongo.NewAppointmentRepository(db)
	activity := mongo.NewActivityRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, properties, features, appointments, activity); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// --- Services ---
	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL, log)
	scheduleLock := redis.NewScheduleLock(rdb, cfg.Lock.TTL, cfg.Lock.Wait, log)
	propertySvc := service.NewPropertyService(properties, features, appointments, scheduleLock, log)
	appointmentSvc := service.NewAppointmentService(
		appointments,
		service.NewOwnershipResolver(properties),
		users,
		scheduleLock,
		log,
	)
	activitySvc := service.NewActivityService(activity, log)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activitySvc, log)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Dependencies{
		Auth:         authSvc,
		Properties:   propertySvc,
		Features:     propertySvc,
		Appointments: appointmentSvc,
		Activity:     activitySvc,
		Recorder:     dispatcher,
		Readiness: map[string]handlers.Checker{
			"mongo": handlers.MongoChecker(db),
			"redis": handlers.RedisChecker(rdb),
		},
		JWTSecret:   cfg.JWTSecret,
		AuthLimiter: middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	dispatcher.Close()
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("server stopped")
}
