package main

import (
	"context"
	"fmt"
	"log"

	"skyline/cfg"
	"skyline/internal/game"
	"skyline/internal/world"
	"skyline/pkg/idgen"
	"skyline/pkg/logger"
	"skyline/pkg/store"
	"skyline/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// telemetry
	// ============
	ctx := context.Background()
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		OTLPEndpoint: config.TelemetryConfig.OTLPEndpoint,
		ServiceName:  config.TelemetryConfig.ServiceName,
		Environment:  config.AppEnv,
	})
	if err != nil {
		zlogger.Warn("telemetry disabled", logger.Field{Key: "err", Value: err.Error()})
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				zlogger.Error("telemetry shutdown failed", logger.Field{Key: "err", Value: err.Error()})
			}
		}()
	}

	// ============
	// Store
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	snapshots := store.NewRedisStore(redisAddr, config.RedisConfig.Password)

	// ============
	// Reference data
	// ============
	worldData, err := world.Load(config.WorldConfig.CitiesPath, config.WorldConfig.PlanesDir)
	if err != nil {
		log.Fatalf("Failed to load world data: %v", err)
	}
	zlogger.Info("world loaded",
		logger.Field{Key: "cities", Value: len(worldData.Cities)},
		logger.Field{Key: "models", Value: len(worldData.Models)},
	)

	// ============
	// ID generation
	// ============
	generator, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatalf("Failed to create id generator: %v", err)
	}

	// ============
	// Internal Service
	// ============
	gameSvc := game.NewService(worldData, snapshots, config.SnapshotTTLMinutes, zlogger)
	gameHandler := game.NewGameHandler(gameSvc, generator, zlogger)

	// ============
	// HTTP
	// ============
	r := gin.Default()
	r.Use(otelgin.Middleware(config.TelemetryConfig.ServiceName))

	gameHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
