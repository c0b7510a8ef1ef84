// @title Basetracker API
// @description API for the habit tracker "Base"
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/basetracker/internal/advice"
	"github.com/limbo/basetracker/internal/api"
	"github.com/limbo/basetracker/internal/identity"
	"github.com/limbo/basetracker/internal/reminder"
	"github.com/limbo/basetracker/internal/repository"
	"github.com/limbo/basetracker/internal/service"
	"github.com/limbo/basetracker/pkg/cleanup"
	"github.com/limbo/basetracker/pkg/config"
	"github.com/limbo/basetracker/pkg/entity"
	jwtservice "github.com/limbo/basetracker/pkg/jwt_service"
	"github.com/limbo/basetracker/pkg/logger"
)

func init() {
	entity.InitValidator()
}

func main() {
	cfg := config.New()
	appLogger, closeLogger, err := logger.New(logger.Config{
		Level:    cfg.GetStringOr("LOG_LEVEL", "info"),
		Encoding: cfg.GetStringOr("LOG_ENCODING", "json"),
		File:     cfg.GetString("LOG_FILE"),
	})
	if err != nil {
		log.Fatal("logger error: " + err.Error())
	}
	slog.SetDefault(appLogger)
	cleanup.Register(&cleanup.Job{Name: "flushing logger", F: closeLogger})
	defer cleanup.CleanUp()

	tokens, err := jwtservice.New(cfg.GetString("JWT_SECRET"))
	if err != nil {
		appLogger.Error("JWT_SECRET must be set", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, &repository.StoreCfg{
		Driver:   cfg.GetStringOr("STORE_DRIVER", repository.DriverBolt),
		BoltPath: cfg.GetStringOr("BOLT_PATH", "./data/basetracker.db"),
		Postgres: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		},
		Redis: repository.RedisCfg{
			Address:  cfg.GetStringOr("REDIS_ADDRESS", "localhost:6379"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		},
	})
	if err != nil {
		appLogger.Error("opening store error", slog.String("error", err.Error()))
		return
	}

	var generator advice.Generator = advice.StaticGenerator{}
	if key := cfg.GetString("GEMINI_API_KEY"); key != "" {
		generator = advice.NewGeminiClient(key, cfg.GetStringOr("GEMINI_MODEL", advice.DefaultModel))
	} else {
		appLogger.Warn("GEMINI_API_KEY is not set, advice falls back to fixed text")
	}

	session := service.NewSession(service.SessionConfig{
		Store:            store,
		Advisor:          advice.NewCoach(generator, cfg.GetDuration("ADVICE_TIMEOUT", advice.DefaultTimeout), appLogger),
		Notifier:         reminder.NewLogNotifier(appLogger),
		Logger:           appLogger,
		ReminderInterval: cfg.GetDuration("REMINDER_INTERVAL", reminder.DefaultInterval),
		AutoAdvice:       cfg.GetBool("AUTO_ADVICE", true),
	})
	defer session.Close()
	if err = session.Restore(ctx); err != nil {
		appLogger.Warn("session not restored", slog.String("error", err.Error()))
	}

	serv := api.New(&api.ServicesList{
		Session:    session,
		Identity:   identity.NewSimulatedProvider(cfg.GetDuration("LOGIN_LATENCY", identity.DefaultLatency)),
		JwtService: tokens,
		Logger:     appLogger,
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		appLogger.Error("server error", slog.String("error", err.Error()))
	}
}
