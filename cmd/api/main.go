package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/handler"
	"github.com/yourusername/trivia-questions/internal/pkg/logger"
	"github.com/yourusername/trivia-questions/internal/repository/postgres"
	"github.com/yourusername/trivia-questions/internal/router"
	"github.com/yourusername/trivia-questions/internal/service"
	"github.com/yourusername/trivia-questions/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	appLogger := logger.New(cfg.Log)
	log.Logger = appLogger
	gin.SetMode(cfg.Server.Mode)

	// Подключаемся к базе данных (для postgres применяются миграции)
	db, err := database.Open(cfg.Database)
	if err != nil {
		appLogger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Error().Err(err).Msg("Error closing database")
		}
	}()
	appLogger.Info().Str("driver", cfg.Database.Driver).Msg("Database connected")

	// Репозитории
	questionRepo := postgres.NewQuestionRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)

	// Сервисы
	triviaService := service.NewTriviaService(questionRepo, categoryRepo, cfg.Trivia.QuestionsPerPage)

	// Обработчики
	r := router.New(router.Deps{
		Logger:        appLogger,
		AllowOrigins:  cfg.CORS.AllowOrigins,
		TriviaHandler: handler.NewTriviaHandler(triviaService),
		HealthHandler: handler.NewHealthHandler(func() error { return database.Ping(db) }),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info().Str("port", cfg.Server.Port).Str("mode", cfg.Server.Mode).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Server forced to shutdown")
	}

	appLogger.Info().Msg("Server exited properly")
}
