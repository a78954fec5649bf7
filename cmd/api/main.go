package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"textprocessor/internal/config"
	"textprocessor/internal/handler"
	"textprocessor/internal/history"
	"textprocessor/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	processor := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	store := history.NewStore()
	processHandler := handler.NewProcessHandler(processor, store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", processHandler.GetRoot)
	r.POST("/process", processHandler.ProcessText)
	r.GET("/history", processHandler.GetHistory)
	r.GET("/health", processHandler.GetHealth)

	slog.Info("starting API server", "port", cfg.Port, "model", cfg.OpenAIModel)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
