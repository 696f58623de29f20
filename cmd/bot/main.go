package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"assistant-bot/internal/app"
	"assistant-bot/internal/config"
	"assistant-bot/internal/logger"
)

const defaultConfigFile = "config.yml"

func main() {
	configFile := defaultConfigFile
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	// Загружаем конфигурацию; отсутствующий файл дает значения по умолчанию
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}

	zapLog, err := logger.New(cfg.Logger.Env, cfg.Logger.Level, cfg.Logger.Path)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zapLog.Sync()

	bot, err := app.New(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("app initialization failed", zap.Error(err))
	}

	if err := bot.Run(); err != nil {
		zapLog.Fatal("session failed", zap.Error(err))
	}
}
