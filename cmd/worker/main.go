package main

import (
	"go-coope/internal/app"
	"go-coope/internal/config"
	"go-coope/internal/shared/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if err := app.RunWorker(cfg, log); err != nil {
		log.Fatal("run worker failed", zap.Error(err))
	}
}
