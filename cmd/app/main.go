package main

import (
	"context"
	"nutricoach/config"
	"nutricoach/di"
	"nutricoach/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	reaper := di.InitializeReaper()
	go reaper.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
