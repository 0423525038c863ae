package main

import (
	"roomlist/config"
	"roomlist/di"
	"roomlist/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
