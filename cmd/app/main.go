package main

import (
	"os"
	"todolist/config"
	"todolist/di"
	"todolist/helper"
	"todolist/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title todolist
// @version 1.0
// @description Server rendered to-do list with personal, work and shopping categories.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
