package handler

import (
	"net/http"
	"sync"
	"todolist/config"
	"todolist/di"
	"todolist/helper"
	"todolist/shared/logger"
	transportHTTP "todolist/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	server *transportHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint; the service graph is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if cfg.DB.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Error().Err(err).Msg("Failed to apply database migrations")
			}
		}

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
