package main

import (
	"busticket/config"
	"busticket/di"
	"busticket/helper"
	"busticket/shared/logger"
	"busticket/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutputFormat(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Failed to load application timezone")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, cleanup := di.InitializeService()
	defer cleanup()

	if err := http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
