package handler

import (
	"busticket/config"
	"busticket/di"
	"busticket/shared/logger"
	"busticket/shared/timezone"
	"net/http"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Error().Err(err).Msg("Failed to load application timezone, using UTC")
	}

	handler, cleanup := di.InitializeService()
	defer cleanup()

	handler.ServeHTTP(w, r)
}
