package main

import (
	"busticket/config"
	"busticket/helper"
	"busticket/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction is required. Use 'up', 'down', 'drop' or 'step-up'")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	var err error

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg)
	case helper.ActionDown:
		err = helper.Down(cfg)
	case helper.ActionDrop:
		err = helper.Drop(cfg)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg)
	default:
		log.Fatal().Str("direction", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("Migration failed")
	}
}
