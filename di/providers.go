package di

import (
	"busticket/config"
	"busticket/infras/otel"
	"busticket/infras/postgres"
	"busticket/infras/redis"
	"context"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const otelShutdownTimeout = 5 * time.Second

func providePostgres(cfg *config.Config) (*postgres.Connection, func()) {
	conn := postgres.New(cfg)

	return conn, conn.Close
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	ot := otel.New(cfg)

	return ot, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}
}
