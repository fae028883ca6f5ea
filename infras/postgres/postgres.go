package postgres

//nolint:revive
import (
	"busticket/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection("write", Descriptor(
		write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode, write.Timezone,
	), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection("read", Descriptor(
		read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode, read.Timezone,
	), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// Descriptor builds a lib/pq connection URL.
func Descriptor(username, password, host, port, dbName, sslMode, timezone string) string {
	query := url.Values{}
	if sslMode != "" {
		query.Set("sslmode", sslMode)
	}

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Int("attempts", maxRetry).Msgf("Could not connect to %s database", name)

	return nil
}
