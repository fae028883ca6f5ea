package helper

//nolint:revive
import (
	"busticket/config"
	"busticket/infras/postgres"
	"busticket/migrations"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// connectionString targets the write database and records versions in the configured table.
func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	dsn := postgres.Descriptor(write.Username, write.Password, write.Host, write.Port,
		getDBName(config, write.Name), write.SSLMode, write.Timezone)

	if config.DB.Postgres.MigrationTable == "" {
		return dsn
	}

	separator := "?"
	if u, err := url.Parse(dsn); err == nil && u.RawQuery != "" {
		separator = "&"
	}

	return dsn + separator + "x-migrations-table=" + url.QueryEscape(config.DB.Postgres.MigrationTable)
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	switch action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	version, dirty, verErr := mig.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		log.Warn().Err(verErr).Msg("Could not read migration version")
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
