package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation atomic.Pointer[time.Location]
)

// Init loads the application timezone. An empty name selects UTC.
func Init(name string) error {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	appLocation.Store(loc)
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	loc := appLocation.Load()
	if loc == nil {
		return time.UTC
	}

	return loc
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time: %w", err)
	}

	return t, nil
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
