package timezone_test

import (
	"busticket/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() {
		_ = timezone.Init("UTC")
	})

	t.Run("empty name defaults to UTC", func(t *testing.T) {
		require.NoError(t, timezone.Init(""))
		assert.Equal(t, time.UTC, timezone.GetLocation())
	})

	t.Run("named location", func(t *testing.T) {
		require.NoError(t, timezone.Init("Asia/Kolkata"))
		assert.Equal(t, "Asia/Kolkata", timezone.GetLocation().String())
		assert.Equal(t, "Asia/Kolkata", timezone.Now().Location().String())
	})

	t.Run("unknown location falls back to UTC", func(t *testing.T) {
		err := timezone.Init("Mars/Olympus_Mons")

		assert.Error(t, err)
		assert.Equal(t, time.UTC, timezone.GetLocation())
	})
}

func TestFormatAndParse(t *testing.T) {
	require.NoError(t, timezone.Init("Asia/Kolkata"))
	t.Cleanup(func() {
		_ = timezone.Init("UTC")
	})

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 17:30", timezone.Format(testTime, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", parsed.Location().String())

	_, err = timezone.Parse("2006-01-02", "not-a-date")
	assert.Error(t, err)
}
