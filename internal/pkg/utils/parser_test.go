package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRFC3339UTC(t *testing.T) {
	t.Run("Normalizes Offset To UTC", func(t *testing.T) {
		parsed, err := ParseRFC3339UTC("2025-03-10T16:00:00+07:00")

		assert.NoError(t, err)
		assert.Equal(t, time.UTC, parsed.Location())
		assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Rejects Garbage", func(t *testing.T) {
		_, err := ParseRFC3339UTC("not-a-timestamp")

		assert.Error(t, err)
	})

	t.Run("Rejects Date Without Time", func(t *testing.T) {
		_, err := ParseRFC3339UTC("2025-03-10")

		assert.Error(t, err)
	})
}

func TestParseCalendarDate(t *testing.T) {
	t.Run("Parses In Location", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Jakarta")
		assert.NoError(t, err)

		parsed, err := ParseCalendarDate("2025-03-10", loc)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), parsed)
	})

	t.Run("Nil Location Defaults To UTC", func(t *testing.T) {
		parsed, err := ParseCalendarDate("2025-03-10", nil)

		assert.NoError(t, err)
		assert.Equal(t, time.UTC, parsed.Location())
	})

	t.Run("Rejects Timestamp Format", func(t *testing.T) {
		_, err := ParseCalendarDate("2025-03-10T09:00:00Z", nil)

		assert.Error(t, err)
	})
}
