package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustInterval(startHour, startMinute, endHour, endMinute int) Interval {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMinute)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMinute)*time.Minute),
	}
}

func TestOverlaps(t *testing.T) {
	t.Run("Symmetric", func(t *testing.T) {
		a := mustInterval(9, 0, 10, 0)
		b := mustInterval(9, 30, 10, 30)

		assert.True(t, Overlaps(a, b))
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "overlap must be symmetric")
	})

	t.Run("Adjacent Intervals Do Not Overlap", func(t *testing.T) {
		a := mustInterval(9, 0, 10, 0)
		b := mustInterval(10, 0, 11, 0)

		assert.False(t, Overlaps(a, b), "an entry ending exactly when another begins must not conflict")
		assert.False(t, Overlaps(b, a))
	})

	t.Run("One Minute Overlap", func(t *testing.T) {
		a := mustInterval(9, 0, 10, 0)
		b := mustInterval(9, 59, 10, 1)

		assert.True(t, Overlaps(a, b))
		assert.True(t, Overlaps(b, a))
	})

	t.Run("Zero Length Interval Never Overlaps", func(t *testing.T) {
		a := mustInterval(9, 0, 9, 0)
		b := mustInterval(8, 0, 10, 0)

		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("Inverted Interval Never Overlaps", func(t *testing.T) {
		a := mustInterval(10, 0, 9, 0)
		b := mustInterval(8, 0, 11, 0)

		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("Containment Overlaps", func(t *testing.T) {
		outer := mustInterval(8, 0, 12, 0)
		inner := mustInterval(9, 0, 10, 0)

		assert.True(t, Overlaps(outer, inner))
		assert.True(t, Overlaps(inner, outer))
	})
}

func TestContains(t *testing.T) {
	interval := mustInterval(9, 0, 10, 0)

	t.Run("Start Is Contained", func(t *testing.T) {
		assert.True(t, Contains(interval, interval.Start))
	})

	t.Run("End Is Not Contained", func(t *testing.T) {
		assert.False(t, Contains(interval, interval.End), "half-open interval excludes its end")
	})

	t.Run("Midpoint Is Contained", func(t *testing.T) {
		assert.True(t, Contains(interval, interval.Start.Add(30*time.Minute)))
	})

	t.Run("Before Start Is Not Contained", func(t *testing.T) {
		assert.False(t, Contains(interval, interval.Start.Add(-time.Minute)))
	})
}
