package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Returns Set Value", func(t *testing.T) {
		t.Setenv("DESKWISE_TEST_STRING", "value")

		assert.Equal(t, "value", GetEnvString("DESKWISE_TEST_STRING", "fallback"))
	})

	t.Run("Falls Back When Unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("DESKWISE_TEST_UNSET", "fallback"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("Parses Set Value", func(t *testing.T) {
		t.Setenv("DESKWISE_TEST_INT", "480")

		assert.Equal(t, 480, GetEnvInt("DESKWISE_TEST_INT", 60))
	})

	t.Run("Falls Back On Parse Failure", func(t *testing.T) {
		t.Setenv("DESKWISE_TEST_INT", "not-a-number")

		assert.Equal(t, 60, GetEnvInt("DESKWISE_TEST_INT", 60))
	})
}
