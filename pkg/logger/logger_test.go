package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamokano/site_deployer/pkg/logger"
)

func TestInitWithWriter(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("json_output", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter("debug", "json", &buf)

		logger.Get().Debug().Str("target", "staging").Msg("resolved")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "staging", entry["target"])
		assert.Equal(t, "resolved", entry["message"])
	})

	t.Run("level_filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter("warn", "json", &buf)

		logger.Get().Info().Msg("hidden")
		assert.Zero(t, buf.Len())

		logger.Get().Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("invalid_level_defaults_to_info", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter("verbose", "json", &buf)
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

		logger.InitWithWriter("", "json", &buf)
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("console_output", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter("info", "console", &buf)

		logger.Get().Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}
