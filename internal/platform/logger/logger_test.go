package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbuster/quizbuster-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			log := logger.Setup(level)
			require.NotNil(t, log, "level %s", level)
		}
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		log := logger.Setup("chatty")
		require.NotNil(t, log)
		ctx := context.Background()
		assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		assert.False(t, log.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("becomes default logger", func(t *testing.T) {
		log := logger.Setup("debug")
		assert.Equal(t, log, slog.Default())
	})
}
