package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("File values, defaults and env overrides", func(t *testing.T) {
		// Given: a partial config file and one env override
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nredis:\n  host: cache\ngame:\n  starting-cash: 2000\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv("REDIS_PORT", "6380")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: unset keys fall back to their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2000, conf.Game.StartingCash)
		assert.Equal(t, 2, conf.Game.MinPlayers)
		assert.Equal(t, 6, conf.Game.MaxPlayers)
		assert.Equal(t, 1000, conf.Game.MaxAutoplaySteps)
		assert.Zero(t, conf.Game.DiceSeed)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
