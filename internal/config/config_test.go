package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults apply when no file exists", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageSQLite, conf.ScoreStorage)
		assert.Equal(t, "bestScores.db", conf.SQLiteStoragePath)
		assert.Equal(t, 10, conf.NicknameMaxLength)
		assert.Empty(t, conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables for storage
		t.Setenv("SCORE_STORAGE", StorageRedis)
		t.Setenv("REDIS_HOST", "cache")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, StorageRedis, conf.ScoreStorage)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"9090\"\nnickname-max-length: 8\nredis:\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values and defaults are merged
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 8, conf.NicknameMaxLength)
		assert.Equal(t, "localhost:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Unknown storage is rejected", func(t *testing.T) {
		t.Setenv("SCORE_STORAGE", "postgres")

		_, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.ErrorIs(t, err, ErrUnknownStorage)
	})
}
