package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func clearEnv(t *testing.T) {
	unsetEnv(t,
		"BOT_TOKEN", "BOT_POLL_TIMEOUT", "LOG_LEVEL", "STATS_CRON", "NOTIFY_RATE",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_SSLMODE", "DB_PATH", "DB_TIMEOUT",
		"DISPATCH_INTERVAL", "DISPATCH_TIMEZONE",
	)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		database DatabaseConfig
		expected string
	}{
		{
			name: "postgres",
			database: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     "5432",
				User:     "testuser",
				Password: "testpass",
				Name:     "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name:     "sqlite3",
			database: DatabaseConfig{Driver: DriverSQLite, Path: "/var/lib/vocabot/words.db"},
			expected: "file:/var/lib/vocabot/words.db?_busy_timeout=5000&_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.database}
			assert.Equal(t, tt.expected, cfg.DSN())
		})
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, 10*time.Second, cfg.PollTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0 0 * * *", cfg.StatsCron)
	assert.Equal(t, 25.0, cfg.NotifyRate)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vocabot", cfg.Database.Name)
	assert.Equal(t, "vocabot", cfg.Database.User)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.Interval)

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("DISPATCH_INTERVAL", "1s")
	t.Setenv("DISPATCH_TIMEZONE", "Europe/Moscow")
	t.Setenv("NOTIFY_RATE", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, time.Second, cfg.Dispatch.Interval)
	assert.Equal(t, 5.0, cfg.NotifyRate)

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{
			name:     "missing db password for postgres",
			env:      map[string]string{},
			expected: "DB_PASSWORD",
		},
		{
			name:     "unknown driver",
			env:      map[string]string{"DB_DRIVER": "mysql", "DB_PASSWORD": "x"},
			expected: "DB_DRIVER",
		},
		{
			name:     "unknown timezone",
			env:      map[string]string{"DB_PASSWORD": "x", "DISPATCH_TIMEZONE": "Mars/Olympus"},
			expected: "DISPATCH_TIMEZONE",
		},
		{
			name:     "zero interval",
			env:      map[string]string{"DB_PASSWORD": "x", "DISPATCH_INTERVAL": "0s"},
			expected: "DISPATCH_INTERVAL",
		},
		{
			name:     "malformed duration",
			env:      map[string]string{"DB_PASSWORD": "x", "DB_TIMEOUT": "soon"},
			expected: "DB_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BOT_TOKEN", "test_token")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
