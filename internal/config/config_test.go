package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TEACHER_TOKEN", "123:token")
	t.Setenv("TEACHER_SECRET_PASSWORD", "do-re-mi")
	t.Setenv("DB_DSN", "postgres://localhost:5432/school")
	t.Setenv("ENV", "")
}

func TestLoad_AllSet(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:token", cfg.TelegramToken)
	assert.Equal(t, "do-re-mi", cfg.TeacherSecret)
	assert.Equal(t, "postgres://localhost:5432/school", cfg.DBDSN)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_DefaultEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"token", "TELEGRAM_BOT_TEACHER_TOKEN"},
		{"secret", "TEACHER_SECRET_PASSWORD"},
		{"dsn", "DB_DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
