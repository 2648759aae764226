package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DECKS_DIR", "")
	t.Setenv("STATE_FILE", "")
	t.Setenv("DEFAULT_DECK", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "decks", cfg.DecksDir)
	assert.Equal(t, "data/state.json", cfg.StateFile)
	assert.Equal(t, "default", cfg.DefaultDeck)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DECKS_DIR", "/srv/decks")
	t.Setenv("STATE_FILE", "/srv/state.json")
	t.Setenv("DEFAULT_DECK", "fruits")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "/srv/decks", cfg.DecksDir)
	assert.Equal(t, "/srv/state.json", cfg.StateFile)
	assert.Equal(t, "fruits", cfg.DefaultDeck)
}
