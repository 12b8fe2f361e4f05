package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BotConfig holds the Telegram front end settings.
type BotConfig struct {
	Token          string
	WorkerPoolSize int
}

// Config holds all configuration for the application.
//
// Nothing is mandatory at load time: the terminal demo runs with an empty
// environment, so each entry point validates only the values it consumes.
type Config struct {
	AppEnv      string
	DatabaseURL string // empty means the in-memory keyring
	VaultKey    string // hex-encoded sealer key, required only with a database
	Bot         BotConfig
}

// Load loads configuration from the environment, with .env as a convenience
// for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env is fine; the OS environment still applies.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	bindings := map[string]string{
		"app.env":      "APP_ENV",
		"database.url": "DATABASE_URL",
		"vault.key":    "VAULT_KEY",
		"bot.token":    "BOT_TOKEN",
		"bot.workers":  "BOT_WORKERS",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	viper.SetDefault("app.env", "dev")
	viper.SetDefault("bot.workers", 4)

	cfg := Config{
		AppEnv:      viper.GetString("app.env"),
		DatabaseURL: viper.GetString("database.url"),
		VaultKey:    viper.GetString("vault.key"),
		Bot: BotConfig{
			Token:          viper.GetString("bot.token"),
			WorkerPoolSize: viper.GetInt("bot.workers"),
		},
	}

	if cfg.Bot.WorkerPoolSize < 1 {
		return nil, fmt.Errorf("BOT_WORKERS must be at least 1, got %d", cfg.Bot.WorkerPoolSize)
	}

	if cfg.VaultKey != "" && len(cfg.VaultKey) != 64 {
		return nil, fmt.Errorf("VAULT_KEY must be a 64-character hex string (32 bytes), got %d chars", len(cfg.VaultKey))
	}

	return &cfg, nil
}
