package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ClassicalCrypto/internal/adapters/eventbus"
	"ClassicalCrypto/internal/adapters/keyring"
	"ClassicalCrypto/internal/adapters/postgres"
	"ClassicalCrypto/internal/adapters/security"
	"ClassicalCrypto/internal/adapters/telegram"
	"ClassicalCrypto/internal/bot"
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"
	"ClassicalCrypto/internal/shared/logger"

	// Handlers register themselves with the bot router in their init().
	_ "ClassicalCrypto/internal/bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode)
	baseLogger.Info().Msg("Logger initialized")

	if cfg.Bot.Token == "" {
		baseLogger.Fatal().Msg("BOT_TOKEN is required to run the bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Keyring: Postgres with sealed key material when a database is
	// configured, in-memory otherwise.
	keys, cleanup, err := buildKeyring(ctx, cfg, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize keyring")
	}
	defer cleanup()

	// 4. Event Bus with an audit trail subscriber. Events carry symbol
	// counts and cipher names, never text or key material.
	bus := eventbus.NewInMemoryEventBus(&baseLogger)
	subscribeAuditLog(bus, &baseLogger)

	// 5. Telegram API client
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	baseLogger.Info().Str("bot_username", api.Self.UserName).Msg("Authorized on Telegram")

	botClient := telegram.NewClient(api, &baseLogger)

	// 6. Router and command handlers
	router := bot.NewRouter(botClient, &baseLogger)
	bot.RegisterAllHandlers(cfg, router, keys, botClient, bus, &baseLogger)

	if err := botClient.SetMenuCommands(ctx); err != nil {
		baseLogger.Warn().Err(err).Msg("Failed to set menu commands (continuing anyway)")
	}

	// 7. Run until interrupted
	server := telegram.NewBotServer(api, router, &cfg.Bot, &baseLogger)
	if err := server.Start(ctx); err != nil {
		baseLogger.Fatal().Err(err).Msg("Bot server failed")
	}
	baseLogger.Info().Msg("Shutdown complete")
}

// buildKeyring picks the key storage backend from the configuration. The
// returned cleanup releases the database pool when there is one.
func buildKeyring(ctx context.Context, cfg *config.Config, baseLogger *zerolog.Logger) (ports.KeyRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		baseLogger.Info().Msg("No DATABASE_URL set, using the in-memory keyring")
		return keyring.NewMemoryKeyring(baseLogger), func() {}, nil
	}

	if cfg.VaultKey == "" {
		return nil, nil, fmt.Errorf("VAULT_KEY is required when DATABASE_URL is set")
	}
	sealKey, err := hex.DecodeString(cfg.VaultKey)
	if err != nil {
		return nil, nil, fmt.Errorf("VAULT_KEY must be hex-encoded: %w", err)
	}
	sealer, err := security.NewAESSealer(sealKey, baseLogger)
	if err != nil {
		return nil, nil, err
	}

	db, err := postgres.NewDB(ctx, cfg.DatabaseURL, baseLogger)
	if err != nil {
		return nil, nil, err
	}

	baseLogger.Info().Msg("Using the Postgres keyring with sealed key material")
	return postgres.NewKeyRepository(db, sealer, baseLogger), db.Close, nil
}

// subscribeAuditLog logs every cipher operation the front end performs.
func subscribeAuditLog(bus ports.EventBus, baseLogger *zerolog.Logger) {
	log := baseLogger.With().Str("component", "audit_log").Logger()

	handler := func(ctx context.Context, event ports.Event) error {
		payload, ok := event.Data.(ports.CipherEvent)
		if !ok {
			log.Warn().Str("topic", event.Topic).Msg("Unexpected payload type on audit topic")
			return nil
		}
		log.Info().
			Str("topic", event.Topic).
			Str("cipher", payload.Cipher).
			Int("symbols", payload.Symbols).
			Int64("user_id", payload.UserID).
			Msg("Cipher operation")
		return nil
	}

	for _, topic := range []string{
		ports.TopicKeyGenerated,
		ports.TopicTextEncrypted,
		ports.TopicTextDecrypted,
	} {
		bus.Subscribe(topic, handler)
	}
}
