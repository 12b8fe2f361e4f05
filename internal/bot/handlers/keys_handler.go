package handlers

import (
	"context"
	"fmt"
	"strings"

	"ClassicalCrypto/internal/bot"
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"

	"github.com/rs/zerolog"
)

func init() {
	bot.RegisterCommand(NewKeysHandler)
}

// keysHandler is the plugin for the /keys command.
type keysHandler struct {
	log  zerolog.Logger
	keys ports.KeyRepository
	bot  ports.BotClientPort
}

// NewKeysHandler creates a new handler for the /keys command.
func NewKeysHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &keysHandler{
		log:  baseLogger.With().Str("component", "keys_handler").Logger(),
		keys: keys,
		bot:  botClient,
	}
}

func (h *keysHandler) Command() string {
	return "keys"
}

// Handle lists the saved keyring records. Labels and ciphers only; asking a
// bot chat for key material is how the material ends up in chat history.
func (h *keysHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	ctxLogger := h.log.With().Int64("user_id", update.UserID).Logger()
	ctx = ctxLogger.WithContext(ctx)

	records, err := h.keys.List(ctx)
	if err != nil {
		ctxLogger.Error().Err(err).Msg("Failed to list keyring")
		return reply(ctx, h.bot, update, "Something went wrong listing the keyring.")
	}

	if len(records) == 0 {
		return reply(ctx, h.bot, update, "The keyring is empty. /genkey <cipher> <label> saves one.")
	}

	var b strings.Builder
	b.WriteString("Saved keys:\n")
	for _, record := range records {
		fmt.Fprintf(&b, "%s (%s), saved %s\n", record.Label, record.Cipher, record.CreatedAt.Format("2006-01-02"))
	}
	return reply(ctx, h.bot, update, b.String())
}
