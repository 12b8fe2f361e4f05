package handlers

import (
	"context"
	"fmt"
	"strings"

	"ClassicalCrypto/internal/adapters/cipher"
	"ClassicalCrypto/internal/bot"
	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"

	"github.com/rs/zerolog"
)

func init() {
	bot.RegisterCommand(NewDecryptHandler)
}

// decryptHandler is the plugin for the /decrypt command.
type decryptHandler struct {
	log  zerolog.Logger
	keys ports.KeyRepository
	bot  ports.BotClientPort
	bus  ports.EventBus
}

// NewDecryptHandler creates a new handler for the /decrypt command.
func NewDecryptHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &decryptHandler{
		log:  baseLogger.With().Str("component", "decrypt_handler").Logger(),
		keys: keys,
		bot:  botClient,
		bus:  bus,
	}
}

func (h *decryptHandler) Command() string {
	return "decrypt"
}

// Handle decrypts a ciphertext: /decrypt <cipher> <key|label> <TEXT>.
func (h *decryptHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	ctxLogger := h.log.With().Int64("user_id", update.UserID).Logger()
	ctx = ctxLogger.WithContext(ctx)

	fields := strings.Fields(update.Args)
	switch {
	case len(fields) < 3:
		return reply(ctx, h.bot, update, "Usage: /decrypt <cipher> <key|label> <TEXT>")
	case len(fields) > 3:
		return reply(ctx, h.bot, update, "Ciphertexts use letters only - no spaces or punctuation.")
	}
	name := fields[0]

	material, err := resolveKey(ctx, h.keys, name, fields[1])
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	engine, err := cipher.FromMaterial(name, material, &ctxLogger)
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	ciphertext, err := domain.NewCiphertext(fields[2])
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	msg := engine.Decrypt(ciphertext)

	if err := h.bus.Publish(ctx, ports.TopicTextDecrypted, ports.CipherEvent{
		Cipher:  name,
		Symbols: ciphertext.Len(),
		UserID:  update.UserID,
	}); err != nil {
		ctxLogger.Warn().Err(err).Msg("Failed to publish text.decrypted event")
	}

	return reply(ctx, h.bot, update, fmt.Sprintf("Your computed plaintext is %s", msg.String()))
}
