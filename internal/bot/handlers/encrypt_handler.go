package handlers

import (
	"context"
	"errors"
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
	bot.RegisterCommand(NewEncryptHandler)
}

// encryptHandler is the plugin for the /encrypt command.
type encryptHandler struct {
	log  zerolog.Logger
	keys ports.KeyRepository
	bot  ports.BotClientPort
	bus  ports.EventBus
}

// NewEncryptHandler creates a new handler for the /encrypt command.
func NewEncryptHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &encryptHandler{
		log:  baseLogger.With().Str("component", "encrypt_handler").Logger(),
		keys: keys,
		bot:  botClient,
		bus:  bus,
	}
}

func (h *encryptHandler) Command() string {
	return "encrypt"
}

// Handle encrypts a message: /encrypt <cipher> <key|label> <text>.
func (h *encryptHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	ctxLogger := h.log.With().Int64("user_id", update.UserID).Logger()
	ctx = ctxLogger.WithContext(ctx)

	name, material, text, err := h.parseArgs(ctx, update.Args)
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	engine, err := cipher.FromMaterial(name, material, &ctxLogger)
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	msg, err := domain.NewMessage(text)
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	ciphertext := engine.Encrypt(msg)

	if err := h.bus.Publish(ctx, ports.TopicTextEncrypted, ports.CipherEvent{
		Cipher:  name,
		Symbols: msg.Len(),
		UserID:  update.UserID,
	}); err != nil {
		ctxLogger.Warn().Err(err).Msg("Failed to publish text.encrypted event")
	}

	return reply(ctx, h.bot, update, fmt.Sprintf(
		"Your ciphertext is %s\n\nLook for patterns. Could you recover the key if you didn't already know it?",
		ciphertext.String(),
	))
}

// parseArgs splits the arguments and resolves the key, which is either
// literal material or the label of a saved keyring record.
func (h *encryptHandler) parseArgs(ctx context.Context, args string) (name, material, text string, err error) {
	fields := strings.Fields(args)
	switch {
	case len(fields) < 3:
		return "", "", "", errors.New("Usage: /encrypt <cipher> <key|label> <text>")
	case len(fields) > 3:
		return "", "", "", errors.New("Texts use letters only - no spaces or punctuation.")
	}

	material, err = resolveKey(ctx, h.keys, fields[0], fields[1])
	if err != nil {
		return "", "", "", err
	}
	return fields[0], material, fields[2], nil
}

// resolveKey prefers a keyring label over literal material, and insists the
// saved key belongs to the requested cipher.
func resolveKey(ctx context.Context, keys ports.KeyRepository, cipherName, keyArg string) (string, error) {
	record, err := keys.GetByLabel(ctx, keyArg)
	if err != nil {
		return "", fmt.Errorf("keyring lookup failed: %w", err)
	}
	if record == nil {
		return keyArg, nil
	}
	if record.Cipher != cipherName {
		return "", fmt.Errorf("key %q belongs to the %s cipher, not %s", keyArg, record.Cipher, cipherName)
	}
	return record.Material, nil
}
