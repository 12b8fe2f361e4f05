package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ClassicalCrypto/internal/adapters/cipher"
	"ClassicalCrypto/internal/bot"
	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func init() {
	bot.RegisterCommand(NewGenKeyHandler)
}

// genKeyHandler is the plugin for the /genkey command.
type genKeyHandler struct {
	log  zerolog.Logger
	keys ports.KeyRepository
	bot  ports.BotClientPort
	bus  ports.EventBus
}

// NewGenKeyHandler creates a new handler for the /genkey command.
func NewGenKeyHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &genKeyHandler{
		log:  baseLogger.With().Str("component", "genkey_handler").Logger(),
		keys: keys,
		bot:  botClient,
		bus:  bus,
	}
}

func (h *genKeyHandler) Command() string {
	return "genkey"
}

// Handle generates a key for the requested cipher, optionally saving it to
// the keyring under a label.
func (h *genKeyHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	ctxLogger := h.log.With().Int64("user_id", update.UserID).Logger()
	ctx = ctxLogger.WithContext(ctx)

	fields := strings.Fields(update.Args)
	if len(fields) < 1 || len(fields) > 2 {
		return reply(ctx, h.bot, update,
			fmt.Sprintf("Usage: /genkey <cipher> [label]\nCiphers: %s", strings.Join(cipher.Names(), ", ")))
	}
	name := fields[0]

	engine, err := cipher.NewRandom(name, &ctxLogger)
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	material := engine.ExportKey()
	text := fmt.Sprintf(
		"We generated your %s key successfully!\n\n"+
			"We shouldn't export your key (or say, save it in logs), but we can!\n"+
			"Here it is: %s",
		name, material,
	)

	if len(fields) == 2 {
		label := fields[1]
		record := &domain.KeyRecord{
			ID:        uuid.New(),
			Label:     label,
			Cipher:    name,
			Material:  material,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.keys.Save(ctx, record); err != nil {
			ctxLogger.Warn().Err(err).Str("label", label).Msg("Failed to save generated key")
			return reply(ctx, h.bot, update, fmt.Sprintf("Generated the key, but saving it failed: %v", err))
		}
		text += fmt.Sprintf("\n\nSaved to the keyring as %q.", label)
	} else {
		text += "\n\nNo label given, so nothing was saved. Please remember your key in perpetuity!"
	}

	if err := h.bus.Publish(ctx, ports.TopicKeyGenerated, ports.CipherEvent{
		Cipher: name,
		UserID: update.UserID,
	}); err != nil {
		ctxLogger.Warn().Err(err).Msg("Failed to publish key.generated event")
	}

	return reply(ctx, h.bot, update, text)
}
