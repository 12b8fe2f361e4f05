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
	bot.RegisterCommand(NewCrackHandler)
}

// crackHandler is the plugin for the /crack command: a brute-force attack
// on the shift cipher. With 26 keys, "attack" is a generous word for it.
type crackHandler struct {
	log zerolog.Logger
	bot ports.BotClientPort
}

// NewCrackHandler creates a new handler for the /crack command.
func NewCrackHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &crackHandler{
		log: baseLogger.With().Str("component", "crack_handler").Logger(),
		bot: botClient,
	}
}

func (h *crackHandler) Command() string {
	return "crack"
}

// Handle lists the decryption of a shift ciphertext under every key.
// Exactly one line will read like language; the human does the last step.
func (h *crackHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	ctxLogger := h.log.With().Int64("user_id", update.UserID).Logger()
	ctx = ctxLogger.WithContext(ctx)

	fields := strings.Fields(update.Args)
	if len(fields) != 1 {
		return reply(ctx, h.bot, update, "Usage: /crack <TEXT> (a shift ciphertext, letters only)")
	}

	ciphertext, err := domain.NewCiphertext(fields[0])
	if err != nil {
		return reply(ctx, h.bot, update, err.Error())
	}

	var b strings.Builder
	b.WriteString("All 26 candidate plaintexts; one of them is the message:\n")
	for k := 0; k < domain.Modulus; k++ {
		key, err := cipher.NewShiftKey(k)
		if err != nil {
			// Unreachable: the loop stays inside the key space.
			ctxLogger.Error().Err(err).Int("key", k).Msg("Brute force constructed an invalid key")
			continue
		}
		engine := cipher.NewShift(key, &ctxLogger)
		fmt.Fprintf(&b, "k=%2d: %s\n", k, engine.Decrypt(ciphertext).String())
	}

	return reply(ctx, h.bot, update, b.String())
}
