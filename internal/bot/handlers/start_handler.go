package handlers

import (
	"context"
	"fmt"
	"strings"

	"ClassicalCrypto/internal/adapters/cipher"
	"ClassicalCrypto/internal/bot"
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"

	"github.com/rs/zerolog"
)

func init() {
	bot.RegisterCommand(NewStartHandler)
}

// startHandler is the plugin for the /start command.
type startHandler struct {
	log zerolog.Logger
	bot ports.BotClientPort
}

// NewStartHandler creates a new handler for the /start command.
func NewStartHandler(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler {
	return &startHandler{
		log: baseLogger.With().Str("component", "start_handler").Logger(),
		bot: botClient,
	}
}

func (h *startHandler) Command() string {
	return "start"
}

func (h *startHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	h.log.Info().Int64("user_id", update.UserID).Msg("New user started the bot")

	text := fmt.Sprintf(
		"Welcome to the classical cipher demo!\n\n"+
			"I speak %s. None of these are secure - that is the point.\n\n"+
			"Texts use letters of the Latin Alphabet only, no spaces or punctuation.\n\n"+
			"Try:\n"+
			"/genkey shift\n"+
			"/encrypt shift 3 hello\n"+
			"/decrypt shift 3 KHOOR\n"+
			"/crack KHOOR",
		strings.Join(cipher.Names(), ", "),
	)
	return reply(ctx, h.bot, update, text)
}
