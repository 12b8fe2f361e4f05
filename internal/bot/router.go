// Package bot routes Telegram updates to command handlers. Handlers are
// plugins: each registers a constructor in its init(), and main wires them
// all up through RegisterAllHandlers.
package bot

import (
	"context"
	"strings"

	"ClassicalCrypto/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Router holds all command handlers and routes incoming updates to the
// correct one.
type Router struct {
	log             zerolog.Logger
	botClient       ports.BotClientPort
	commandHandlers map[string]ports.CommandHandler
}

// NewRouter creates a new bot router.
func NewRouter(botClient ports.BotClientPort, baseLogger *zerolog.Logger) *Router {
	return &Router{
		log:             baseLogger.With().Str("component", "bot_router").Logger(),
		botClient:       botClient,
		commandHandlers: make(map[string]ports.CommandHandler),
	}
}

// RegisterCommandHandler adds a handler to the router.
func (r *Router) RegisterCommandHandler(handler ports.CommandHandler) {
	cmd := handler.Command()
	r.commandHandlers[cmd] = handler
	r.log.Info().Str("command", cmd).Msg("Registered new command handler")
}

// HandleUpdate is the main entry point for a new update from Telegram.
func (r *Router) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	botUpdate, isSupported := r.parseUpdate(update)
	if !isSupported {
		r.log.Warn().Interface("update", update).Msg("Received unsupported update type")
		return
	}

	ctxLogger := r.log.With().
		Int64("user_id", botUpdate.UserID).
		Int64("chat_id", botUpdate.ChatID).
		Logger()
	ctx = ctxLogger.WithContext(ctx)

	if botUpdate.Command != "" {
		if handler, ok := r.commandHandlers[botUpdate.Command]; ok {
			ctxLogger.Info().Str("handler", botUpdate.Command).Msg("Routing to command handler")
			if err := handler.Handle(ctx, botUpdate); err != nil {
				ctxLogger.Error().Err(err).Msg("Command handler failed")
			}
			return
		}
	}

	// Anything that isn't a known command gets the command list.
	ctxLogger.Info().Msg("Unhandled update, sending help text")
	if err := r.botClient.SendMessage(ctx, ports.SendMessageParams{
		ChatID: botUpdate.ChatID,
		Text:   r.helpText(),
	}); err != nil {
		ctxLogger.Error().Err(err).Msg("Failed to send help text")
	}
}

func (r *Router) helpText() string {
	var b strings.Builder
	b.WriteString("I only speak in commands:\n")
	for _, cmd := range []string{
		"/start - what this bot is",
		"/genkey <cipher> [label] - generate a key",
		"/encrypt <cipher> <key|label> <text> - encrypt",
		"/decrypt <cipher> <key|label> <TEXT> - decrypt",
		"/crack <TEXT> - brute-force a shift ciphertext",
		"/keys - list saved keys",
	} {
		b.WriteString(cmd)
		b.WriteString("\n")
	}
	return b.String()
}

// parseUpdate converts a raw Telegram update into our generic BotUpdate.
func (r *Router) parseUpdate(update *tgbotapi.Update) (*ports.BotUpdate, bool) {
	if update.Message == nil {
		return nil, false
	}
	msg := update.Message

	return &ports.BotUpdate{
		MessageID: msg.MessageID,
		ChatID:    msg.Chat.ID,
		UserID:    msg.From.ID,
		Text:      msg.Text,
		Command:   msg.Command(),
		Args:      msg.CommandArguments(),
	}, true
}
