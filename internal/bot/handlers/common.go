// Package handlers contains the bot's command plugins. Each handler
// registers itself with the router registry in its init().
package handlers

import (
	"context"

	"ClassicalCrypto/internal/bot/messages"
	"ClassicalCrypto/internal/core/ports"
)

// reply sends a plain-text response to the chat the update came from.
func reply(ctx context.Context, botClient ports.BotClientPort, update *ports.BotUpdate, text string) error {
	msg := messages.NewBuilder(update.ChatID).WithText(text).Build()
	return botClient.SendMessage(ctx, msg)
}
