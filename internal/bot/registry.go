package bot

import (
	"ClassicalCrypto/internal/core/ports"
	"ClassicalCrypto/internal/shared/config"

	"github.com/rs/zerolog"
)

// CommandHandlerConstructor builds a handler with its dependencies.
// Handlers call RegisterCommand from their init() so main only has to call
// RegisterAllHandlers once.
type CommandHandlerConstructor func(
	cfg *config.Config,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) ports.CommandHandler

var commandRegistry []CommandHandlerConstructor

// RegisterCommand is called by handlers in their init() function.
func RegisterCommand(constructor CommandHandlerConstructor) {
	commandRegistry = append(commandRegistry, constructor)
}

// RegisterAllHandlers builds all registered handlers and gives them to the
// router.
func RegisterAllHandlers(
	cfg *config.Config,
	router *Router,
	keys ports.KeyRepository,
	botClient ports.BotClientPort,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) {
	for _, constructor := range commandRegistry {
		handler := constructor(cfg, keys, botClient, bus, baseLogger)
		router.RegisterCommandHandler(handler)
	}
}
