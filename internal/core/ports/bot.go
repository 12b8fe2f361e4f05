package ports

import "context"

// SendMessageParams holds the options for sending a message.
type SendMessageParams struct {
	ChatID    int64
	Text      string
	ParseMode string // e.g. "MarkdownV2", empty for plain text
}

// BotClientPort defines the interface for sending messages back to the user.
type BotClientPort interface {
	SendMessage(ctx context.Context, params SendMessageParams) error

	// SetMenuCommands publishes the command list so clients show a menu.
	SetMenuCommands(ctx context.Context) error
}

// BotUpdate is a simplified, transport-agnostic incoming update.
type BotUpdate struct {
	MessageID int
	ChatID    int64
	UserID    int64
	Text      string
	Command   string
	Args      string // everything after the command, untrimmed per word
}

// CommandHandler is the plugin interface for handling bot commands.
type CommandHandler interface {
	// Command returns the command string without the leading "/".
	Command() string

	// Handle processes the update.
	Handle(ctx context.Context, update *BotUpdate) error
}
