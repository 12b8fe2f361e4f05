package messages

import "ClassicalCrypto/internal/core/ports"

// Builder helps construct SendMessageParams.
type Builder struct {
	params ports.SendMessageParams
}

// NewBuilder creates a new message builder. Messages default to plain text;
// ciphertext and key material get mangled by Markdown parsing otherwise.
func NewBuilder(chatID int64) *Builder {
	return &Builder{
		params: ports.SendMessageParams{
			ChatID: chatID,
		},
	}
}

// WithText sets the message text.
func (b *Builder) WithText(text string) *Builder {
	b.params.Text = text
	return b
}

// WithParseMode sets a parse mode, e.g. "MarkdownV2".
func (b *Builder) WithParseMode(mode string) *Builder {
	b.params.ParseMode = mode
	return b
}

// Build returns the finished params.
func (b *Builder) Build() ports.SendMessageParams {
	return b.params
}
