package bot

import (
	"context"
	"testing"

	"ClassicalCrypto/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

// MockBotClient
type MockBotClient struct {
	mock.Mock
}

func (m *MockBotClient) SendMessage(ctx context.Context, params ports.SendMessageParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
func (m *MockBotClient) SetMenuCommands(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCommandHandler
type MockCommandHandler struct {
	mock.Mock
}

func (m *MockCommandHandler) Command() string {
	args := m.Called()
	return args.String(0)
}
func (m *MockCommandHandler) Handle(ctx context.Context, update *ports.BotUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func commandUpdate(text string, commandLen int) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 123,
		Message: &tgbotapi.Message{
			MessageID: 456,
			From:      &tgbotapi.User{ID: 789, UserName: "cipherfan"},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: commandLen},
			},
		},
	}
}

// --- Tests ---

func TestRouter_HandleUpdate_RoutesCommand(t *testing.T) {
	ctx := context.Background()
	nopLogger := zerolog.Nop()
	mockBotClient := new(MockBotClient)

	router := NewRouter(mockBotClient, &nopLogger)

	crackHandler := new(MockCommandHandler)
	crackHandler.On("Command").Return("crack")
	crackHandler.On("Handle", mock.Anything, mock.MatchedBy(func(update *ports.BotUpdate) bool {
		return update.Command == "crack" && update.Args == "KHOOR" && update.UserID == 789
	})).Return(nil).Once()
	router.RegisterCommandHandler(crackHandler)

	fakeUpdate := commandUpdate("/crack KHOOR", len("/crack"))
	router.HandleUpdate(ctx, &fakeUpdate)

	crackHandler.AssertExpectations(t)
	mockBotClient.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestRouter_HandleUpdate_UnknownCommandGetsHelp(t *testing.T) {
	ctx := context.Background()
	nopLogger := zerolog.Nop()
	mockBotClient := new(MockBotClient)
	mockBotClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(params ports.SendMessageParams) bool {
		return params.ChatID == 1000
	})).Return(nil).Once()

	router := NewRouter(mockBotClient, &nopLogger)

	fakeUpdate := commandUpdate("/frobnicate", len("/frobnicate"))
	router.HandleUpdate(ctx, &fakeUpdate)

	mockBotClient.AssertExpectations(t)
}

func TestRouter_HandleUpdate_PlainTextGetsHelp(t *testing.T) {
	ctx := context.Background()
	nopLogger := zerolog.Nop()
	mockBotClient := new(MockBotClient)
	mockBotClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil).Once()

	router := NewRouter(mockBotClient, &nopLogger)

	fakeUpdate := tgbotapi.Update{
		UpdateID: 124,
		Message: &tgbotapi.Message{
			MessageID: 457,
			From:      &tgbotapi.User{ID: 789},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Text:      "hello there",
		},
	}
	router.HandleUpdate(ctx, &fakeUpdate)

	mockBotClient.AssertExpectations(t)
}

func TestRouter_HandleUpdate_IgnoresUnsupportedUpdates(t *testing.T) {
	ctx := context.Background()
	nopLogger := zerolog.Nop()
	mockBotClient := new(MockBotClient)

	router := NewRouter(mockBotClient, &nopLogger)

	// No Message at all, e.g. an edited_message update.
	router.HandleUpdate(ctx, &tgbotapi.Update{UpdateID: 125})

	mockBotClient.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}
