package notificator

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	tgModels "github.com/go-telegram/bot/models"

	"github.com/sfy-labs/easychain/pkg/logger"
)

type TelegramNotificator struct {
	logger *logger.Logger
	bot    *bot.Bot

	adminChatID string
}

func NewTelegramNotificator(logger *logger.Logger, token, adminChatID string) (*TelegramNotificator, error) {
	provider := &TelegramNotificator{
		logger:      logger,
		adminChatID: adminChatID,
	}
	opts := []bot.Option{
		bot.WithDefaultHandler(provider.handler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	go b.Start(context.Background())
	provider.bot = b

	return provider, nil
}

// SendToAdminChat delivers a message to the configured admin chat.
func (t *TelegramNotificator) SendToAdminChat(message string) {
	if t.adminChatID == "" {
		t.logger.Warn("Admin chat ID not configured, dropping notification: ", message)
		return
	}
	params := &bot.SendMessageParams{
		ChatID: t.adminChatID,
		Text:   message,
	}
	_, err := t.bot.SendMessage(context.Background(), params)
	if err != nil {
		t.logger.Error("Failed to send notification: ", err)
	}
}

// handler answers /start with the chat ID so operators can discover the
// value for ADMIN_TELEGRAM_CHAT_ID.
func (t *TelegramNotificator) handler(ctx context.Context, b *bot.Bot, update *tgModels.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	t.logger.Debug("Telegram update: ", update.Message.From.Username, " ", update.Message.Text)
	if update.Message.Text == "/start" {
		chatID := fmt.Sprint(update.Message.Chat.ID)
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "EasyChain dashboard bot. This chat ID is " + chatID,
		})
		if err != nil {
			t.logger.Error("Failed to answer /start: ", err)
		}
	}
}
