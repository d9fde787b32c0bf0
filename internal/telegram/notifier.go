package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"weekly-meal-planner/internal/config"
)

// Notifier sends a one-way plan summary to a single chat. The email is the
// system of record; this is a best-effort ping.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

// NewNotifier initializes the Telegram API client.
func NewNotifier(cfg config.TelegramConfig, log *zap.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Info("telegram notifier ready", zap.String("account", api.Self.UserName))

	return &Notifier{api: api, chatID: cfg.ChatID, log: log}, nil
}

// Notify sends one plain-text message.
func (n *Notifier) Notify(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
