package notify

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramChannel envia avisos da admin para o chat configurado
type TelegramChannel struct {
	bot    *bot.Bot
	chatID string
	logger *zap.Logger
}

func NewTelegramChannel(token, chatID string, logger *zap.Logger) (*TelegramChannel, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, err
	}

	return &TelegramChannel{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (t *TelegramChannel) Name() string { return "telegram" }

func (t *TelegramChannel) Send(ctx context.Context, msg Message) error {
	// canal da admin; mensagens para clientes vão por WhatsApp
	if msg.Phone != "" {
		return nil
	}

	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   msg.Text,
	})
	return err
}
