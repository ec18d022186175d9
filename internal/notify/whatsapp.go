package notify

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// WhatsAppChannel prepara o deep-link wa.me da mensagem. A automação
// de navegador do sistema antigo fica fora daqui; o link pronto é
// registrado para envio pela operadora.
type WhatsAppChannel struct {
	logger *zap.Logger
}

func NewWhatsAppChannel(logger *zap.Logger) *WhatsAppChannel {
	return &WhatsAppChannel{logger: logger}
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

func (w *WhatsAppChannel) Send(ctx context.Context, msg Message) error {
	if msg.Phone == "" {
		return nil
	}

	link := "https://wa.me/" + digitsOnly(msg.Phone) +
		"?text=" + url.QueryEscape(msg.Text)

	w.logger.Info("whatsapp message prepared",
		zap.String("type", msg.Type),
		zap.String("link", link),
	)
	return nil
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
