package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Dispatcher entrega avisos fora do caminho da requisição. A fila tem
// buffer fixo; cheia, o aviso é descartado, notificação nunca derruba
// nem atrasa a API.
type Dispatcher struct {
	recorder *Recorder
	channels []Channel
	logger   *zap.Logger
	queue    chan Message
}

func NewDispatcher(recorder *Recorder, logger *zap.Logger, channels ...Channel) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		channels: channels,
		logger:   logger,
		queue:    make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// avisos da admin ficam persistidos para o painel
	if msg.Phone == "" && d.recorder != nil {
		if err := d.recorder.Record(msg); err != nil {
			d.logger.Error("failed to record admin notification",
				zap.String("type", msg.Type),
				zap.Error(err),
			)
		}
	}

	for _, ch := range d.channels {
		if err := ch.Send(ctx, msg); err != nil {
			d.logger.Warn("notification delivery failed",
				zap.String("channel", ch.Name()),
				zap.String("type", msg.Type),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping message",
			zap.String("type", msg.Type),
		)
	}
}
