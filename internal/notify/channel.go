package notify

import "context"

// Message é um aviso humano-legível. Phone preenchido endereça uma
// cliente; vazio, o aviso vai para os canais da admin.
type Message struct {
	Type string
	Text string

	Phone string

	ClientID      *uint
	AppointmentID *uint
}

// Channel é um transporte best-effort; falha é registrada, nunca
// propagada ao chamador
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}
