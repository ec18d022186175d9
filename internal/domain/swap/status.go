package swap

// ===============================
// Swap Request Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type RequestType string

const (
	TypeClientSwap RequestType = "client_swap"
	TypeAdminMove  RequestType = "admin_move"
)

// ===============================
// Validations
// ===============================

// CanRespond define se uma solicitação ainda aceita transição
func CanRespond(current Status) error {
	if current != StatusPending {
		return ErrNotPending
	}
	return nil
}

// ClientActionStatus mapeia a ação da cliente para o status terminal
func ClientActionStatus(action string) (Status, error) {
	switch action {
	case "accept", "accepted":
		return StatusAccepted, nil
	case "reject", "rejected":
		return StatusRejected, nil
	}
	return "", NewValidationError("response", "ação inválida")
}

// AdminActionStatus mapeia a ação da admin para o status terminal
func AdminActionStatus(action string) (Status, error) {
	switch action {
	case "approve":
		return StatusAccepted, nil
	case "reject":
		return StatusRejected, nil
	}
	return "", NewValidationError("action", "ação inválida")
}

func InitialStatus() Status {
	return StatusPending
}
