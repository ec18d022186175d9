package swap

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("swap request not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAuthorized       = errors.New("client not authorized to respond")
	ErrNotPending          = errors.New("swap request already resolved")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrAppointmentNotFound)
}

// MutationError marca falha na fase de mutação de uma resposta aceita;
// a transação inteira foi desfeita e a solicitação segue pending
type MutationError struct {
	Cause error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("swap mutation failed: %v", e.Cause)
}

func (e *MutationError) Unwrap() error {
	return e.Cause
}

// WrapMutation preserva erros de validação (recusáveis com 400) e
// converte o resto em MutationError
func WrapMutation(err error) error {
	if err == nil || IsValidation(err) {
		return err
	}
	return &MutationError{Cause: err}
}

func IsMutation(err error) bool {
	var me *MutationError
	return errors.As(err, &me)
}
