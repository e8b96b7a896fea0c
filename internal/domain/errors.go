package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEventNotFound        = errors.New("evento no encontrado")
	ErrPaymentNotFound      = errors.New("pago no encontrado")
	ErrMissingField         = errors.New("falta un campo obligatorio")
	ErrInvalidGuestCount    = errors.New("la cantidad de invitados debe ser mayor a cero")
	ErrInvalidPrice         = errors.New("el precio por plato debe ser mayor a cero")
	ErrInvalidAmount        = errors.New("el monto del pago debe ser mayor a cero")
	ErrAmountExceedsBalance = errors.New("el monto supera el saldo pendiente")
	ErrDateConflict         = errors.New("ya existe un evento en esa fecha")
	ErrInvalidCurrency      = errors.New("moneda no soportada")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
)

// DateConflictError carries the name of the event already booked on the
// requested date so the caller can surface it.
type DateConflictError struct {
	EventName string
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("ya existe un evento en esa fecha: %s", e.EventName)
}

// Is makes errors.Is(err, ErrDateConflict) match.
func (e *DateConflictError) Is(target error) bool {
	return target == ErrDateConflict
}

// MissingFieldError names the specific field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("falta un campo obligatorio: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Code maps a domain error to a stable snake_case code. Adapters use the
// code to look up a localized user-facing message.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrPaymentNotFound):
		return "payment_not_found"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidGuestCount):
		return "invalid_guest_count"
	case errors.Is(err, ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrAmountExceedsBalance):
		return "amount_exceeds_balance"
	case errors.Is(err, ErrDateConflict):
		return "date_conflict"
	case errors.Is(err, ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return ""
	}
}
