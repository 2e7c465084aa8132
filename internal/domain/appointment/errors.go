package appointment

import (
	"errors"
	"fmt"
)

const (
	ReasonMissingName    = "missing name"
	ReasonNoServices     = "no services selected"
	ReasonUnknownService = "unknown service"
	ReasonUnknownBarber  = "unknown barber"
	ReasonInvalidDate    = "invalid date"
	ReasonClosedDay      = "closed day"
	ReasonInvalidTime    = "invalid time"
	ReasonOutsideHours   = "outside business hours"
	ReasonDateInThePast  = "date in the past"
	ReasonSlotTaken      = "slot taken"
)

var ErrNotFound = errors.New("appointment: not found")

// ValidationError: entrada incompleta ou fora das regras da barbearia.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ConflictError: o barbeiro já tem um agendamento ativo no mesmo horário.
type ConflictError struct {
	BarberID uint
	Date     string
	Time     string
}

func (e ConflictError) Error() string {
	return ReasonSlotTaken
}

// StorageError embrulha qualquer falha do banco.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func Invalid(reason string) error {
	return ValidationError{Reason: reason}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsStorage(err error) bool {
	var se StorageError
	return errors.As(err, &se)
}
