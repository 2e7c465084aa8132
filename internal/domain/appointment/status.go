package appointment

import "github.com/BruksfildServices01/barbearia-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o status de todo agendamento recém-criado
func InitialStatus() Status {
	return StatusPending
}

// OccupiesSlot indica se o agendamento bloqueia o horário do barbeiro
func OccupiesSlot(s Status) bool {
	return s != StatusCancelled
}
