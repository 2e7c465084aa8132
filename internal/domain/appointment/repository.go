package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

type ListFilter struct {
	BarberID *uint
	Date     string
}

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree verifica o conflito e insere numa única etapa atômica.
	// Devolve ConflictError se o horário já estiver ocupado.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
