package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

type AppointmentDTO struct {
	ID          uint       `json:"id"`
	ClientName  string     `json:"client_name"`
	ClientEmail *string    `json:"client_email"`
	ClientPhone *string    `json:"client_phone"`
	BarberID    uint       `json:"barber_id"`
	BarberName  string     `json:"barber_name"`
	Services    []string   `json:"services"`
	Total       float64    `json:"total"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func NewAppointmentDTO(ap models.Appointment, cfg shop.Config) AppointmentDTO {
	out := AppointmentDTO{
		ID:          ap.ID,
		ClientName:  ap.ClientName,
		ClientEmail: ap.ClientEmail,
		ClientPhone: ap.ClientPhone,
		BarberID:    ap.BarberID,
		Services:    domain.SplitServices(ap.Services),
		Total:       ap.Total,
		Date:        ap.ApptDate,
		Time:        ap.ApptTime,
		Status:      ap.Status,
		CreatedAt:   ap.CreatedAt,
		CancelledAt: ap.CancelledAt,
	}
	if b, ok := cfg.Barber(ap.BarberID); ok {
		out.BarberName = b.Name
	}
	return out
}

func NewAppointmentDTOs(apps []models.Appointment, cfg shop.Config) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, NewAppointmentDTO(ap, cfg))
	}
	return out
}
