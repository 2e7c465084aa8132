package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

type BookingRequest struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	BarberID    uint
	Services    []string
	Date        string
	Time        string
}

// Slot é o horário normalizado de um barbeiro.
type Slot struct {
	BarberID uint
	Date     string
	Time     string
}

// Validate aplica as regras na ordem; o primeiro erro vence.
// A checagem de conflito fica com o repositório.
func Validate(cfg shop.Config, req BookingRequest, now time.Time) (Slot, float64, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return Slot{}, 0, Invalid(ReasonMissingName)
	}

	if len(req.Services) == 0 {
		return Slot{}, 0, Invalid(ReasonNoServices)
	}
	total, err := cfg.Total(req.Services)
	if err != nil {
		return Slot{}, 0, Invalid(ReasonUnknownService)
	}

	if _, ok := cfg.Barber(req.BarberID); !ok {
		return Slot{}, 0, Invalid(ReasonUnknownBarber)
	}

	date, err := shop.ParseDate(req.Date, cfg.Location())
	if err != nil {
		return Slot{}, 0, Invalid(ReasonInvalidDate)
	}
	if !cfg.IsWorkingDay(date) {
		return Slot{}, 0, Invalid(ReasonClosedDay)
	}

	clock, err := shop.ParseClock(req.Time)
	if err != nil {
		return Slot{}, 0, Invalid(ReasonInvalidTime)
	}
	if !cfg.WithinBusinessHours(clock) {
		return Slot{}, 0, Invalid(ReasonOutsideHours)
	}

	if date.Before(cfg.Today(now)) {
		return Slot{}, 0, Invalid(ReasonDateInThePast)
	}

	return Slot{
		BarberID: req.BarberID,
		Date:     date.Format(shop.DateLayout),
		Time:     clock.String(),
	}, total, nil
}

// NewAppointment monta o registro a persistir a partir de um pedido já validado.
func NewAppointment(req BookingRequest, slot Slot, total float64, now time.Time) *models.Appointment {
	return &models.Appointment{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: optional(req.ClientEmail),
		ClientPhone: optional(req.ClientPhone),
		BarberID:    slot.BarberID,
		Services:    JoinServices(req.Services),
		Total:       total,
		ApptDate:    slot.Date,
		ApptTime:    slot.Time,
		CreatedAt:   now.UTC(),
		Status:      string(InitialStatus()),
	}
}
