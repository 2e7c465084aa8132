package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
	shop shop.Config
}

func NewListAppointments(
	repo domain.Repository,
	cfg shop.Config,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		shop: cfg,
	}
}

// Execute lista em ordem de data/hora. barberID nil traz todos os barbeiros.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	barberID *uint,
	date string,
) ([]dto.AppointmentDTO, error) {

	if barberID != nil {
		if _, ok := uc.shop.Barber(*barberID); !ok {
			return nil, domain.Invalid(domain.ReasonUnknownBarber)
		}
	}

	filter := domain.ListFilter{BarberID: barberID}
	if date != "" {
		d, err := shop.ParseDate(date, uc.shop.Location())
		if err != nil {
			return nil, domain.Invalid(domain.ReasonInvalidDate)
		}
		filter.Date = d.Format(shop.DateLayout)
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentDTOs(appointments, uc.shop), nil
}
