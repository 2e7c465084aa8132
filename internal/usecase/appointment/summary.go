package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/dto"
)

type GetSummary struct {
	repo             domain.Repository
	shop             shop.Config
	includeCancelled bool
}

func NewGetSummary(
	repo domain.Repository,
	cfg shop.Config,
	includeCancelled bool,
) *GetSummary {
	return &GetSummary{
		repo:             repo,
		shop:             cfg,
		includeCancelled: includeCancelled,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (dto.SummaryDTO, error) {
	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{})
	if err != nil {
		return dto.SummaryDTO{}, err
	}

	sum := domain.Aggregate(appointments, uc.includeCancelled)
	return dto.NewSummaryDTO(sum, uc.shop), nil
}
