package dto

import (
	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
)

type BarberSummaryDTO struct {
	BarberID   uint    `json:"barber_id"`
	BarberName string  `json:"barber_name"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
}

type SummaryDTO struct {
	Count            int                `json:"count"`
	TotalRevenue     float64            `json:"total_revenue"`
	IncludeCancelled bool               `json:"include_cancelled"`
	ByBarber         []BarberSummaryDTO `json:"by_barber"`
}

func NewSummaryDTO(sum domain.Summary, cfg shop.Config) SummaryDTO {
	out := SummaryDTO{
		Count:            sum.Count,
		TotalRevenue:     sum.TotalRevenue,
		IncludeCancelled: sum.IncludeCancelled,
		ByBarber:         make([]BarberSummaryDTO, 0, len(sum.ByBarber)),
	}
	for _, s := range sum.ByBarber {
		row := BarberSummaryDTO{
			BarberID: s.BarberID,
			Count:    s.Count,
			Revenue:  s.Revenue,
		}
		if b, ok := cfg.Barber(s.BarberID); ok {
			row.BarberName = b.Name
		}
		out.ByBarber = append(out.ByBarber, row)
	}
	return out
}
