package appointment

import (
	"sort"

	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

type BarberStats struct {
	BarberID uint    `json:"barber_id"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

type Summary struct {
	Count            int           `json:"count"`
	TotalRevenue     float64       `json:"total_revenue"`
	ByBarber         []BarberStats `json:"by_barber"`
	IncludeCancelled bool          `json:"include_cancelled"`
}

// Aggregate soma faturamento e contagens por barbeiro.
// Com includeCancelled=true os cancelados entram na soma, como no painel antigo.
func Aggregate(apps []models.Appointment, includeCancelled bool) Summary {
	sum := Summary{
		ByBarber:         []BarberStats{},
		IncludeCancelled: includeCancelled,
	}

	idx := map[uint]int{}
	for _, ap := range apps {
		if !includeCancelled && Status(ap.Status) == StatusCancelled {
			continue
		}

		sum.Count++
		sum.TotalRevenue += ap.Total

		i, ok := idx[ap.BarberID]
		if !ok {
			i = len(sum.ByBarber)
			idx[ap.BarberID] = i
			sum.ByBarber = append(sum.ByBarber, BarberStats{BarberID: ap.BarberID})
		}
		sum.ByBarber[i].Count++
		sum.ByBarber[i].Revenue += ap.Total
	}

	sort.Slice(sum.ByBarber, func(a, b int) bool {
		return sum.ByBarber[a].BarberID < sum.ByBarber[b].BarberID
	})

	return sum
}
