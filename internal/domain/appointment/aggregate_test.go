package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: 1, BarberID: 2, Total: 35, Status: string(StatusPending)},
		{ID: 2, BarberID: 1, Total: 55, Status: string(StatusPending)},
		{ID: 3, BarberID: 1, Total: 120, Status: string(StatusCancelled)},
		{ID: 4, BarberID: 2, Total: 20, Status: string(StatusPending)},
	}
}

func TestAggregate_IncludesCancelledByDefault(t *testing.T) {
	sum := Aggregate(sampleAppointments(), true)

	assert.Equal(t, 4, sum.Count)
	assert.Equal(t, 230.0, sum.TotalRevenue)
	assert.True(t, sum.IncludeCancelled)
	assert.Equal(t, []BarberStats{
		{BarberID: 1, Count: 2, Revenue: 175},
		{BarberID: 2, Count: 2, Revenue: 55},
	}, sum.ByBarber)
}

func TestAggregate_ExcludingCancelled(t *testing.T) {
	sum := Aggregate(sampleAppointments(), false)

	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 110.0, sum.TotalRevenue)
	assert.Equal(t, []BarberStats{
		{BarberID: 1, Count: 1, Revenue: 55},
		{BarberID: 2, Count: 2, Revenue: 55},
	}, sum.ByBarber)
}

func TestAggregate_Empty(t *testing.T) {
	sum := Aggregate(nil, true)

	assert.Zero(t, sum.Count)
	assert.Zero(t, sum.TotalRevenue)
	assert.NotNil(t, sum.ByBarber)
	assert.Empty(t, sum.ByBarber)
}
