package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
)

// segunda-feira, 19/10/2026
var fixedNow = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func validRequest() BookingRequest {
	return BookingRequest{
		ClientName: "Ana",
		BarberID:   1,
		Services:   []string{"Corte", "Barba"},
		Date:       "2026-10-26",
		Time:       "10:00",
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := shop.Default(time.UTC)

	slot, total, err := Validate(cfg, validRequest(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 55.0, total)
	assert.Equal(t, Slot{BarberID: 1, Date: "2026-10-26", Time: "10:00"}, slot)
}

func TestValidate_NormalizesTime(t *testing.T) {
	cfg := shop.Default(time.UTC)

	req := validRequest()
	req.Time = "9:30:00"

	slot, _, err := Validate(cfg, req, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "09:30", slot.Time)
}

func TestValidate_FirstFailureWins(t *testing.T) {
	cfg := shop.Default(time.UTC)

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
		reason string
	}{
		{"blank name", func(r *BookingRequest) { r.ClientName = "   " }, ReasonMissingName},
		{"blank name beats closed day", func(r *BookingRequest) {
			r.ClientName = ""
			r.Date = "2026-10-25"
		}, ReasonMissingName},
		{"no services", func(r *BookingRequest) { r.Services = nil }, ReasonNoServices},
		{"unknown service", func(r *BookingRequest) { r.Services = []string{"Corte", "Massagem"} }, ReasonUnknownService},
		{"unknown barber", func(r *BookingRequest) { r.BarberID = 42 }, ReasonUnknownBarber},
		{"invalid date", func(r *BookingRequest) { r.Date = "26/10/2026" }, ReasonInvalidDate},
		{"sunday", func(r *BookingRequest) { r.Date = "2026-10-25" }, ReasonClosedDay},
		{"closed day beats bad time", func(r *BookingRequest) {
			r.Date = "2026-10-25"
			r.Time = "03:00"
		}, ReasonClosedDay},
		{"invalid time", func(r *BookingRequest) { r.Time = "meio-dia" }, ReasonInvalidTime},
		{"before opening", func(r *BookingRequest) { r.Time = "08:00" }, ReasonOutsideHours},
		{"after closing", func(r *BookingRequest) { r.Time = "19:01" }, ReasonOutsideHours},
		{"past date", func(r *BookingRequest) { r.Date = "2026-10-17" }, ReasonDateInThePast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, _, err := Validate(cfg, req, fixedNow)
			require.Error(t, err)

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}
}

func TestValidate_BoundariesAreInclusive(t *testing.T) {
	cfg := shop.Default(time.UTC)

	for _, clock := range []string{"09:00", "19:00"} {
		req := validRequest()
		req.Time = clock
		_, _, err := Validate(cfg, req, fixedNow)
		assert.NoError(t, err, clock)
	}
}

func TestValidate_TodayIsAllowed(t *testing.T) {
	cfg := shop.Default(time.UTC)

	req := validRequest()
	req.Date = "2026-10-19"

	_, _, err := Validate(cfg, req, fixedNow)
	assert.NoError(t, err)
}

func TestValidate_NonWorkingDayAlwaysFails(t *testing.T) {
	cfg := shop.Default(time.UTC)

	// todos os domingos de novembro, em vários horários
	for _, d := range []string{"2026-11-01", "2026-11-08", "2026-11-15", "2026-11-22", "2026-11-29"} {
		for _, clock := range []string{"09:00", "12:00", "19:00"} {
			req := validRequest()
			req.Date = d
			req.Time = clock

			_, _, err := Validate(cfg, req, fixedNow)
			assert.True(t, IsValidation(err), "%s %s", d, clock)
		}
	}
}

func TestNewAppointment(t *testing.T) {
	cfg := shop.Default(time.UTC)
	req := validRequest()
	req.ClientName = "  Ana  "
	req.ClientEmail = ""
	req.ClientPhone = "5511999990000"

	slot, total, err := Validate(cfg, req, fixedNow)
	require.NoError(t, err)

	ap := NewAppointment(req, slot, total, fixedNow)

	assert.Equal(t, "Ana", ap.ClientName)
	assert.Nil(t, ap.ClientEmail)
	require.NotNil(t, ap.ClientPhone)
	assert.Equal(t, "5511999990000", *ap.ClientPhone)
	assert.Equal(t, "Corte, Barba", ap.Services)
	assert.Equal(t, 55.0, ap.Total)
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Equal(t, time.UTC, ap.CreatedAt.Location())
}
