package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestServicesRoundTrip(t *testing.T) {
	in := []string{"Corte + Barba", "Barba", "Barba"}

	joined := JoinServices(in)
	assert.Equal(t, "Corte + Barba, Barba, Barba", joined)
	assert.Equal(t, in, SplitServices(joined))
	assert.Equal(t, []string{}, SplitServices(""))
}

func TestOccupiesSlot(t *testing.T) {
	assert.True(t, OccupiesSlot(StatusPending))
	assert.False(t, OccupiesSlot(StatusCancelled))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, IsValidation(Invalid(ReasonClosedDay)))
	assert.False(t, IsValidation(ConflictError{}))

	assert.True(t, IsConflict(ConflictError{BarberID: 1}))
	assert.Equal(t, "slot taken", ConflictError{}.Error())

	cause := assert.AnError
	se := StorageError{Op: "insert", Err: cause}
	assert.True(t, IsStorage(se))
	assert.ErrorIs(t, se, cause)
	assert.Contains(t, se.Error(), "insert")
}
