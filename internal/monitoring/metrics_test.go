package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingsTotal(t *testing.T) {
	before := testutil.ToFloat64(BookingsTotal.WithLabelValues(BookingConflict))

	BookingsTotal.WithLabelValues(BookingConflict).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(BookingsTotal.WithLabelValues(BookingConflict)))
}
