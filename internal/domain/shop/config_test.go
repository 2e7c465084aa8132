package shop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Catalog(t *testing.T) {
	cfg := Default(time.UTC)

	assert.Len(t, cfg.Services(), 5)
	assert.Len(t, cfg.Barbers(), 2)

	p, ok := cfg.Price("Corte + Barba")
	assert.True(t, ok)
	assert.Equal(t, 50.0, p)

	_, ok = cfg.Price("Sobrancelha")
	assert.False(t, ok)

	b, ok := cfg.Barber(1)
	require.True(t, ok)
	assert.Equal(t, "Bruno", b.Name)

	_, ok = cfg.Barber(99)
	assert.False(t, ok)
}

func TestTotal_KeepsDuplicatesAndOrder(t *testing.T) {
	cfg := Default(time.UTC)

	total, err := cfg.Total([]string{"Corte", "Barba"})
	require.NoError(t, err)
	assert.Equal(t, 55.0, total)

	total, err = cfg.Total([]string{"Barba", "Barba", "Corte"})
	require.NoError(t, err)
	assert.Equal(t, 75.0, total)

	_, err = cfg.Total([]string{"Corte", "Massagem"})
	assert.Error(t, err)
}

func TestWorkingDays(t *testing.T) {
	cfg := Default(time.UTC)

	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)

	assert.True(t, cfg.IsWorkingDay(monday))
	assert.True(t, cfg.IsWorkingDay(saturday))
	assert.False(t, cfg.IsWorkingDay(sunday))
	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}, cfg.WorkingDays())
}

func TestWithinBusinessHours_Inclusive(t *testing.T) {
	cfg := Default(time.UTC)

	cases := []struct {
		clock string
		want  bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"12:30", true},
		{"19:00", true},
		{"19:01", false},
		{"00:00", false},
	}

	for _, tc := range cases {
		c, err := ParseClock(tc.clock)
		require.NoError(t, err)
		assert.Equal(t, tc.want, cfg.WithinBusinessHours(c), tc.clock)
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", c.String())

	c, err = ParseClock("10:00:59")
	require.NoError(t, err)
	assert.Equal(t, "10:00", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(nil, nil, NewClock(9, 0), NewClock(19, 0), nil, nil)
	assert.Error(t, err)

	_, err = New(
		[]Service{{Name: "Corte", Price: 35}},
		nil, NewClock(19, 0), NewClock(9, 0), nil, nil,
	)
	assert.Error(t, err)

	_, err = New(
		[]Service{{Name: "Corte", Price: 0}},
		nil, NewClock(9, 0), NewClock(19, 0), nil, nil,
	)
	assert.Error(t, err)

	_, err = New(
		[]Service{{Name: "Corte", Price: 35}, {Name: "Corte", Price: 40}},
		nil, NewClock(9, 0), NewClock(19, 0), nil, nil,
	)
	assert.Error(t, err)
}

func TestToday_UsesShopLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	cfg := Default(loc)

	// 01:00 UTC ainda é o dia anterior em UTC-3
	now := time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC)
	today := cfg.Today(now)

	assert.Equal(t, "2026-10-19", today.Format(DateLayout))
}
