package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
)

func TestBookingMessage(t *testing.T) {
	msg := BookingMessage(Booking{
		ClientName: "Ana",
		Services:   []string{"Corte", "Barba"},
		Date:       "2026-10-26",
		Time:       "10:00",
		Total:      55,
	})

	assert.Equal(t,
		"Novo agendamento!\nCliente: Ana\nServiços: Corte, Barba\nData: 2026-10-26\nHora: 10:00\nTotal: R$ 55.00",
		msg,
	)
}

func TestWhatsAppLink(t *testing.T) {
	barber := shop.Barber{ID: 1, Name: "Bruno", Phone: "5511956996426"}
	b := Booking{
		ClientName: "Ana & Cia",
		Services:   []string{"Corte + Barba"},
		Date:       "2026-10-26",
		Time:       "10:00",
		Total:      50,
	}

	link := WhatsAppLink(barber, b)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511956996426?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, BookingMessage(b), u.Query().Get("text"))
}
