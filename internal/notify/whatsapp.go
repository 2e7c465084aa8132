package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
)

const whatsAppBaseURL = "https://wa.me/"

type Booking struct {
	ClientName string
	Services   []string
	Date       string
	Time       string
	Total      float64
}

func BookingMessage(b Booking) string {
	lines := []string{
		"Novo agendamento!",
		"Cliente: " + b.ClientName,
		"Serviços: " + strings.Join(b.Services, ", "),
		"Data: " + b.Date,
		"Hora: " + b.Time,
		fmt.Sprintf("Total: R$ %.2f", b.Total),
	}
	return strings.Join(lines, "\n")
}

// WhatsAppLink monta o link wa.me já com a mensagem preenchida para o barbeiro.
func WhatsAppLink(barber shop.Barber, b Booking) string {
	text := strings.ReplaceAll(url.QueryEscape(BookingMessage(b)), "+", "%20")
	return whatsAppBaseURL + url.PathEscape(barber.Phone) + "?text=" + text
}
