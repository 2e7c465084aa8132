package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
)

const servicesSeparator = ", "

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ===============================
// Services (coluna texto)
// ===============================

func JoinServices(services []string) string {
	return strings.Join(services, servicesSeparator)
}

func SplitServices(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, servicesSeparator)
}

// optional guarda string vazia como NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
