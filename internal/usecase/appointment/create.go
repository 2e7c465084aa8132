package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/models"
	"github.com/BruksfildServices01/barbearia-agenda/internal/notify"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	BarberID uint
	Services []string

	Date string
	Time string

	RequestID string
}

type CreateAppointmentOutput struct {
	Appointment  *models.Appointment
	Total        float64
	Barber       shop.Barber
	WhatsAppLink string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	shop  shop.Config
	audit AuditSink
	now   nowFunc
}

func NewCreateAppointment(
	repo domain.Repository,
	cfg shop.Config,
	audit AuditSink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		shop:  cfg,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CreateAppointment) WithNow(now func() time.Time) *CreateAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	now := uc.now()

	// --------------------------------------------------
	// 1️⃣ Regras: nome, serviços, barbeiro, dia, horário
	// --------------------------------------------------
	req := domain.BookingRequest{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		BarberID:    in.BarberID,
		Services:    in.Services,
		Date:        in.Date,
		Time:        in.Time,
	}

	slot, total, err := domain.Validate(uc.shop, req, now)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Conflito + gravação (atômico no repositório)
	// --------------------------------------------------
	ap := domain.NewAppointment(req, slot, total, now)

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		if domain.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				Actor:     "client",
				RequestID: in.RequestID,
				Action:    "appointment_conflict",
				Entity:    "appointment",
				Metadata: map[string]any{
					"barber_id": slot.BarberID,
					"date":      slot.Date,
					"time":      slot.Time,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria + link para avisar o barbeiro
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:     "client",
		RequestID: in.RequestID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"total": total,
		},
	})

	barber, _ := uc.shop.Barber(slot.BarberID)

	return &CreateAppointmentOutput{
		Appointment: ap,
		Total:       total,
		Barber:      barber,
		WhatsAppLink: notify.WhatsAppLink(barber, notify.Booking{
			ClientName: ap.ClientName,
			Services:   in.Services,
			Date:       slot.Date,
			Time:       slot.Time,
			Total:      total,
		}),
	}, nil
}
