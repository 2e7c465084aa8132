package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/dto"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-agenda/internal/middleware"
	"github.com/BruksfildServices01/barbearia-agenda/internal/monitoring"
	ucAppointment "github.com/BruksfildServices01/barbearia-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	shop   shop.Config
	create *ucAppointment.CreateAppointment
}

func NewBookingHandler(
	cfg shop.Config,
	create *ucAppointment.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		shop:   cfg,
		create: create,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

// As regras de obrigatoriedade ficam no domínio para manter a ordem das validações.
type CreateAppointmentRequest struct {
	ClientName  string   `json:"client_name"`
	ClientEmail string   `json:"client_email"`
	ClientPhone string   `json:"client_phone"`
	BarberID    uint     `json:"barber_id"`
	Services    []string `json:"services"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM
}

type CreateAppointmentResponse struct {
	Appointment  dto.AppointmentDTO `json:"appointment"`
	Total        float64            `json:"total"`
	WhatsAppLink string             `json:"whatsapp_link"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *BookingHandler) Catalog(c *gin.Context) {
	httpresp.OK(c, dto.NewCatalogDTO(h.shop))
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		monitoring.BookingsTotal.WithLabelValues(monitoring.BookingInvalid).Inc()
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		BarberID:    req.BarberID,
		Services:    req.Services,
		Date:        req.Date,
		Time:        req.Time,
		RequestID:   middleware.GetRequestID(c),
	})
	if err != nil {
		monitoring.BookingsTotal.WithLabelValues(bookingResult(err)).Inc()
		respondError(c, err)
		return
	}

	monitoring.BookingsTotal.WithLabelValues(monitoring.BookingCreated).Inc()

	httpresp.Created(c, CreateAppointmentResponse{
		Appointment:  dto.NewAppointmentDTO(*out.Appointment, h.shop),
		Total:        out.Total,
		WhatsAppLink: out.WhatsAppLink,
	})
}

func bookingResult(err error) string {
	switch {
	case domain.IsValidation(err):
		return monitoring.BookingInvalid
	case domain.IsConflict(err):
		return monitoring.BookingConflict
	default:
		return monitoring.BookingError
	}
}
