package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barbearia-agenda/internal/usecase/appointment"
)

type BarberHandler struct {
	list *ucAppointment.ListAppointments
}

func NewBarberHandler(list *ucAppointment.ListAppointments) *BarberHandler {
	return &BarberHandler{list: list}
}

// ListAppointments: agenda de um barbeiro, opcionalmente de um único dia (?date=).
func (h *BarberHandler) ListAppointments(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), &id, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
