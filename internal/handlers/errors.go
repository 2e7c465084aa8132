package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
)

var validationMessages = map[string]string{
	domain.ReasonMissingName:    "Informe o nome do cliente.",
	domain.ReasonNoServices:     "Selecione ao menos um serviço.",
	domain.ReasonUnknownService: "Serviço não encontrado.",
	domain.ReasonUnknownBarber:  "Barbeiro não encontrado.",
	domain.ReasonInvalidDate:    "Data inválida.",
	domain.ReasonClosedDay:      "A barbearia não abre neste dia.",
	domain.ReasonInvalidTime:    "Horário inválido.",
	domain.ReasonOutsideHours:   "Fora do horário de atendimento.",
	domain.ReasonDateInThePast:  "Não é possível agendar em data passada.",
}

// errorCode transforma "outside business hours" em "outside_business_hours".
func errorCode(reason string) string {
	return strings.ReplaceAll(reason, " ", "_")
}

// respondError traduz os erros de domínio/use case para a resposta HTTP.
func respondError(c *gin.Context, err error) {
	var (
		ve domain.ValidationError
		ce domain.ConflictError
		se domain.StorageError
		be httperr.BusinessError
	)

	switch {
	case errors.As(err, &ve):
		msg, ok := validationMessages[ve.Reason]
		if !ok {
			msg = "Dados inválidos."
		}
		httperr.BadRequest(c, errorCode(ve.Reason), msg)

	case errors.As(err, &ce):
		httperr.Conflict(c, errorCode(domain.ReasonSlotTaken), "Horário já reservado para este barbeiro.")

	case errors.As(err, &se):
		_ = c.Error(err)
		httperr.Unavailable(c, "storage_unavailable", "Serviço temporariamente indisponível.")

	case errors.As(err, &be):
		switch be.Code {
		case "appointment_not_found":
			httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
		case "invalid_state":
			httperr.BadRequest(c, be.Code, "Agendamento não pode ser cancelado.")
		default:
			httperr.BadRequest(c, be.Code, "Operação não permitida.")
		}

	default:
		_ = c.Error(err)
		httperr.Write(c, http.StatusInternalServerError, "internal_error", "Erro interno.")
	}
}
