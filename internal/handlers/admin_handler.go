package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-agenda/internal/adminauth"
	"github.com/BruksfildServices01/barbearia-agenda/internal/dto"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbearia-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
}

type AdminHandler struct {
	auth    adminauth.Authenticator
	tokens  TokenIssuer
	list    *ucAppointment.ListAppointments
	summary *ucAppointment.GetSummary
	cancel  *ucAppointment.CancelAppointment
	report  *ucAppointment.ExportReport // nil quando não há bucket configurado
}

func NewAdminHandler(
	auth adminauth.Authenticator,
	tokens TokenIssuer,
	list *ucAppointment.ListAppointments,
	summary *ucAppointment.GetSummary,
	cancel *ucAppointment.CancelAppointment,
	report *ucAppointment.ExportReport,
) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		tokens:  tokens,
		list:    list,
		summary: summary,
		cancel:  cancel,
		report:  report,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReportResponse struct {
	Key      string         `json:"key"`
	Location string         `json:"location"`
	Rows     int            `json:"rows"`
	Summary  dto.SummaryDTO `json:"summary"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, adminauth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
			return
		}
		respondError(c, err)
		return
	}

	token, exp, err := h.tokens.Issue(req.Username)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	httpresp.OK(c, LoginResponse{Token: token, ExpiresAt: exp})
}

// ======================================================
// LIST / SUMMARY
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), nil, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AdminHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AdminHandler) Cancel(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancel.Execute(
		c.Request.Context(),
		id,
		middleware.AdminUser(c),
		middleware.GetRequestID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":           ap.ID,
		"status":       ap.Status,
		"cancelled_at": ap.CancelledAt,
	})
}

// ======================================================
// REPORTS
// ======================================================

func (h *AdminHandler) ExportReport(c *gin.Context) {
	if h.report == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "reports_disabled", "Exportação de relatórios não configurada.")
		return
	}

	out, err := h.report.Execute(
		c.Request.Context(),
		middleware.AdminUser(c),
		middleware.GetRequestID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ReportResponse{
		Key:      out.Key,
		Location: out.Location,
		Rows:     out.Rows,
		Summary:  out.Summary,
	})
}
