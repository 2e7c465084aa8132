package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-agenda/internal/adminauth"
	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/domain/shop"
	"github.com/BruksfildServices01/barbearia-agenda/internal/handlers"
	"github.com/BruksfildServices01/barbearia-agenda/internal/middleware"
	"github.com/BruksfildServices01/barbearia-agenda/internal/monitoring"
	ucAppointment "github.com/BruksfildServices01/barbearia-agenda/internal/usecase/appointment"
)

// Deps reúne a infra montada no main. Campos opcionais ficam nil.
type Deps struct {
	Shop             shop.Config
	Repo             domain.Repository
	Audit            ucAppointment.AuditSink
	AuditLogs        handlers.AuditLister         // opcional
	Reports          ucAppointment.ReportUploader // opcional
	RateLimiter      *middleware.RateLimiter      // opcional
	Auth             adminauth.Authenticator
	Tokens           *adminauth.Issuer
	IncludeCancelled bool
	Logger           *slog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(deps.Logger),
		middleware.PrometheusMetrics(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		deps.Repo,
		deps.Shop,
		deps.Audit,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		deps.Repo,
		deps.Shop,
	)

	summaryUC := ucAppointment.NewGetSummary(
		deps.Repo,
		deps.Shop,
		deps.IncludeCancelled,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		deps.Repo,
		deps.Audit,
	)

	var exportReportUC *ucAppointment.ExportReport
	if deps.Reports != nil {
		exportReportUC = ucAppointment.NewExportReport(
			deps.Repo,
			deps.Shop,
			deps.Reports,
			deps.Audit,
			deps.IncludeCancelled,
		)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(deps.Shop, createAppointmentUC)
	barberHandler := handlers.NewBarberHandler(listAppointmentsUC)
	adminHandler := handlers.NewAdminHandler(
		deps.Auth,
		deps.Tokens,
		listAppointmentsUC,
		summaryUC,
		cancelAppointmentUC,
		exportReportUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CLIENTE
		// ------------------------------
		api.GET("/catalog", bookingHandler.Catalog)

		booking := []gin.HandlerFunc{bookingHandler.Create}
		if deps.RateLimiter != nil {
			booking = append([]gin.HandlerFunc{deps.RateLimiter.Middleware()}, booking...)
		}
		api.POST("/appointments", booking...)

		// ------------------------------
		// ✂️ BARBEIRO
		// ------------------------------
		api.GET("/barbers/:id/appointments", barberHandler.ListAppointments)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		api.POST("/admin/login", adminHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly(deps.Tokens))
		{
			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.GET("/summary", adminHandler.Summary)
			admin.PATCH("/appointments/:id/cancel", adminHandler.Cancel)
			admin.POST("/reports", adminHandler.ExportReport)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
