package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/audit"
	"github.com/BruksfildServices01/barber-desk/internal/handlers"
	"github.com/BruksfildServices01/barber-desk/internal/infra/blob"
	infraRepo "github.com/BruksfildServices01/barber-desk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-desk/internal/store"
	ucBarber "github.com/BruksfildServices01/barber-desk/internal/usecase/barber"
	ucDashboard "github.com/BruksfildServices01/barber-desk/internal/usecase/dashboard"
	ucExport "github.com/BruksfildServices01/barber-desk/internal/usecase/export"
)

func RegisterRoutes(r *gin.Engine, st store.Store, bs blob.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentStoreRepository(st)
	barberRepo := infraRepo.NewBarberStoreRepository(st)

	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	summaryUC := ucDashboard.NewSummary(appointmentRepo, barberRepo)
	snapshotUC := ucExport.NewSnapshot(st, bs)
	uploadPhotoUC := ucBarber.NewUploadPhoto(barberRepo, bs)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(barberRepo, uploadPhotoUC, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC)
	exportHandler := handlers.NewExportHandler(snapshotUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(st)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// BARBERS
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers", barberHandler.Create)
		api.GET("/barbers/:id", barberHandler.Get)
		api.PATCH("/barbers/:id", barberHandler.Update)
		api.DELETE("/barbers/:id", barberHandler.Delete)
		api.POST("/barbers/:id/photo", barberHandler.Photo)

		// ------------------------------
		// DASHBOARD / ADMIN
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Summary)
		api.POST("/export/:collection", exportHandler.Run)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
