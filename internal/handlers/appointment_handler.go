package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/audit"
	domain "github.com/BruksfildServices01/barber-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/httpresp"
	"github.com/BruksfildServices01/barber-desk/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAppointmentHandler(repo domain.Repository, audit *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	BarberID    string `json:"barberId"`
	BarberName  string `json:"barberName"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	BarberID    *string `json:"barberId,omitempty"`
	BarberName  *string `json:"barberName,omitempty"`
	Service     *string `json:"service,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Status      *string `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	payload := map[string]any{
		"clientName":  req.ClientName,
		"clientEmail": req.ClientEmail,
		"barberId":    req.BarberID,
		"service":     req.Service,
		"date":        req.Date,
		"time":        req.Time,
	}
	if req.Status != "" {
		payload["status"] = req.Status
	}
	if err := validators.AppointmentSchema.Check(payload); err != nil {
		httperr.From(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), domain.CreateInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		BarberID:    req.BarberID,
		BarberName:  req.BarberName,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

// List serves all three read paths: no filter, ?barberId=, or ?date=.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		list, err := h.repo.ListByDate(ctx, date)
		if err != nil {
			httperr.From(c, err)
			return
		}
		httpresp.List(c, list)
		return
	}

	if barberID := c.Query("barberId"); barberID != "" {
		list, err := h.repo.ListByBarber(ctx, barberID)
		if err != nil {
			httperr.From(c, err)
			return
		}
		httpresp.List(c, list)
		return
	}

	list, err := h.repo.List(ctx)
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}
	if ap == nil {
		httperr.NotFound(c, "not_found", "appointment not found")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	if req.Status != nil && !domain.IsValidStatus(*req.Status) {
		httperr.From(c, httperr.ErrValidationFields("invalid form data", map[string]string{
			"status": "unknown status",
		}))
		return
	}

	patch := domain.Partial{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		BarberID:    req.BarberID,
		BarberName:  req.BarberName,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		Notes:       req.Notes,
	}

	if err := h.repo.Update(c.Request.Context(), id, patch); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: id,
		Metadata: patch.Fields(),
	})

	// Echo the id and the submitted fields; the stored record is not
	// re-read.
	resp := gin.H{"id": id}
	for k, v := range patch.Fields() {
		resp[k] = v
	}
	httpresp.OK(c, resp)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"id": id})
}
