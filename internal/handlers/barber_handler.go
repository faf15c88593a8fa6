package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/audit"
	domain "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/httpresp"
	ucBarber "github.com/BruksfildServices01/barber-desk/internal/usecase/barber"
	"github.com/BruksfildServices01/barber-desk/internal/validators"
)

// photo uploads above this size are rejected outright
const maxPhotoUploadBytes = 8 << 20

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	repo        domain.Repository
	uploadPhoto *ucBarber.UploadPhoto
	audit       *audit.Dispatcher
}

func NewBarberHandler(
	repo domain.Repository,
	uploadPhoto *ucBarber.UploadPhoto,
	audit *audit.Dispatcher,
) *BarberHandler {
	return &BarberHandler{
		repo:        repo,
		uploadPhoto: uploadPhoto,
		audit:       audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	WorkStart string   `json:"workStart"`
	WorkEnd   string   `json:"workEnd"`
	Services  []string `json:"services"`
	Active    *bool    `json:"active,omitempty"`
}

type UpdateBarberRequest struct {
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	WorkStart *string   `json:"workStart,omitempty"`
	WorkEnd   *string   `json:"workEnd,omitempty"`
	Services  *[]string `json:"services,omitempty"`
	Active    *bool     `json:"active,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	payload := map[string]any{
		"name":     req.Name,
		"email":    req.Email,
		"services": req.Services,
	}
	if req.Active != nil {
		payload["active"] = *req.Active
	}
	if err := validators.BarberSchema.Check(payload); err != nil {
		httperr.From(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), domain.CreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		WorkStart: req.WorkStart,
		WorkEnd:   req.WorkEnd,
		Services:  req.Services,
		Active:    req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// READS
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *BarberHandler) Get(c *gin.Context) {
	b, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}
	if b == nil {
		httperr.NotFound(c, "not_found", "barber not found")
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	patch := domain.Partial{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		WorkStart: req.WorkStart,
		WorkEnd:   req.WorkEnd,
		Services:  req.Services,
		Active:    req.Active,
	}

	if err := h.repo.Update(c.Request.Context(), id, patch); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: id,
		Metadata: patch.Fields(),
	})

	resp := gin.H{"id": id}
	for k, v := range patch.Fields() {
		resp[k] = v
	}
	httpresp.OK(c, resp)
}

// ======================================================
// DELETE
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"id": id})
}

// ======================================================
// PHOTO
// ======================================================

func (h *BarberHandler) Photo(c *gin.Context) {
	id := c.Param("id")

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPhotoUploadBytes))
	if err != nil || len(data) == 0 {
		httperr.BadRequest(c, "invalid_request", "photo body is required")
		return
	}

	url, err := h.uploadPhoto.Execute(c.Request.Context(), id, data)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_photo_updated",
		Entity:   "barber",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"id": id, "photoUrl": url})
}
