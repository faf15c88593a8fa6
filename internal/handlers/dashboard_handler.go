package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/barber-desk/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	summary *ucDashboard.Summary
}

func NewDashboardHandler(summary *ucDashboard.Summary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.OK(c, out)
}
