package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/httpresp"
	ucExport "github.com/BruksfildServices01/barber-desk/internal/usecase/export"
)

// ======================================================
// HANDLER
// ======================================================

type ExportHandler struct {
	snapshot *ucExport.Snapshot
}

func NewExportHandler(snapshot *ucExport.Snapshot) *ExportHandler {
	return &ExportHandler{snapshot: snapshot}
}

func (h *ExportHandler) Run(c *gin.Context) {
	result, err := h.snapshot.Execute(c.Request.Context(), c.Param("collection"))
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.OK(c, result)
}
