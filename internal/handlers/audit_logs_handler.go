package handlers

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store store.Store
}

func NewAuditLogsHandler(st store.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: st}
}

type auditLogEntry struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entityId"`
	Metadata string `json:"metadata,omitempty"`
	At       string `json:"at,omitempty"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	docs, err := h.store.ListAll(c.Request.Context(), "audit_log")
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "failed to list audit log")
		return
	}

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	logs := make([]auditLogEntry, 0, len(docs))
	for _, doc := range docs {
		entry := auditLogEntry{
			ID:       doc.ID,
			Action:   doc.Fields.String("action"),
			Entity:   doc.Fields.String("entity"),
			EntityID: doc.Fields.String("entityId"),
			Metadata: doc.Fields.String("metadata"),
		}
		if at := doc.Fields.Time("createdAt"); at != nil {
			entry.At = at.UTC().Format("2006-01-02T15:04:05Z")
		}

		if action != "" && entry.Action != action {
			continue
		}
		if entity != "" && entry.Entity != entity {
			continue
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].At > logs[j].At
	})
	if len(logs) > limit {
		logs = logs[:limit]
	}

	c.JSON(200, gin.H{
		"limit": limit,
		"total": len(logs),
		"logs":  logs,
	})
}
