package handler

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

// ListActivityLogs pages the audit trail, newest first
func (h *Handler) ListActivityLogs(c *gin.Context) {
	var q dto.ActivityLogQuery
	if !h.bindQuery(c, &q) {
		return
	}
	filter := database.ActivityFilter{
		UserID:     q.UserID,
		Action:     q.Action,
		EntityType: q.EntityType,
	}

	page := q.ToPage()
	logs, total, err := h.db.ListActivityLogs(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessActivityLogList, gin.H{
		"logs":       logs,
		"pagination": dto.NewPagination(total, page),
	})
}
