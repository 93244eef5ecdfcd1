package handler

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var q dto.NotificationQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page := q.ToPage()
	items, total, err := h.db.ListNotifications(c.Request.Context(), actor.UserID, q.UnreadOnly, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessNotificationList, gin.H{
		"notifications": items,
		"pagination":    dto.NewPagination(total, page),
	})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.db.MarkNotificationRead(c.Request.Context(), id, actor.UserID); err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorNotificationNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessNotificationRead, nil)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	n, err := h.db.MarkAllNotificationsRead(c.Request.Context(), actor.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessNotificationReadAll, gin.H{"updated": n})
}
