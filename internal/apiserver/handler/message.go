package handler

import (
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/dto"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
)

// SendMessage delivers a direct message and notifies the receiver
func (h *Handler) SendMessage(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.db.GetUserByID(ctx, req.ReceiverID); err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorReceiverNotFound)
			return
		}
		h.fail(c, err)
		return
	}

	msg := &database.Message{
		SenderID:   actor.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := h.db.CreateMessage(ctx, msg); err != nil {
		h.fail(c, err)
		return
	}
	if msg.ReceiverID != actor.UserID {
		h.notify(c, msg.ReceiverID, cnst.NotifyTypeMessage, msg.ID, i18n.NotifyNewMessage, nil, "")
	}
	i18n.RespondCreated(c, i18n.SuccessMessageSent, gin.H{"data": msg})
}

// Conversation pages the messages between the caller and another user
func (h *Handler) Conversation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	other, ok := h.idParam(c, "userId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page := q.ToPage()
	messages, total, err := h.db.ListConversation(c.Request.Context(), actor.UserID, other, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessMessageList, gin.H{
		"messages":   messages,
		"pagination": dto.NewPagination(total, page),
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	n, err := h.db.CountUnreadMessages(c.Request.Context(), actor.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessUnreadCount, gin.H{"count": n})
}

// MarkMessageRead flags a received message as read
func (h *Handler) MarkMessageRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	msg, err := h.db.GetMessageByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			h.fail(c, i18n.ErrorMessageNotFound)
			return
		}
		h.fail(c, err)
		return
	}
	// only the receiver can read a message; hide it from everyone else
	if msg.ReceiverID != actor.UserID {
		h.fail(c, i18n.ErrorMessageNotFound)
		return
	}
	if err := h.db.MarkMessageRead(ctx, msg.ID, time.Now()); err != nil {
		h.fail(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessMessageRead, nil)
}
