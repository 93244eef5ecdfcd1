package dto

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type NotificationQuery struct {
	PageQuery
	UnreadOnly bool `form:"unreadOnly"`
}

type ActivityLogQuery struct {
	PageQuery
	UserID     uint   `form:"userId"`
	Action     string `form:"action"`
	EntityType string `form:"entityType"`
}
