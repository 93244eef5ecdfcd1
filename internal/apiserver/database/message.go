package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

func (s *Store) CreateMessage(ctx context.Context, msg *Message) error {
	return s.conn(ctx).Create(msg).Error
}

func (s *Store) GetMessageByID(ctx context.Context, id uint) (*Message, error) {
	return first[Message](s.conn(ctx), id)
}

func (s *Store) MarkMessageRead(ctx context.Context, id uint, at time.Time) error {
	return s.conn(ctx).Model(&Message{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{"is_read": true, "read_at": at.UTC()}).Error
}

// ListConversation pages the messages exchanged between two users, newest first
func (s *Store) ListConversation(ctx context.Context, userA, userB uint, page Page) ([]*Message, int64, error) {
	q := s.conn(ctx).Model(&Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA)
	return paginate[Message](q, page, "created_at desc, id desc")
}

func (s *Store) CountUnreadMessages(ctx context.Context, receiverID uint) (int64, error) {
	var n int64
	err := s.conn(ctx).Model(&Message{}).Where("receiver_id = ? AND is_read = ?", receiverID, false).Count(&n).Error
	return n, err
}

func (s *Store) CreateNotification(ctx context.Context, n *Notification) error {
	return s.conn(ctx).Create(n).Error
}

func (s *Store) ListNotifications(ctx context.Context, userID uint, unreadOnly bool, page Page) ([]*Notification, int64, error) {
	q := s.conn(ctx).Model(&Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	return paginate[Notification](q, page, "created_at desc, id desc")
}

// MarkNotificationRead flags one of the user's notifications as read
func (s *Store) MarkNotificationRead(ctx context.Context, id, userID uint) error {
	res := s.conn(ctx).Model(&Notification{}).Where("id = ? AND user_id = ?", id, userID).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when the value is already set
		var n int64
		if err := s.conn(ctx).Model(&Notification{}).Where("id = ? AND user_id = ?", id, userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	res := s.conn(ctx).Model(&Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (s *Store) CreateActivityLog(ctx context.Context, log *ActivityLog) error {
	return s.conn(ctx).Create(log).Error
}

func (s *Store) ListActivityLogs(ctx context.Context, filter ActivityFilter, page Page) ([]*ActivityLog, int64, error) {
	q := s.conn(ctx).Model(&ActivityLog{})
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	return paginate[ActivityLog](q, page, "created_at desc, id desc")
}
