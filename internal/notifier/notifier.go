// Package notifier publishes persisted user notifications to downstream
// consumers (push gateways, mail workers).
package notifier

import (
	"context"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
)

// Event is the wire form of a published notification
type Event struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	RelatedID uint      `json:"relatedId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewEvent(n *database.Notification) Event {
	return Event{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Content:   n.Content,
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
	}
}

// Notifier defines the interface for publishing notifications
type Notifier interface {
	// Publish sends a notification that has already been persisted
	Publish(ctx context.Context, n *database.Notification) error

	// Close releases the underlying connection
	Close() error
}
